package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeImage struct {
	attrs map[string]string
}

func (f *fakeImage) HasAttr(name string) bool {
	_, ok := f.attrs[name]
	return ok
}

func (f *fakeImage) Attr(name string) string { return f.attrs[name] }

type fakeContainer struct {
	classes []string
}

func (f *fakeContainer) HasClass(name string) bool {
	for _, c := range f.classes {
		if c == name {
			return true
		}
	}
	return false
}

type fakeLink struct {
	attrs     map[string]string
	image     *fakeImage
	container *fakeContainer
	iframe    bool
}

func (f *fakeLink) HasAttr(name string) bool {
	_, ok := f.attrs[name]
	return ok
}

func (f *fakeLink) Attr(name string) string { return f.attrs[name] }
func (f *fakeLink) HasInlineFrame() bool    { return f.iframe }
func (f *fakeLink) OuterHTML() string       { return "<a></a>" }

func (f *fakeLink) Image() (ImageElement, bool) {
	if f.image == nil {
		return nil, false
	}
	return f.image, true
}

func (f *fakeLink) Container() (ContainerElement, bool) {
	if f.container == nil {
		return nil, false
	}
	return f.container, true
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		link *fakeLink
		want Result
	}{
		{
			name: "full size image attribute",
			link: &fakeLink{
				attrs: map[string]string{"data-url": "http://x/a.jpg", "href": "/answers/1"},
				image: &fakeImage{attrs: map[string]string{"src": "thumb.jpg"}},
			},
			want: Result{Kind: KindImage, URL: "http://x/a.jpg"},
		},
		{
			name: "image attribute wins over gif and video signals",
			link: &fakeLink{
				attrs:     map[string]string{"data-url": "http://x/full.png", "href": "http://x/video"},
				image:     &fakeImage{attrs: map[string]string{"data-src": "http://x/anim.gif"}},
				container: &fakeContainer{classes: []string{ClassUploadedVideo}},
			},
			want: Result{Kind: KindImage, URL: "http://x/full.png"},
		},
		{
			name: "lazy source on nested image",
			link: &fakeLink{
				attrs: map[string]string{"href": "/answers/2"},
				image: &fakeImage{attrs: map[string]string{"data-src": "http://x/anim.gif"}},
			},
			want: Result{Kind: KindGif, URL: "http://x/anim.gif"},
		},
		{
			name: "gif wins over video container",
			link: &fakeLink{
				attrs:     map[string]string{"href": "http://x/v.mp4"},
				image:     &fakeImage{attrs: map[string]string{"data-src": "http://x/anim.gif"}},
				container: &fakeContainer{classes: []string{ClassUploadedVideo}},
			},
			want: Result{Kind: KindGif, URL: "http://x/anim.gif"},
		},
		{
			name: "uploaded video uses the link reference",
			link: &fakeLink{
				attrs:     map[string]string{"href": "http://x/v.mp4"},
				image:     &fakeImage{attrs: map[string]string{"src": "poster.jpg"}},
				container: &fakeContainer{classes: []string{"visualItemPlayIcon", ClassUploadedVideo}},
			},
			want: Result{Kind: KindUploadedVideo, URL: "http://x/v.mp4"},
		},
		{
			name: "youtube video is detected",
			link: &fakeLink{
				attrs:     map[string]string{"href": "https://youtu.be/abc"},
				image:     &fakeImage{},
				container: &fakeContainer{classes: []string{ClassYoutubeVideo}},
			},
			want: Result{Kind: KindYoutubeVideo, URL: "https://youtu.be/abc"},
		},
		{
			name: "container without marker class",
			link: &fakeLink{
				attrs:     map[string]string{"href": "/x"},
				image:     &fakeImage{},
				container: &fakeContainer{classes: []string{"somethingElse"}},
			},
			want: Result{Kind: KindUnknown},
		},
		{
			name: "container without any class",
			link: &fakeLink{
				image:     &fakeImage{},
				container: &fakeContainer{},
			},
			want: Result{Kind: KindUnknown},
		},
		{
			name: "nothing recognized",
			link: &fakeLink{
				attrs: map[string]string{"href": "/profile"},
				image: &fakeImage{attrs: map[string]string{"src": "avatar.jpg"}},
			},
			want: Result{Kind: KindUnknown},
		},
		{
			name: "no nested image at all",
			link: &fakeLink{attrs: map[string]string{"href": "/profile"}},
			want: Result{Kind: KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.link)
			assert.Equal(t, tt.want, got)
			// same element, same answer
			assert.Equal(t, got, Classify(tt.link))
		})
	}
}

func TestClassifyEmptyImageAttribute(t *testing.T) {
	link := &fakeLink{
		attrs: map[string]string{"data-url": ""},
		image: &fakeImage{attrs: map[string]string{"data-src": "http://x/anim.gif"}},
	}

	// presence, not value, decides the rule
	assert.Equal(t, Result{Kind: KindImage, URL: ""}, Classify(link))
}

func TestIsCandidate(t *testing.T) {
	assert.True(t, IsCandidate(&fakeLink{image: &fakeImage{}}))
	assert.False(t, IsCandidate(&fakeLink{}))
	assert.False(t, IsCandidate(&fakeLink{image: &fakeImage{}, iframe: true}))
}
