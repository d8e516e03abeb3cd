package media

const (
	// AttrFullImage holds the full-size image URL on the anchor itself
	AttrFullImage = "data-url"

	// AttrLazySource holds the animated source on the nested image
	AttrLazySource = "data-src"

	// AttrReference is the anchor target used for videos
	AttrReference = "href"

	// ClassUploadedVideo marks the play icon of a video uploaded to the site
	ClassUploadedVideo = "visualItemPlayIcon-videoAnswer"

	// ClassYoutubeVideo marks the play icon of an embedded YouTube video
	ClassYoutubeVideo = "visualItemPlayIcon-youTube"
)

// Result is the outcome of classifying one link.
// URL is empty for KindUnknown.
type Result struct {
	Kind Kind
	URL  string
}

// IsCandidate reports whether a link should be classified at all: it must
// wrap an image and must not embed an inline frame, which would duplicate
// a video player already present elsewhere on the page.
func IsCandidate(link LinkElement) bool {
	if _, ok := link.Image(); !ok {
		return false
	}
	return !link.HasInlineFrame()
}

// Classify determines the media kind and download URL of a link.
// Rules are checked in order and the first match wins; the full-size image
// attribute takes priority over everything else.
func Classify(link LinkElement) Result {
	if link.HasAttr(AttrFullImage) {
		return Result{Kind: KindImage, URL: link.Attr(AttrFullImage)}
	}

	if img, ok := link.Image(); ok && img.HasAttr(AttrLazySource) {
		return Result{Kind: KindGif, URL: img.Attr(AttrLazySource)}
	}

	if container, ok := link.Container(); ok {
		switch {
		case container.HasClass(ClassUploadedVideo):
			return Result{Kind: KindUploadedVideo, URL: link.Attr(AttrReference)}
		case container.HasClass(ClassYoutubeVideo):
			return Result{Kind: KindYoutubeVideo, URL: link.Attr(AttrReference)}
		default:
			return Result{Kind: KindUnknown}
		}
	}

	return Result{Kind: KindUnknown}
}
