package askfm

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"

	"askscraper/pkg/media"
)

// ParseLinks parses an answers page and returns every anchor in document order
func ParseLinks(r io.Reader) ([]media.LinkElement, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	anchors := doc.Find(atom.A.String())
	links := make([]media.LinkElement, 0, anchors.Length())
	anchors.Each(func(_ int, s *goquery.Selection) {
		links = append(links, &linkNode{sel: s})
	})
	return links, nil
}

// linkNode adapts a goquery selection holding one <a> to media.LinkElement
type linkNode struct {
	sel *goquery.Selection
}

func (l *linkNode) HasAttr(name string) bool {
	_, ok := l.sel.Attr(name)
	return ok
}

func (l *linkNode) Attr(name string) string {
	return l.sel.AttrOr(name, "")
}

func (l *linkNode) Image() (media.ImageElement, bool) {
	img := l.sel.Find(atom.Img.String()).First()
	if img.Length() == 0 {
		return nil, false
	}
	return &imageNode{sel: img}, true
}

func (l *linkNode) Container() (media.ContainerElement, bool) {
	div := l.sel.Find(atom.Div.String()).First()
	if div.Length() == 0 {
		return nil, false
	}
	return div, true
}

func (l *linkNode) HasInlineFrame() bool {
	return l.sel.Find(atom.Iframe.String()).Length() > 0
}

func (l *linkNode) OuterHTML() string {
	s, err := goquery.OuterHtml(l.sel)
	if err != nil {
		return fmt.Sprintf("<a> (render failed: %v)", err)
	}
	return s
}

type imageNode struct {
	sel *goquery.Selection
}

func (i *imageNode) HasAttr(name string) bool {
	_, ok := i.sel.Attr(name)
	return ok
}

func (i *imageNode) Attr(name string) string {
	return i.sel.AttrOr(name, "")
}
