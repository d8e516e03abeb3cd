package media

// LinkElement is a read-only view of one anchor in a parsed answers page
type LinkElement interface {
	HasAttr(name string) bool
	Attr(name string) string

	// Image returns the first nested <img>
	Image() (ImageElement, bool)
	// Container returns the first nested <div>
	Container() (ContainerElement, bool)
	// HasInlineFrame reports a nested <iframe> anywhere below the link
	HasInlineFrame() bool

	// OuterHTML renders the element for diagnostics
	OuterHTML() string
}

// ImageElement is the nested image of a link
type ImageElement interface {
	HasAttr(name string) bool
	Attr(name string) string
}

// ContainerElement is the nested block whose classes tell video players apart
type ContainerElement interface {
	HasClass(name string) bool
}
