package media

import "fmt"

// Kind is the closed set of media shapes an answer link can carry
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindGif
	KindUploadedVideo
	KindYoutubeVideo
)

// String returns the name used in logs
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindImage:
		return "image"
	case KindGif:
		return "gif"
	case KindUploadedVideo:
		return "uploaded_video"
	case KindYoutubeVideo:
		return "youtube_video"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Downloadable reports whether media of this kind is fetched to disk.
// YouTube videos are detected for reporting only.
func (k Kind) Downloadable() bool {
	switch k {
	case KindImage, KindGif, KindUploadedVideo:
		return true
	case KindUnknown, KindYoutubeVideo:
		return false
	default:
		return false
	}
}

// FilePrefix is the file name prefix for media of this kind
func (k Kind) FilePrefix() string {
	switch k {
	case KindImage, KindGif:
		return "image_"
	case KindUploadedVideo:
		return "vid_"
	case KindYoutubeVideo:
		return "yt_"
	case KindUnknown:
		return ""
	default:
		return ""
	}
}

// UsesVideoSequence reports whether downloads of the kind are numbered with
// the per-page video sequence rather than the image one
func (k Kind) UsesVideoSequence() bool {
	switch k {
	case KindUploadedVideo:
		return true
	case KindUnknown, KindImage, KindGif, KindYoutubeVideo:
		return false
	default:
		return false
	}
}
