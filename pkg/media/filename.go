package media

import (
	"fmt"
	"strings"
)

// fallbackExtension is used when the URL's last path segment has no dot
const fallbackExtension = "bin"

// FileName builds <prefix><page:03d>_<seq:02d>.<ext> for a downloaded item.
// The extension is copied verbatim from the URL after its last dot.
func FileName(kind Kind, page, seq int, url string) string {
	return fmt.Sprintf("%s%03d_%02d.%s", kind.FilePrefix(), page, seq, Extension(url))
}

// Extension returns the text after the last '.' of url. When that text would
// reach into the path (no dot in the final segment) the fallback is used so
// the name never contains a separator.
func Extension(url string) string {
	i := strings.LastIndex(url, ".")
	if i < 0 {
		return fallbackExtension
	}
	ext := url[i+1:]
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return fallbackExtension
	}
	return ext
}
