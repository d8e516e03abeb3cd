package askfm

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// BaseURL is the default site root
	BaseURL = "http://ask.fm"

	// AnswersPath is appended to the username for the paginated answers feed
	AnswersPath = "/answers/more/"

	// PageParam carries the zero-based page index
	PageParam = "page"
)

// AnswersURL returns {base}/{username}/answers/more/
func AnswersURL(base, username string) string {
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(base, "/"), url.PathEscape(username), AnswersPath)
}

// PageURL returns the answers feed URL for page n
func PageURL(base, username string, n int) string {
	params := url.Values{}
	params.Set(PageParam, strconv.Itoa(n))
	return AnswersURL(base, username) + "?" + params.Encode()
}

// ProfileURL returns the public profile URL used in progress output
func ProfileURL(base, username string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), username)
}

// SanitizeUsername trims the input line: surrounding spaces, a leading '@'
// and trailing slashes are dropped. It may return "".
func SanitizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	return strings.TrimRight(username, "/ ")
}
