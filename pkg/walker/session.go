package walker

import (
	"fmt"

	"github.com/google/uuid"

	"askscraper/pkg/media"
)

// State is a step of the crawl. A crawl ends in StateDone when the site
// reports no more answers and in StateAborted otherwise; both carry a Reason.
type State int

const (
	StateFetching State = iota
	StateProcessing
	StateSleeping
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateProcessing:
		return "processing"
	case StateSleeping:
		return "sleeping"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// Reason explains why a crawl stopped
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonConnectionError Reason = "connection-error"
	ReasonBadStatus       Reason = "bad-status"
	ReasonCanceled        Reason = "canceled"
)

// PageState holds the counters of the page being processed.
// Images covers both still images and gifs.
type PageState struct {
	Index  int
	Images int
	Videos int
	Total  int
}

// reset clears the per-page sequence counters, keeping Index and Total
func (p *PageState) reset() {
	p.Images = 0
	p.Videos = 0
}

// next returns the sequence number for kind and advances its counter.
// Kinds that are never downloaded get -1 and leave the counters alone.
func (p *PageState) next(kind media.Kind) int {
	var seq int
	switch {
	case !kind.Downloadable():
		return -1
	case kind.UsesVideoSequence():
		seq = p.Videos
		p.Videos++
	default:
		seq = p.Images
		p.Images++
	}
	p.Total++
	return seq
}

// Session is one crawl of one username
type Session struct {
	ID         uuid.UUID
	Username   string
	BaseURL    string
	Dir        string
	State      State
	Reason     Reason
	LastStatus int
	Page       PageState

	youtube int
	unknown int
	failed  int
}

// NewSession starts a session in the Fetching state at page 0
func NewSession(username, baseURL, dir string) *Session {
	return &Session{
		ID:       uuid.New(),
		Username: username,
		BaseURL:  baseURL,
		Dir:      dir,
		State:    StateFetching,
	}
}

// Summary is what a finished crawl reports
type Summary struct {
	SessionID    uuid.UUID
	TotalMedia   int
	PagesScraped int
	Reason       Reason
	StatusCode   int

	// Detected but not downloaded
	YoutubeVideos int
	UnknownMedia  int

	// Dispatched downloads that did not produce a file. They still count
	// towards TotalMedia.
	FailedDownloads int
}

// Summary snapshots the session counters
func (s *Session) Summary() Summary {
	return Summary{
		SessionID:       s.ID,
		TotalMedia:      s.Page.Total,
		PagesScraped:    s.Page.Index,
		Reason:          s.Reason,
		StatusCode:      s.LastStatus,
		YoutubeVideos:   s.youtube,
		UnknownMedia:    s.unknown,
		FailedDownloads: s.failed,
	}
}

// String formats the closing line
func (s Summary) String() string {
	return fmt.Sprintf("Scraped %d media from %d pages.", s.TotalMedia, s.PagesScraped)
}
