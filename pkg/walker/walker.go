package walker

import (
	"context"
	"net/http"

	"askscraper/internal/downloader"
	"askscraper/pkg/askfm"
	"askscraper/pkg/errors"
	"askscraper/pkg/logger"
	"askscraper/pkg/media"
	"askscraper/pkg/ratelimit"
	"askscraper/pkg/ui"
)

// PageFetcher returns one parsed answers page
type PageFetcher interface {
	FetchPage(ctx context.Context, username string, n int) (*askfm.Page, error)
}

// MediaDownloader stores one media item and reports how it went
type MediaDownloader interface {
	Download(ctx context.Context, job downloader.Job) downloader.Result
}

// Walker runs a Session to completion
type Walker struct {
	session    *Session
	fetcher    PageFetcher
	downloader MediaDownloader
	limiter    ratelimit.Limiter
	console    *ui.Console
	logger     logger.Logger
}

// New creates a Walker for session
func New(
	session *Session,
	fetcher PageFetcher,
	dl MediaDownloader,
	limiter ratelimit.Limiter,
	console *ui.Console,
	log logger.Logger,
) *Walker {
	if log == nil {
		log = logger.GetLogger()
	}
	if console == nil {
		console = ui.NewStdoutConsole()
	}

	return &Walker{
		session:    session,
		fetcher:    fetcher,
		downloader: dl,
		limiter:    limiter,
		console:    console,
		logger: log.WithFields(map[string]interface{}{
			"session_id": session.ID.String(),
			"username":   session.Username,
		}),
	}
}

// Session returns the session being walked
func (w *Walker) Session() *Session {
	return w.session
}

// Run walks pages until one fails or ctx is done. It always returns a
// Summary; page and media failures are reported, not returned.
func (w *Walker) Run(ctx context.Context) Summary {
	logger.LogComponentStart(w.logger, "walker", map[string]interface{}{
		"base_url": w.session.BaseURL,
		"dir":      w.session.Dir,
	})

	var page *askfm.Page
	for !w.session.State.Terminal() {
		switch w.session.State {
		case StateFetching:
			page = w.fetch(ctx)
		case StateProcessing:
			w.process(ctx, page)
			page = nil
		case StateSleeping:
			w.sleep(ctx)
		}
	}

	summary := w.session.Summary()
	logger.LogComponentStop(w.logger, "walker", string(summary.Reason))
	w.logger.InfoWithFields("Crawl finished", map[string]interface{}{
		"total_media":      summary.TotalMedia,
		"pages":            summary.PagesScraped,
		"status_code":      summary.StatusCode,
		"youtube_videos":   summary.YoutubeVideos,
		"unknown_media":    summary.UnknownMedia,
		"failed_downloads": summary.FailedDownloads,
	})
	return summary
}

func (w *Walker) abort(reason Reason) {
	w.session.State = StateAborted
	w.session.Reason = reason
}

func (w *Walker) fetch(ctx context.Context) *askfm.Page {
	n := w.session.Page.Index
	if ctx.Err() != nil {
		w.abort(ReasonCanceled)
		return nil
	}

	page, err := w.fetcher.FetchPage(ctx, w.session.Username, n)
	if err != nil {
		url := askfm.PageURL(w.session.BaseURL, w.session.Username, n)
		w.session.LastStatus = errors.StatusCode(err)

		switch {
		case ctx.Err() != nil:
			w.abort(ReasonCanceled)
		case errors.IsStatus(err):
			w.console.Printf("Status code %d on %s", w.session.LastStatus, url)
			w.logger.InfoWithFields("Pagination stopped", map[string]interface{}{
				"page":        n,
				"status_code": w.session.LastStatus,
				"hint":        errors.DescribeStatus(w.session.LastStatus),
			})
			w.abort(ReasonBadStatus)
			if w.session.LastStatus == http.StatusNoContent {
				w.session.State = StateDone
			}
		default:
			w.console.Error("Connection error on %s. Check your internet connection.", url)
			w.logger.WithError(err).WithField("page", n).Error("Failed to fetch answers page")
			w.abort(ReasonConnectionError)
		}
		return nil
	}

	w.session.LastStatus = page.StatusCode
	w.session.State = StateProcessing
	return page
}

func (w *Walker) process(ctx context.Context, page *askfm.Page) {
	state := &w.session.Page
	state.reset()
	before := state.Total

	for _, link := range page.Links {
		if ctx.Err() != nil {
			w.abort(ReasonCanceled)
			return
		}
		if !media.IsCandidate(link) {
			continue
		}

		result := media.Classify(link)
		switch result.Kind {
		case media.KindImage, media.KindGif, media.KindUploadedVideo:
			job := downloader.Job{
				URL:      result.URL,
				Page:     state.Index,
				Sequence: state.next(result.Kind),
				Kind:     result.Kind,
			}
			if res := w.downloader.Download(ctx, job); !res.Success {
				w.session.failed++
			}
		case media.KindYoutubeVideo:
			w.session.youtube++
			w.logger.DebugWithFields("YouTube video detected", map[string]interface{}{
				"page": state.Index,
				"url":  result.URL,
			})
		case media.KindUnknown:
			w.session.unknown++
			w.console.Warning("Unknown media : %s", link.OuterHTML())
		}
	}

	logger.LogPage(w.logger, w.session.Username, state.Index, state.Images, state.Videos, state.Total-before)

	state.Index++
	w.session.State = StateSleeping
}

func (w *Walker) sleep(ctx context.Context) {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			w.abort(ReasonCanceled)
			return
		}
	}
	w.session.State = StateFetching
}
