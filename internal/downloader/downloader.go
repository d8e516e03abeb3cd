package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"askscraper/pkg/errors"
	"askscraper/pkg/logger"
	"askscraper/pkg/media"
	"askscraper/pkg/ui"
)

// Job is a single media item found on an answers page
type Job struct {
	URL      string
	Page     int
	Sequence int
	Kind     media.Kind
}

// Result represents the outcome of a download job
type Result struct {
	Job        Job
	Path       string
	Size       int64
	StatusCode int
	Duration   time.Duration
	Success    bool
	Error      error
}

// MediaSource opens a streaming GET for a media URL
type MediaSource interface {
	OpenMedia(ctx context.Context, url string) (*http.Response, error)
}

// MediaStorage persists a stream under a file name
type MediaStorage interface {
	SaveStream(r io.Reader, name string) (int64, error)
	Path(name string) string
}

// Downloader fetches one media item at a time
type Downloader struct {
	source  MediaSource
	storage MediaStorage
	console *ui.Console
	logger  logger.Logger
}

// New creates a Downloader
func New(source MediaSource, storage MediaStorage, console *ui.Console, log logger.Logger) *Downloader {
	if log == nil {
		log = logger.GetLogger()
	}
	if console == nil {
		console = ui.NewStdoutConsole()
	}

	return &Downloader{
		source:  source,
		storage: storage,
		console: console,
		logger:  log,
	}
}

// Download fetches job.URL and stores it as the file named after the job.
// Failures are reported on the console and in the Result; they never
// interrupt the caller.
func (d *Downloader) Download(ctx context.Context, job Job) (result Result) {
	start := time.Now()
	result.Job = job
	defer func() {
		result.Duration = time.Since(start)
	}()

	if !job.Kind.Downloadable() {
		result.Error = errors.New(errors.ErrorTypeUnknown, 0, job.URL,
			fmt.Sprintf("%s media is not downloadable", job.Kind), nil)
		logger.LogDownload(d.logger, job.URL, job.Kind.String(), "", false, nil)
		return result
	}

	name := media.FileName(job.Kind, job.Page, job.Sequence, job.URL)
	result.Path = d.storage.Path(name)

	resp, err := d.source.OpenMedia(ctx, job.URL)
	if err != nil {
		result.StatusCode = errors.StatusCode(err)
		result.Error = err
		d.console.Error("Connection error. Status code %d on media %s", result.StatusCode, job.URL)
		logger.LogDownload(d.logger, job.URL, job.Kind.String(), result.Path, false, err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		result.Error = errors.New(errors.ErrorTypeStatus, resp.StatusCode, job.URL, "could not get media", nil)
		d.console.Error("Could not get media. Status code %d on media %s", resp.StatusCode, job.URL)
		logger.LogDownload(d.logger, job.URL, job.Kind.String(), result.Path, false, result.Error)
		return result
	}

	body := &readTracker{r: resp.Body}
	size, err := d.storage.SaveStream(body, name)
	result.Size = size
	if err != nil {
		if body.err != nil {
			result.Error = errors.New(errors.ErrorTypeNetwork, resp.StatusCode, job.URL, "media stream interrupted", err)
			d.console.Error("Connection error. Status code %d on media %s", resp.StatusCode, job.URL)
		} else {
			result.Error = errors.New(errors.ErrorTypeStorage, resp.StatusCode, job.URL, "could not write media", err)
			d.console.Error("Could not save media to %s: %v", result.Path, err)
		}
		logger.LogDownload(d.logger, job.URL, job.Kind.String(), result.Path, false, result.Error)
		return result
	}

	result.Success = true
	logger.LogDownload(d.logger, job.URL, job.Kind.String(), result.Path, true, nil)
	return result
}

// readTracker remembers the first read failure so a broken stream can be
// told apart from a failed write
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
