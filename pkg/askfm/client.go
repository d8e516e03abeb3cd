package askfm

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"askscraper/pkg/errors"
	"askscraper/pkg/logger"
	"askscraper/pkg/media"
)

// Page is one successfully fetched answers page
type Page struct {
	Number     int
	URL        string
	StatusCode int
	Links      []media.LinkElement
}

// Client performs single-attempt GET requests against the site.
// Pages are bounded by a whole-request timeout. Media requests bound the
// connect and response-header phases, then every body read, so a large file
// that keeps arriving is never cut off.
type Client struct {
	httpClient  *http.Client
	mediaClient *http.Client
	readTimeout time.Duration
	headers     map[string]string
	baseURL     string
	logger      logger.Logger
}

// NewClient creates a client whose requests are bounded by timeout
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}
	if baseURL == "" {
		baseURL = BaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		mediaClient: &http.Client{
			Transport: newMediaTransport(timeout),
		},
		readTimeout: timeout,
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9",
		},
		baseURL: baseURL,
		logger:  log,
	}
}

func newMediaTransport(timeout time.Duration) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout
	return transport
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// get issues one GET. A transport failure comes back as a network *errors.Error;
// any response, whatever its status, is returned for the caller to close.
func (c *Client) get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeUnknown, 0, url, "failed to create request", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.WarnWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.New(errors.ErrorTypeNetwork, 0, url, fmt.Sprintf("network error: %v", err), err)
	}

	logger.LogRequest(c.logger, req.Method, url, resp.StatusCode, float64(duration.Microseconds())/1000)
	return resp, nil
}

// FetchPage downloads and parses answers page n of username.
// Any status other than 200 is a status *errors.Error carrying the code and
// the requested URL; the site answers 204 once the pages run out.
func (c *Client) FetchPage(ctx context.Context, username string, n int) (*Page, error) {
	url := PageURL(c.baseURL, username, n)

	resp, err := c.get(ctx, c.httpClient, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrorTypeStatus, resp.StatusCode, url, errors.DescribeStatus(resp.StatusCode), nil)
	}

	links, err := ParseLinks(resp.Body)
	if err != nil {
		// a body cut short reads as a connection failure
		return nil, errors.New(errors.ErrorTypeNetwork, resp.StatusCode, url, "failed to read answers page", err)
	}

	c.logger.DebugWithFields("Answers page fetched", map[string]interface{}{
		"username": username,
		"page":     n,
		"links":    len(links),
	})

	return &Page{
		Number:     n,
		URL:        url,
		StatusCode: resp.StatusCode,
		Links:      links,
	}, nil
}

// OpenMedia starts a streaming GET for a media URL. The caller owns the
// response body on success. Reading the body fails once no byte has arrived
// for the client timeout.
func (c *Client) OpenMedia(ctx context.Context, url string) (*http.Response, error) {
	ctx, cancel := context.WithCancel(ctx)

	resp, err := c.get(ctx, c.mediaClient, url)
	if err != nil {
		cancel()
		return nil, err
	}

	resp.Body = newIdleTimeoutBody(resp.Body, c.readTimeout, cancel)
	return resp, nil
}
