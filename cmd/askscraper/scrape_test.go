package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askscraper/pkg/config"
	"askscraper/pkg/logger"
	"askscraper/pkg/ui"
	"askscraper/pkg/walker"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Site.BaseURL = baseURL
	cfg.Crawl.PageDelay = 0
	cfg.Crawl.RequestTimeout = 5 * time.Second
	cfg.Output.BaseDirectory = t.TempDir()
	return cfg
}

func countingServer(t *testing.T, status int) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestScrapeEmptyUsername(t *testing.T) {
	server, hits := countingServer(t, http.StatusNoContent)
	cfg := testConfig(t, server.URL)

	for _, input := range []string{"", "   ", "@", "\t"} {
		var out bytes.Buffer
		_, ran := scrape(context.Background(), cfg, input, ui.NewConsole(&out, false), logger.NewNopLogger())

		assert.False(t, ran)
		assert.Equal(t, "No name entered.\nScraped 0 media from 0 pages.\n", out.String())
	}

	entries, err := os.ReadDir(cfg.Output.BaseDirectory)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestScrapeNoAnswers(t *testing.T) {
	server, hits := countingServer(t, http.StatusNoContent)
	cfg := testConfig(t, server.URL)

	var out bytes.Buffer
	summary, ran := scrape(context.Background(), cfg, " someone\n", ui.NewConsole(&out, false), logger.NewNopLogger())

	require.True(t, ran)
	assert.Equal(t, walker.ReasonBadStatus, summary.Reason)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.DirExists(t, filepath.Join(cfg.Output.BaseDirectory, "someone"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Scraping media from "+server.URL+"/someone", lines[0])
	assert.Equal(t, "Status code 204 on "+server.URL+"/someone/answers/more/?page=0", lines[1])
	assert.Equal(t, "Scraped 0 media from 0 pages.", lines[2])
}

func TestScrapeSetupError(t *testing.T) {
	server, hits := countingServer(t, http.StatusOK)
	cfg := testConfig(t, server.URL)

	// a regular file where the base directory should be
	blocker := filepath.Join(cfg.Output.BaseDirectory, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.Output.BaseDirectory = blocker

	var out bytes.Buffer
	summary, ran := scrape(context.Background(), cfg, "someone", ui.NewConsole(&out, false), logger.NewNopLogger())

	assert.True(t, ran)
	assert.Equal(t, 0, summary.TotalMedia)
	assert.Zero(t, atomic.LoadInt32(hits))
	assert.Contains(t, out.String(), "failed to create output directory")
	assert.True(t, strings.HasSuffix(out.String(), "Scraped 0 media from 0 pages.\n"))
}

func TestPromptUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line", "someone\n", "someone"},
		{"windows line ending", "someone\r\n", "someone"},
		{"no newline", "someone", "someone"},
		{"empty", "\n", ""},
		{"eof", "", ""},
		{"only first line", "first\nsecond\n", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptUsername(strings.NewReader(tt.input), &out)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, promptText, out.String())
		})
	}
}

func TestFlagOverrides(t *testing.T) {
	cmd := rootCmd
	require.NoError(t, cmd.Flags().Set("page-delay", "5s"))
	require.NoError(t, cmd.Flags().Set("output", "/tmp/out"))
	t.Cleanup(func() {
		cmd.Flags().Set("page-delay", config.DefaultPageDelay.String())
		cmd.Flags().Set("output", "")
		cmd.Flags().Lookup("page-delay").Changed = false
		cmd.Flags().Lookup("output").Changed = false
	})

	flags := flagOverrides(cmd)

	assert.Equal(t, 5*time.Second, flags["page-delay"])
	assert.Equal(t, "/tmp/out", flags["output"])
	assert.NotContains(t, flags, "base-url")
	assert.NotContains(t, flags, "request-timeout")
}
