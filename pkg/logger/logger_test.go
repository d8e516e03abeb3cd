package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askscraper/pkg/config"
)

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zlog := zerolog.New(buf).Level(zerolog.DebugLevel)
	return &zerologLogger{logger: &zlog, fields: make(map[string]interface{})}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{name: "info level", cfg: &config.LoggingConfig{Level: "info"}},
		{name: "debug level", cfg: &config.LoggingConfig{Level: "debug"}},
		{name: "invalid level", cfg: &config.LoggingConfig{Level: "chatty"}, wantErr: true},
		{name: "file output", cfg: &config.LoggingConfig{Level: "info", File: filepath.Join(t.TempDir(), "logs", "askscraper.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestFieldChaining(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.WithField("username", "someone").
		WithFields(map[string]interface{}{"page": 3, "elapsed": 2 * time.Second}).
		WithError(errors.New("boom")).
		Info("chained fields")

	out := buf.String()
	assert.Contains(t, out, "chained fields")
	assert.Contains(t, out, `"username":"someone"`)
	assert.Contains(t, out, `"page":3`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestWithErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)
	assert.Same(t, l, l.WithError(nil))
}

func TestChildDoesNotLeakFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	parent := newBufferLogger(&buf)

	_ = parent.WithField("child_only", true)
	parent.Warn("parent message")

	assert.NotContains(t, buf.String(), "child_only")
}

func TestLogRequestLevels(t *testing.T) {
	tl := NewTestLogger()

	LogRequest(tl, "GET", "http://x/a", 200, 1)
	LogRequest(tl, "GET", "http://x/b", 404, 1)
	LogRequest(tl, "GET", "http://x/c", 503, 1)

	msgs := tl.GetMessages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "DEBUG", msgs[0].Level)
	assert.Equal(t, "WARN", msgs[1].Level)
	assert.Equal(t, "ERROR", msgs[2].Level)
	assert.Equal(t, 404, msgs[1].Fields["status_code"])
}

func TestLogDownload(t *testing.T) {
	tl := NewTestLogger()

	LogDownload(tl, "http://x/a.jpg", "image", "/tmp/image_000_00.jpg", true, nil)
	LogDownload(tl, "http://x/b.jpg", "image", "", false, errors.New("reset"))

	require.True(t, tl.HasMessage("Download completed"))
	failed := tl.GetMessagesByLevel("WARN")
	require.Len(t, failed, 1)
	assert.EqualError(t, failed[0].Error, "reset")
	assert.Equal(t, "http://x/b.jpg", failed[0].Fields["url"])
}

func TestTestLoggerSharesSink(t *testing.T) {
	tl := NewTestLogger()
	child := tl.WithField("component", "walker")
	child.Info("hello")

	assert.Equal(t, 1, tl.CountMessage("hello"))
	assert.True(t, strings.Contains(tl.String(), "component=walker"))

	tl.Clear()
	assert.Empty(t, tl.GetMessages())
}

func TestGlobalLogger(t *testing.T) {
	require.NoError(t, Initialize(&config.LoggingConfig{Level: "error"}))
	assert.NotNil(t, GetLogger())

	// must not panic
	WithField("key", "value").Warn("with field")
	WithFields(map[string]interface{}{"page": 1}).Info("with fields")
	WithError(errors.New("test")).Error("with error")
}

func TestConsoleWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	zlog := zerolog.New(newConsoleWriter(&buf, false)).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	zlog.Warn().Str("url", "http://x").Msg("Download failed")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "| Download failed")
	assert.Contains(t, out, "url=http://x")
	assert.NotContains(t, out, "\033[")
	assert.False(t, isTerminal(&buf))
}

func TestFileOutputOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "askscraper.log")
	l, err := New(&config.LoggingConfig{Level: "info", File: path})
	require.NoError(t, err)

	l.WithField("page", 2).Info("Page processed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Page processed"`)
	assert.Contains(t, string(data), `"page":2`)
}
