package logger

import (
	"github.com/rs/zerolog"
)

// LogRequest logs a completed HTTP exchange, choosing the level from the status
func LogRequest(l Logger, method, url string, statusCode int, durationMs float64) {
	fields := map[string]interface{}{
		"method":      method,
		"url":         url,
		"status_code": statusCode,
		"duration_ms": durationMs,
	}

	switch {
	case statusCode >= 500:
		l.ErrorWithFields("HTTP request server error", fields)
	case statusCode >= 400:
		l.WarnWithFields("HTTP request client error", fields)
	default:
		l.DebugWithFields("HTTP request completed", fields)
	}
}

// LogDownload logs the outcome of one media download
func LogDownload(l Logger, url, kind, path string, success bool, err error) {
	entry := l.WithFields(map[string]interface{}{
		"url":        url,
		"media_kind": kind,
		"path":       path,
		"success":    success,
	})

	switch {
	case err != nil:
		entry.WithError(err).Warn("Download failed")
	case success:
		entry.Info("Download completed")
	default:
		entry.Debug("Download skipped")
	}
}

// LogPage logs per-page counters once the page has been drained
func LogPage(l Logger, username string, page, images, videos, total int) {
	l.InfoWithFields("Page processed", map[string]interface{}{
		"username": username,
		"page":     page,
		"images":   images,
		"videos":   videos,
		"total":    total,
	})
}

// LogComponentStart logs when a component starts
func LogComponentStart(l Logger, component string, cfg map[string]interface{}) {
	entry := l.WithField("component", component)
	if len(cfg) > 0 {
		entry = entry.WithFields(cfg)
	}
	entry.Info("Component started")
}

// LogComponentStop logs when a component stops
func LogComponentStop(l Logger, component, reason string) {
	l.WithFields(map[string]interface{}{
		"component": component,
		"reason":    reason,
	}).Info("Component stopped")
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger                               { return nil }
