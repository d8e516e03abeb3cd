// Package logger provides a structured logging interface for the scraper.
//
// It wraps zerolog with:
// - Log levels (Debug, Info, Warn, Error)
// - Structured fields
// - Console output to stderr, or a log file
// - A global logger instance
//
// Logs stay on stderr so they never interleave with the progress lines the
// scraper prints on stdout.
//
// Basic Usage:
//
//	cfg := &config.LoggingConfig{
//	    Level: "info",
//	    File:  "/var/log/askscraper.log",
//	}
//	err := logger.Initialize(cfg)
//
//	logger.WithField("version", "1.0.0").Info("Application started")
//	logger.WithField("username", "someone").Info("Crawl started")
//	logger.WithError(err).Error("Failed to fetch answers page")
//
// Components take a Logger so tests can pass NewNopLogger or a TestLogger:
//
//	log := logger.NewTestLogger()
//	client := askfm.NewClient(askfm.BaseURL, time.Second, log)
//	// ...
//	if !log.HasMessage("Answers page fetched") { ... }
package logger
