package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"askscraper/internal/downloader"
	"askscraper/pkg/askfm"
	"askscraper/pkg/config"
	apperrors "askscraper/pkg/errors"
	"askscraper/pkg/logger"
	"askscraper/pkg/ratelimit"
	"askscraper/pkg/storage"
	"askscraper/pkg/ui"
	"askscraper/pkg/walker"
)

const promptText = "Target username: "

var (
	// Scrape flags
	outputDir      string
	baseURL        string
	pageDelay      time.Duration
	requestTimeout time.Duration
)

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "base directory for downloads (default: directory of the executable)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "site root (default: "+config.DefaultBaseURL+")")
	rootCmd.Flags().DurationVar(&pageDelay, "page-delay", config.DefaultPageDelay, "pause between two answers pages")
	rootCmd.Flags().DurationVar(&requestTimeout, "request-timeout", config.DefaultRequestTimeout, "timeout of every page and media request")
}

// flagOverrides collects only the flags set on the command line
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	changed := cmd.Flags().Changed

	if changed("output") {
		flags["output"] = outputDir
	}
	if changed("base-url") {
		flags["base-url"] = baseURL
	}
	if changed("page-delay") {
		flags["page-delay"] = pageDelay
	}
	if changed("request-timeout") {
		flags["request-timeout"] = requestTimeout
	}
	if changed("log-level") {
		flags["log-level"] = logLevel
	}
	if changed("log-file") {
		flags["log-file"] = logFile
	}
	return flags
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.WithField("version", version).Debug("askscraper starting")
	log := logger.GetLogger()

	console := ui.NewStdoutConsole()
	if noColor {
		console.SetColor(false)
	}
	console.SetQuiet(quiet)

	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		username, err = promptUsername(os.Stdin, os.Stdout)
		if err != nil {
			logger.WithError(err).Error("Failed to read username")
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, ran := scrape(ctx, cfg, username, console, log)
	if ran {
		logger.WithFields(map[string]interface{}{
			"session_id":  summary.SessionID.String(),
			"total_media": summary.TotalMedia,
			"pages":       summary.PagesScraped,
			"reason":      string(summary.Reason),
		}).Debug("askscraper finished")
	}
	return nil
}

// promptUsername reads one line. End of input counts as an empty answer.
func promptUsername(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// scrape runs one crawl and prints its summary. It returns false when the
// username was empty and nothing was attempted; the summary is printed anyway.
func scrape(ctx context.Context, cfg *config.Config, rawUsername string, console *ui.Console, log logger.Logger) (walker.Summary, bool) {
	username := askfm.SanitizeUsername(rawUsername)
	if username == "" {
		console.Printf("No name entered.")
		finish(console, walker.Summary{})
		return walker.Summary{}, false
	}

	console.Printf("Scraping media from %s", askfm.ProfileURL(cfg.Site.BaseURL, username))

	dir, err := cfg.OutputDir(username)
	if err != nil {
		log.WithError(err).Error("Failed to resolve output directory")
		console.Error("%v", err)
		return finish(console, walker.Summary{}), true
	}

	store, err := storage.NewManager(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Error("Failed to create output directory")
		console.Error("%s", setupMessage(err))
		return finish(console, walker.Summary{}), true
	}

	client := askfm.NewClient(cfg.Site.BaseURL, cfg.Crawl.RequestTimeout, log)
	if cfg.Site.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.Site.UserAgent)
	}

	session := walker.NewSession(username, cfg.Site.BaseURL, store.GetOutputDir())
	w := walker.New(
		session,
		client,
		downloader.New(client, store, console, log),
		ratelimit.NewFixedDelay(cfg.Crawl.PageDelay),
		console,
		log,
	)

	return finish(console, w.Run(ctx)), true
}

func finish(console *ui.Console, summary walker.Summary) walker.Summary {
	console.Success("%s", summary.String())
	return summary
}

// setupMessage strips the error class prefix from a setup error
func setupMessage(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
