package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	logFile    string
	noColor    bool
	quiet      bool
)

// rootCmd scrapes one user when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "askscraper [username]",
	Short: "Download the photos, gifs and videos a user posted as answers on ask.fm",
	Long: `askscraper walks a user's answers page by page and downloads every
image, gif and uploaded video it finds into a directory named after the user.

The username is read from standard input unless it is given as an argument.
An empty username exits without doing anything.

Files are named <kind>_<page>_<sequence>.<ext>, for example image_000_00.jpg
or vid_003_01.mp4. YouTube videos are detected and counted but not downloaded.`,
	Example: `  # Prompt for the username
  askscraper

  # Scrape a given user into ./downloads/<username>
  askscraper someone --output ./downloads

  # Slow down between pages
  askscraper someone --page-delay 5s`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScrape,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.askscraper.yaml or $HOME/.config/askscraper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print only errors and the final summary")

	rootCmd.SetVersionTemplate(`askscraper {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
