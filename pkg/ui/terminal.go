package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
)

func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

// Console writes the human-readable progress and diagnostic lines.
// Colors are only emitted when enabled.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
	quiet bool
}

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer, color bool) *Console {
	return &Console{out: out, color: color}
}

// NewStdoutConsole writes to stdout, coloring only when stdout is a terminal
func NewStdoutConsole() *Console {
	return NewConsole(os.Stdout, IsTerminal(os.Stdout))
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetQuiet suppresses everything but errors and the final summary
func (c *Console) SetQuiet(quiet bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiet = quiet
}

// SetColor toggles ANSI colors
func (c *Console) SetColor(color bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = color
}

func (c *Console) paint(fn func(string) string, s string) string {
	if !c.color {
		return s
	}
	return fn(s)
}

func (c *Console) println(always bool, line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quiet && !always {
		return
	}
	fmt.Fprintln(c.out, line)
}

// Printf prints a plain progress line
func (c *Console) Printf(format string, args ...interface{}) {
	c.println(false, fmt.Sprintf(format, args...))
}

// Warning prints a recoverable problem
func (c *Console) Warning(format string, args ...interface{}) {
	c.println(false, c.paint(Yellow, fmt.Sprintf(format, args...)))
}

// Error prints a failure; never suppressed
func (c *Console) Error(format string, args ...interface{}) {
	c.println(true, c.paint(Red, fmt.Sprintf(format, args...)))
}

// Success prints the closing summary; never suppressed
func (c *Console) Success(format string, args ...interface{}) {
	c.println(true, c.paint(Green, fmt.Sprintf(format, args...)))
}

// Highlight prints a banner line
func (c *Console) Highlight(format string, args ...interface{}) {
	c.println(false, c.paint(Magenta, fmt.Sprintf(format, args...)))
}
