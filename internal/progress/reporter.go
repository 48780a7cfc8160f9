// Package progress reports the pages of a book export as they are written,
// on a terminal bar or as plain log lines.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Page describes one exported page.
type Page struct {
	Title string // Chapter title, or the name of a built-in view.
	File  string // Output path relative to the export root.
}

// Reporter follows a book export from the first page to the last.
type Reporter interface {
	Start(pages int)
	Wrote(n int, p Page)
	Done()
}

// NewReporter returns a LineReporter on stderr when the CI or
// GITHUB_ACTIONS environment variable is set, and a TerminalReporter
// otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter shows a bar labelled with the chapter being written.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetDescription("Exporting book"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Wrote(n int, p Page) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(p.Title)
	_ = r.bar.Set(n)
}

func (r *TerminalReporter) Done() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter writes one line per page, for logs without a terminal.
type LineReporter struct {
	Out   io.Writer
	pages int
	start time.Time
}

func (r *LineReporter) Start(pages int) {
	r.pages = pages
	r.start = time.Now()
	fmt.Fprintf(r.Out, "Exporting %d pages\n", pages)
}

func (r *LineReporter) Wrote(n int, p Page) {
	fmt.Fprintf(r.Out, "[%d/%d] %s -> %s\n", n, r.pages, p.Title, p.File)
}

func (r *LineReporter) Done() {
	fmt.Fprintf(r.Out, "Exported %d pages in %s\n", r.pages, time.Since(r.start).Round(time.Millisecond))
}

// Discard is a Reporter that reports nothing.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(int)       {}
func (discard) Wrote(int, Page) {}
func (discard) Done()           {}
