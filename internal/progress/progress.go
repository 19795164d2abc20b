package progress

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Indicator reports pagination progress on stderr so the card lines on
// stdout stay clean. Disabled indicators swallow every call, which
// keeps the fetch loop free of verbosity checks.
type Indicator struct {
	enabled bool
	w       io.Writer
	message string
	start   time.Time
}

func New(message string, enabled bool) *Indicator {
	return &Indicator{
		enabled: enabled,
		w:       os.Stderr,
		message: message,
	}
}

func (p *Indicator) Start() {
	if !p.enabled {
		return
	}
	p.start = time.Now()
	fmt.Fprintf(p.w, "%s...\n", p.message)
}

// Page reports one fetched page: its number, the cards it carried and
// the running total.
func (p *Indicator) Page(page, got, total int) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "  page %d: %d cards (%d total)\n", page, got, total)
}

func (p *Indicator) Finish(total int) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%s: %d cards in %s\n", p.message, total, formatDuration(time.Since(p.start)))
}

func (p *Indicator) Fail(err error) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%s: failed after %s: %v\n", p.message, formatDuration(time.Since(p.start)), err)
}

// SetOutput redirects the indicator, for tests.
func (p *Indicator) SetOutput(w io.Writer) {
	p.w = w
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}
