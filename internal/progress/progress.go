// Package progress shows a spinner on stderr while the notification
// POST is in flight. On non-interactive streams it degrades to nothing,
// keeping piped output clean.
package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner animates a sending indicator on stderr. When stderr is not a
// terminal every method is a no-op.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// New creates a spinner with the given suffix message. The spinner is
// enabled only when stderr is a TTY, so it never pollutes redirected
// output or CI logs.
func New(message string) *Spinner {
	enabled := term.IsTerminal(int(os.Stderr.Fd()))
	if !enabled {
		return &Spinner{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr // stderr so stdout stays reserved for results
	s.Suffix = " " + message
	return &Spinner{s: s, enabled: true}
}

// Start begins the animation.
func (p *Spinner) Start() {
	if p.enabled {
		p.s.Start()
	}
}

// Stop halts the animation and clears the line.
func (p *Spinner) Stop() {
	if p.enabled {
		p.s.Stop()
	}
}
