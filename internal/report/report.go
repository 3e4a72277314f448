// Package report renders scan results for humans.
package report

import (
	"fmt"
	"io"

	"github.com/starford/docscheck/internal/models"
)

// SuccessMessage is printed when a pass has no findings.
const SuccessMessage = "Docs check OK: no missing links or legacy onboarding/settings paths."

// Write renders r to w. Each findings section is followed by a blank line;
// a clean report is a single success line.
func Write(w io.Writer, r *models.Report) error {
	ew := &errWriter{w: w}

	if len(r.MissingLinks) > 0 {
		ew.printf("Missing documentation links:\n")
		for _, m := range r.MissingLinks {
			ew.printf("  - %s:%d -> %s\n", m.Path, m.Line, m.Target)
		}
		ew.printf("\n")
	}

	if len(r.LegacyRefs) > 0 {
		ew.printf("Legacy path references:\n")
		for _, l := range r.LegacyRefs {
			ew.printf("  - %s:%d uses %s (use %s)\n", l.Path, l.Line, l.Legacy, l.Replacement)
		}
		ew.printf("\n")
	}

	if r.OK() {
		ew.printf("%s\n", SuccessMessage)
	}
	if ew.err != nil {
		return fmt.Errorf("report: write: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error and skips everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
