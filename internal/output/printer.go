// Package output provides styled terminal output for commitgate.
//
// The [Printer] renders the gate's own lines: the banner before each step
// and the end-of-run summary with the completion notice. Everything a step
// prints goes directly to the terminal through the executor, not through
// this package. Styling uses lipgloss and degrades automatically on
// terminals without color support; plain mode drops styling entirely.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"commitgate/internal/gate"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Printer writes commitgate's progress and summary lines.
type Printer struct {
	w     io.Writer
	plain bool
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout}
}

// NewPrinterWithWriter creates a Printer writing to w.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetPlain disables styling when plain is true.
func (p *Printer) SetPlain(plain bool) {
	p.plain = plain
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if p.plain {
		return s
	}
	return style.Render(s)
}

// StepStart prints the banner line for a step about to run. index is
// 1-based.
func (p *Printer) StepStart(index, total int, step gate.Step) {
	banner := fmt.Sprintf("[%d/%d] %s", index, total, step.Name)
	fmt.Fprintln(p.w, p.render(bannerStyle, banner))
}

// Summary prints one line per executed step followed by the completion
// notice. The notice appears on every run, pass or fail.
func (p *Printer) Summary(report gate.Report) {
	fmt.Fprintln(p.w)
	for _, res := range report.Results {
		if res.Passed() {
			fmt.Fprintln(p.w, p.render(passStyle, "✓ "+res.Step.Name))
		} else {
			fmt.Fprintln(p.w, p.render(failStyle, fmt.Sprintf("✗ %s (%v)", res.Step.Name, res.Err)))
		}
	}

	total := len(report.Results)
	if report.Failed() {
		notice := fmt.Sprintf("pre-commit checks complete: %d of %d failed", report.FailureCount(), total)
		fmt.Fprintln(p.w, p.render(failStyle, notice))
	} else {
		notice := fmt.Sprintf("pre-commit checks complete: all %d passed", total)
		fmt.Fprintln(p.w, p.render(passStyle, notice))
	}
}
