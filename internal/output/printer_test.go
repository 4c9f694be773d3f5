package output

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"commitgate/internal/gate"
)

// --- Printer construction tests ---

func TestNewPrinter(t *testing.T) {
	p := NewPrinter()
	if p.w != os.Stdout {
		t.Error("NewPrinter() should write to stdout")
	}
	if p.plain {
		t.Error("NewPrinter() should default to styled output")
	}
}

func TestNewPrinterWithWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf)
	if p.w != &buf {
		t.Error("NewPrinterWithWriter() should write to the given writer")
	}
}

// --- StepStart tests ---

func TestStepStart(t *testing.T) {
	tests := []struct {
		name  string
		index int
		total int
		step  gate.Step
		want  string
	}{
		{"first of four", 1, 4, gate.NewStep("cargo", "fmt", "--", "--check"), "[1/4] cargo fmt -- --check"},
		{"middle step", 3, 4, gate.NewStep("cargo", "clippy"), "[3/4] cargo clippy"},
		{"single step", 1, 1, gate.NewStep("cargo", "check"), "[1/1] cargo check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinterWithWriter(&buf)
			p.SetPlain(true)
			p.StepStart(tt.index, tt.total, tt.step)

			got := strings.TrimSuffix(buf.String(), "\n")
			if got != tt.want {
				t.Errorf("StepStart(%d, %d, %q) wrote %q, want %q", tt.index, tt.total, tt.step.Name, got, tt.want)
			}
		})
	}
}

// --- Summary tests ---

func TestSummary_AllPassed(t *testing.T) {
	report := gate.Report{Results: []gate.Result{
		{Step: gate.NewStep("cargo", "fmt", "--", "--check")},
		{Step: gate.NewStep("cargo", "check")},
		{Step: gate.NewStep("cargo", "clippy")},
		{Step: gate.NewStep("cargo", "test")},
	}}

	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf)
	p.SetPlain(true)
	p.Summary(report)

	out := buf.String()
	for _, want := range []string{
		"✓ cargo fmt -- --check",
		"✓ cargo check",
		"✓ cargo clippy",
		"✓ cargo test",
		"pre-commit checks complete: all 4 passed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "✗") {
		t.Errorf("Summary() printed a failure marker for a passing report:\n%s", out)
	}
}

func TestSummary_WithFailures(t *testing.T) {
	report := gate.Report{Results: []gate.Result{
		{Step: gate.NewStep("cargo", "fmt", "--", "--check")},
		{Step: gate.NewStep("cargo", "check"), Err: errors.New("exit status 101")},
		{Step: gate.NewStep("cargo", "clippy")},
		{Step: gate.NewStep("cargo", "test"), Err: errors.New("exit status 1")},
	}}

	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf)
	p.SetPlain(true)
	p.Summary(report)

	out := buf.String()
	for _, want := range []string{
		"✓ cargo fmt -- --check",
		"✗ cargo check (exit status 101)",
		"✓ cargo clippy",
		"✗ cargo test (exit status 1)",
		"pre-commit checks complete: 2 of 4 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q, got:\n%s", want, out)
		}
	}
}

func TestSummary_CompletionNotice(t *testing.T) {
	tests := []struct {
		name   string
		report gate.Report
		want   string
	}{
		{
			"all passed",
			gate.Report{Results: []gate.Result{
				{Step: gate.NewStep("cargo", "check")},
			}},
			"pre-commit checks complete: all 1 passed",
		},
		{
			"all failed",
			gate.Report{Results: []gate.Result{
				{Step: gate.NewStep("cargo", "check"), Err: errors.New("exit status 101")},
				{Step: gate.NewStep("cargo", "test"), Err: errors.New("exit status 1")},
			}},
			"pre-commit checks complete: 2 of 2 failed",
		},
		{
			"one of several failed",
			gate.Report{Results: []gate.Result{
				{Step: gate.NewStep("cargo", "check")},
				{Step: gate.NewStep("cargo", "test"), Err: errors.New("exit status 1")},
			}},
			"pre-commit checks complete: 1 of 2 failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinterWithWriter(&buf)
			p.SetPlain(true)
			p.Summary(tt.report)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Summary() notice missing %q, got:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestSummary_StyledKeepsText(t *testing.T) {
	report := gate.Report{Results: []gate.Result{
		{Step: gate.NewStep("cargo", "check")},
	}}

	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf)
	p.Summary(report)

	// Styling may add escape codes but never alters the text itself.
	out := buf.String()
	if !strings.Contains(out, "cargo check") {
		t.Errorf("styled Summary() lost step name, got:\n%s", out)
	}
	if !strings.Contains(out, "pre-commit checks complete") {
		t.Errorf("styled Summary() lost completion notice, got:\n%s", out)
	}
}
