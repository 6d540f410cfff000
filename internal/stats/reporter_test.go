package stats

import (
	"strings"
	"testing"

	"evomax/internal/evo"
)

func snap(best, second, median float64) evo.ReportSnapshot {
	return evo.ReportSnapshot{
		Best:    best,
		Second:  second,
		Median:  median,
		BestX:   []float64{0.5, 0.25},
		SecondX: []float64{0.4, 0.3},
		MedianX: []float64{0.1, 0.9},
	}
}

func TestReporterSilentAtZeroVerbosity(t *testing.T) {
	var buf strings.Builder
	r := &GenerationReporter{W: &buf, Verbosity: 0, Digits: 5}
	r.Report(1, 10, 0.005, snap(-0.1, -0.2, -0.5))
	if buf.Len() != 0 {
		t.Fatalf("verbosity 0 produced output: %q", buf.String())
	}
}

func TestReporterPrintsOnlyChangesAtVerbosityOne(t *testing.T) {
	var buf strings.Builder
	r := &GenerationReporter{W: &buf, Verbosity: 1, Digits: 5}

	r.Report(1, 10, 0.005, snap(-0.1, -0.2, -0.5))
	first := buf.Len()
	if first == 0 {
		t.Fatal("first generation was not printed")
	}

	// Unchanged best and rate: nothing new.
	r.Report(2, 8, 0.005, snap(-0.1, -0.2, -0.5))
	if buf.Len() != first {
		t.Fatal("unchanged generation was printed at verbosity 1")
	}

	r.Report(3, 8, 0.005, snap(-0.05, -0.2, -0.5))
	if buf.Len() == first {
		t.Fatal("improved generation was not printed")
	}
}

func TestReporterPrintsEveryGenerationAtVerbosityTwo(t *testing.T) {
	var buf strings.Builder
	r := &GenerationReporter{W: &buf, Verbosity: 2, Digits: 3}

	r.Report(1, 10, 0.005, snap(-0.1, -0.2, -0.5))
	r.Report(2, 8, 0.005, snap(-0.1, -0.2, -0.5))

	out := buf.String()
	if !strings.Contains(out, "generation") {
		t.Fatalf("missing header: %q", out)
	}
	lines := strings.Count(out, "\n")
	// Header plus two generations, each a summary line and three variable rows.
	if lines != 1+2*4 {
		t.Fatalf("line count = %d: %q", lines, out)
	}
}

func TestReporterRendersVariablesAsDigitStrings(t *testing.T) {
	var buf strings.Builder
	r := &GenerationReporter{W: &buf, Verbosity: 2, Digits: 3}
	r.Report(1, 10, 0.005, snap(-0.1, -0.2, -0.5))

	out := buf.String()
	// 0.5 and 0.25 at three digits encode as 500 and 250.
	if !strings.Contains(out, "500") || !strings.Contains(out, "250") {
		t.Fatalf("variable rows missing encoded values: %q", out)
	}
}
