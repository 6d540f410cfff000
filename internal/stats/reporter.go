package stats

import (
	"fmt"
	"io"

	"evomax/internal/evo"
)

// GenerationReporter prints a per-generation summary table. Verbosity 0 is
// silent, 1 prints only generations where the best fitness or mutation rate
// moved, 2 prints every generation.
type GenerationReporter struct {
	W         io.Writer
	Verbosity int
	Digits    int

	started  bool
	lastBest float64
	lastPmut float64
}

func (r *GenerationReporter) Report(generation, admitted int, pmut float64, snap evo.ReportSnapshot) {
	if r.Verbosity <= 0 || r.W == nil {
		return
	}
	changed := !r.started || snap.Best != r.lastBest || pmut != r.lastPmut
	if r.Verbosity < 2 && !changed {
		return
	}

	if !r.started {
		fmt.Fprintf(r.W, "%10s %8s %10s %14s %14s %14s\n",
			"generation", "new", "pmut", "best", "second", "median")
		r.started = true
	}
	fmt.Fprintf(r.W, "%10d %8d %10.6f %14.6g %14.6g %14.6g\n",
		generation, admitted, pmut, snap.Best, snap.Second, snap.Median)
	r.printVariables("best", snap.BestX)
	r.printVariables("second", snap.SecondX)
	r.printVariables("median", snap.MedianX)

	r.lastBest = snap.Best
	r.lastPmut = pmut
}

// printVariables renders a phenotype as the integer digit strings the engine
// actually evolves, one value per variable.
func (r *GenerationReporter) printVariables(label string, x []float64) {
	if len(x) == 0 {
		return
	}
	scale := 1
	for i := 0; i < r.Digits; i++ {
		scale *= 10
	}
	fmt.Fprintf(r.W, "%10s ", label)
	for _, v := range x {
		ip := int(v * float64(scale))
		if ip > scale-1 {
			ip = scale - 1
		}
		if ip < 0 {
			ip = 0
		}
		fmt.Fprintf(r.W, " %0*d", r.Digits, ip)
	}
	fmt.Fprintln(r.W)
}
