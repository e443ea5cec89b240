// Package app runs the full Amdahl's Law visualization: compute both
// scenarios, render both charts and print a summary.
package app

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/amdahl/internal/config"
	"github.com/utkarsh5026/amdahl/internal/plot"
	"github.com/utkarsh5026/amdahl/internal/report"
	"github.com/utkarsh5026/amdahl/internal/speedup"
)

// Scenarios holds the computed curves for both charts.
type Scenarios struct {
	Simple     speedup.Series
	Processors []speedup.Series
}

// Compute evaluates both forms of the law over the ranges in cfg.
func Compute(cfg *config.Config) Scenarios {
	fractions := speedup.Linspace(0, cfg.FractionMax, cfg.Samples)
	processors := speedup.Processors(cfg.MaxProcessors)

	return Scenarios{
		Simple:     speedup.FractionSeries(fractions),
		Processors: speedup.ProcessorCurves(cfg.Fractions, processors),
	}
}

// Run computes, renders and reports in that order. The first failure is
// returned as is; files already written are left in place.
func Run(cfg *config.Config, stdout, stderr io.Writer) error {
	report.Header(stdout, "AMDAHL'S LAW",
		"  • S = 1 / (1 - P)",
		"  • S = 1 / (P/N + (1 - P))")

	report.Step(stdout, "Computing %d fractions and %s processor counts",
		cfg.Samples, report.FormatNumber(cfg.MaxProcessors))
	sc := Compute(cfg)

	bar := report.NewProgress(stderr, 2)
	if err := renderCharts(cfg, sc, bar); err != nil {
		// wipe the partial bar so the error line starts clean
		_ = bar.Clear()
		return err
	}
	_ = bar.Finish()

	report.Done(stdout, "Wrote %s", cfg.SimpleChartPath())
	report.Done(stdout, "Wrote %s", cfg.ProcessorChartPath())

	return report.SummaryTable(stdout, cfg.Fractions, report.Checkpoints(cfg.MaxProcessors))
}

func renderCharts(cfg *config.Config, sc Scenarios, bar *progressbar.ProgressBar) error {
	if err := plot.RenderSimple(cfg, sc.Simple); err != nil {
		return err
	}
	_ = bar.Add(1)

	if err := plot.RenderProcessors(cfg, sc.Processors); err != nil {
		return err
	}
	return bar.Add(1)
}
