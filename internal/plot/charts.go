package plot

import (
	"github.com/utkarsh5026/amdahl/internal/config"
	"github.com/utkarsh5026/amdahl/internal/speedup"
)

// Axis titles used by both charts.
const (
	FractionAxisLabel  = "Parallel Fraction"
	ProcessorAxisLabel = "Number of Processors"
	SpeedupAxisLabel   = "Speedup"
)

// RenderSimple draws speedup against parallel fraction on linear axes and
// writes it to the configured simple chart path.
func RenderSimple(cfg *config.Config, s speedup.Series) error {
	fig := NewFigure(WithSize(cfg.Width, cfg.Height))
	defer fig.Close()

	if err := fig.Plot(s); err != nil {
		return err
	}
	fig.SetXLabel(FractionAxisLabel)
	fig.SetYLabel(SpeedupAxisLabel)

	return fig.Save(cfg.SimpleChartPath())
}

// RenderProcessors draws one curve per fixed fraction against processor
// count on a logarithmic x axis, with a legend, and writes it to the
// configured processor chart path.
func RenderProcessors(cfg *config.Config, curves []speedup.Series) error {
	fig := NewFigure(WithSize(cfg.Width, cfg.Height))
	defer fig.Close()

	for _, c := range curves {
		if err := fig.Plot(c); err != nil {
			return err
		}
	}
	fig.SetXScale(Log)
	fig.SetXLabel(ProcessorAxisLabel)
	fig.SetYLabel(SpeedupAxisLabel)
	fig.ShowLegend()

	return fig.Save(cfg.ProcessorChartPath())
}
