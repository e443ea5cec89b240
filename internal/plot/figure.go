// Package plot renders speedup curves to PNG files.
//
// A Figure is a drawing canvas that is acquired with NewFigure and released
// with Close. Each chart gets its own Figure, so nothing drawn for one chart
// can leak into the next:
//
//	fig := plot.NewFigure(plot.WithSize(640, 480))
//	defer fig.Close()
//	_ = fig.Plot(series)
//	fig.SetXLabel("Parallel Fraction")
//	fig.SetYLabel("Speedup")
//	err := fig.Save("Amdahl_simple.png")
//
// Rendering is deterministic: the same series produce the same bytes.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/utkarsh5026/amdahl/internal/speedup"
)

var (
	// ErrFigureClosed is returned when a Figure is used after Close.
	ErrFigureClosed = errors.New("figure already closed")

	// ErrNoSeries is returned by Save when nothing was plotted.
	ErrNoSeries = errors.New("figure has no series")

	// ErrLengthMismatch is returned by Plot when X and Y differ in length.
	ErrLengthMismatch = errors.New("series X and Y lengths differ")

	// ErrEmptySeries is returned by Plot for a series without points.
	ErrEmptySeries = errors.New("series has no points")
)

// FigureOption is a functional option for configuring a Figure.
type FigureOption func(*Figure)

// WithSize sets the output size in pixels.
func WithSize(width, height int) FigureOption {
	return func(f *Figure) {
		if width > 0 && height > 0 {
			f.width = width
			f.height = height
		}
	}
}

// Figure holds everything drawn for a single chart until it is saved.
type Figure struct {
	width  int
	height int

	xLabel string
	yLabel string
	xScale Scale
	legend bool

	series []speedup.Series
	closed bool
}

// NewFigure acquires an empty canvas. Callers must Close it.
func NewFigure(opts ...FigureOption) *Figure {
	f := &Figure{
		width:  chart.DefaultChartWidth,
		height: chart.DefaultChartHeight,
		xScale: Linear,
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Plot adds a curve to the figure. Curves are drawn in the order added.
func (f *Figure) Plot(s speedup.Series) error {
	if f.closed {
		return ErrFigureClosed
	}
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %q has %d x and %d y values", ErrLengthMismatch, s.Label, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptySeries, s.Label)
	}

	f.series = append(f.series, s)
	return nil
}

// SetXLabel sets the x axis title.
func (f *Figure) SetXLabel(label string) {
	if !f.closed {
		f.xLabel = label
	}
}

// SetYLabel sets the y axis title.
func (f *Figure) SetYLabel(label string) {
	if !f.closed {
		f.yLabel = label
	}
}

// SetXScale switches the x axis between linear and logarithmic.
func (f *Figure) SetXScale(scale Scale) {
	if !f.closed {
		f.xScale = scale
	}
}

// ShowLegend draws a legend naming each curve by its label.
func (f *Figure) ShowLegend() {
	if !f.closed {
		f.legend = true
	}
}

// Len returns the number of curves plotted so far.
func (f *Figure) Len() int {
	return len(f.series)
}

// Close releases the canvas. Calling it more than once is safe.
func (f *Figure) Close() {
	f.series = nil
	f.legend = false
	f.xLabel = ""
	f.yLabel = ""
	f.closed = true
}

// Save renders the figure as PNG and writes it to path, replacing any
// existing file. Nothing is written when rendering fails.
func (f *Figure) Save(path string) error {
	if f.closed {
		return ErrFigureClosed
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return err
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	return nil
}

// Render draws the figure as PNG into buf.
func (f *Figure) Render(buf *bytes.Buffer) error {
	if f.closed {
		return ErrFigureClosed
	}
	if len(f.series) == 0 {
		return ErrNoSeries
	}

	ch, err := f.build()
	if err != nil {
		return err
	}

	if err := ch.Render(chart.PNG, buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func (f *Figure) build() (*chart.Chart, error) {
	series := make([]chart.Series, 0, len(f.series))
	for i, s := range f.series {
		xs, err := f.xScale.apply(s.X)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}

		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}

	xAxis := chart.XAxis{Name: f.xLabel}
	if f.xScale == Log {
		lo, hi := bounds(f.series)
		xAxis.Range = &chart.ContinuousRange{Min: logOf(lo), Max: logOf(hi)}
		xAxis.Ticks = decadeTicks(lo, hi)
	}

	ch := &chart.Chart{
		Width:  f.width,
		Height: f.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  xAxis,
		YAxis:  chart.YAxis{Name: f.yLabel},
		Series: series,
	}

	if f.legend {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch, nil
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
