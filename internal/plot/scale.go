package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/utkarsh5026/amdahl/internal/speedup"
)

// ErrNonPositiveLog is returned when a logarithmic axis receives x <= 0.
var ErrNonPositiveLog = errors.New("log scale requires positive x values")

// Scale is an x axis mapping.
type Scale int

const (
	// Linear plots x as is.
	Linear Scale = iota
	// Log plots x on a base-10 logarithmic axis.
	Log
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// apply maps data coordinates into axis coordinates. A log axis is drawn
// as a linear axis over log10(x) with ticks labelled in data units.
func (s Scale) apply(xs []float64) ([]float64, error) {
	if s != Log {
		return xs, nil
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		if x <= 0 {
			return nil, fmt.Errorf("%w: x[%d] = %v", ErrNonPositiveLog, i, x)
		}
		out[i] = logOf(x)
	}
	return out, nil
}

func logOf(x float64) float64 {
	return math.Log10(x)
}

// bounds returns the smallest and largest x across all series.
func bounds(series []speedup.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, x := range s.X {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	return lo, hi
}

// decadeTicks places one tick on every power of ten within [lo, hi].
func decadeTicks(lo, hi float64) []chart.Tick {
	first := int(math.Ceil(logOf(lo)))
	last := int(math.Floor(logOf(hi)))

	ticks := make([]chart.Tick, 0, last-first+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, chart.Tick{
			Value: float64(k),
			Label: strconv.FormatFloat(math.Pow(10, float64(k)), 'f', -1, 64),
		})
	}
	return ticks
}
