package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/utkarsh5026/amdahl/internal/speedup"
)

// LimitLabel names the final summary row, the speedup with unlimited processors.
const LimitLabel = "limit (N→∞)"

// Checkpoints returns the powers of ten from 1 up to limit.
func Checkpoints(limit int) []int {
	out := make([]int, 0)
	for n := 1; n <= limit; n *= 10 {
		out = append(out, n)
		if n > limit/10 {
			break
		}
	}
	return out
}

// SummaryTable prints speedup and efficiency for every fraction at each
// processor checkpoint, followed by the unbounded-processor limit.
func SummaryTable(w io.Writer, fractions []float64, checkpoints []int) error {
	Header(w, "SPEEDUP BY PROCESSOR COUNT",
		"Speedup for each parallel fraction (efficiency in parentheses)",
		"  • limit: 1 / (1 - P), the best case with unlimited processors")

	header := make([]any, 0, len(fractions)+1)
	header = append(header, "Processors")
	for _, p := range fractions {
		header = append(header, speedup.FractionLabel(p))
	}

	// headers must match the chart legend verbatim
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header...)

	for _, n := range checkpoints {
		row := make([]any, 0, len(fractions)+1)
		row = append(row, FormatNumber(n))
		for _, p := range fractions {
			row = append(row, fmt.Sprintf("%.2fx (%.0f%%)",
				speedup.WithProcessors(p, n), speedup.Efficiency(p, n)*100))
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("failed to append row for %d processors: %w", n, err)
		}
	}

	limit := make([]any, 0, len(fractions)+1)
	limit = append(limit, LimitLabel)
	for _, p := range fractions {
		limit = append(limit, fmt.Sprintf("%.2fx", speedup.Simple(p)))
	}
	if err := table.Append(limit...); err != nil {
		return fmt.Errorf("failed to append limit row: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render summary table: %w", err)
	}
	return nil
}
