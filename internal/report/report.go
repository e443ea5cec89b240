package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color helpers (shared across the run log and tables)
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
)

// Header prints a boxed section title followed by optional description lines.
func Header(w io.Writer, title string, descriptions ...string) {
	_, _ = fmt.Fprintln(w)
	colorPrintLn(w, Bold, "═══════════════════════════════════════════════════════════")
	colorPrintLn(w, Bold, title)
	colorPrintLn(w, Bold, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		_, _ = fmt.Fprintln(w, desc)
	}
	_, _ = fmt.Fprintln(w)
}

// Step announces work that is about to start.
func Step(w io.Writer, format string, a ...any) {
	colorPrintf(w, Blue, "▶ "+format+"\n", a...)
}

// Done reports a finished step.
func Done(w io.Writer, format string, a ...any) {
	colorPrintf(w, Green, "✅ "+format+"\n", a...)
}

// Fail reports a fatal error.
func Fail(w io.Writer, err error) {
	colorPrintf(w, Red, "❌ %v\n", err)
}

// FormatNumber formats an integer with comma separators
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}

func colorPrintLn(w io.Writer, c *color.Color, a ...any) {
	_, _ = c.Fprintln(w, a...)
}

func colorPrintf(w io.Writer, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}
