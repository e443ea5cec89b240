package plot

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/amdahl/internal/speedup"
)

func testSeries() speedup.Series {
	return speedup.FractionSeries(speedup.Linspace(0, 0.9, 20))
}

func TestFigure_Save_WritesValidPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	fig := NewFigure(WithSize(320, 240))
	defer fig.Close()

	if err := fig.Plot(testSeries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fig.SetXLabel("x")
	fig.SetYLabel("y")

	if err := fig.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty file")
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestFigure_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	fig := NewFigure()
	defer fig.Close()
	_ = fig.Plot(testSeries())

	if err := fig.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("expected stale file to be replaced by a PNG: %v", err)
	}
}

func TestFigure_Render_Deterministic(t *testing.T) {
	render := func() []byte {
		fig := NewFigure()
		defer fig.Close()
		_ = fig.Plot(testSeries())
		fig.ShowLegend()

		var buf bytes.Buffer
		if err := fig.Render(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.Bytes()
	}

	first, second := render(), render()
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestFigure_Save_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	fig := NewFigure()
	defer fig.Close()
	_ = fig.Plot(testSeries())

	err := fig.Save(path)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected underlying *fs.PathError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file to be created, stat returned %v", statErr)
	}
}

func TestFigure_Render_NoSeries(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	var buf bytes.Buffer
	if err := fig.Render(&buf); !errors.Is(err, ErrNoSeries) {
		t.Errorf("expected ErrNoSeries, got %v", err)
	}
}

func TestFigure_Plot_Validation(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	err := fig.Plot(speedup.Series{Label: "bad", X: []float64{1, 2}, Y: []float64{1}})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	err = fig.Plot(speedup.Series{Label: "empty"})
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}

	if fig.Len() != 0 {
		t.Errorf("rejected series must not be kept, got %d", fig.Len())
	}
}

func TestFigure_Close(t *testing.T) {
	fig := NewFigure()
	_ = fig.Plot(testSeries())
	fig.Close()
	fig.Close()

	if fig.Len() != 0 {
		t.Errorf("expected released figure to hold no series, got %d", fig.Len())
	}
	if err := fig.Plot(testSeries()); !errors.Is(err, ErrFigureClosed) {
		t.Errorf("expected ErrFigureClosed from Plot, got %v", err)
	}
	if err := fig.Save(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrFigureClosed) {
		t.Errorf("expected ErrFigureClosed from Save, got %v", err)
	}
}

func TestNewFigure_StartsEmpty(t *testing.T) {
	first := NewFigure()
	_ = first.Plot(testSeries())
	_ = first.Plot(testSeries())
	first.Close()

	second := NewFigure()
	defer second.Close()
	if second.Len() != 0 {
		t.Errorf("expected a fresh figure, got %d series", second.Len())
	}
}

func TestFigure_Save_LogScaleRejectsNonPositive(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	_ = fig.Plot(speedup.Series{Label: "zero", X: []float64{0, 1, 10}, Y: []float64{1, 1, 1}})
	fig.SetXScale(Log)

	var buf bytes.Buffer
	if err := fig.Render(&buf); !errors.Is(err, ErrNonPositiveLog) {
		t.Errorf("expected ErrNonPositiveLog, got %v", err)
	}
}
