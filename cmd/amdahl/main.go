package main

import (
	"os"

	"github.com/utkarsh5026/amdahl/internal/app"
	"github.com/utkarsh5026/amdahl/internal/config"
	"github.com/utkarsh5026/amdahl/internal/report"
)

func main() {
	// Enable ANSI escape sequences on Windows for colors and the progress bar
	enableWindowsANSI()

	if err := app.Run(config.Default(), os.Stdout, os.Stderr); err != nil {
		report.Fail(os.Stderr, err)
		os.Exit(1)
	}
}
