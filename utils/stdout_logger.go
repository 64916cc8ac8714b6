package utils

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	logMu     sync.Mutex
	logOutput io.Writer
)

// SetLogOutput redirects the Print* helpers. nil restores color.Output.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logOutput = w
}

func logWriter() io.Writer {
	if logOutput == nil {
		return color.Output
	}
	return logOutput
}

func printf(c *color.Color, format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	c.Fprintf(logWriter(), format, args...)
}

func PrintSuccess(message string) {
	green := color.New(color.FgGreen, color.Bold)
	printf(green, "✓ %s\n", message)
}

func PrintError(message string) {
	red := color.New(color.FgRed, color.Bold)
	printf(red, "✗ %s\n", message)
}

func PrintWarning(message string) {
	magenta := color.New(color.FgMagenta)
	printf(magenta, "⚠ %s\n", message)
}

func PrintInfo(message string) {
	yellow := color.New(color.FgYellow)
	printf(yellow, "ℹ %s\n", message)
}
