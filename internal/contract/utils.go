package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/skoscan/skoscan/schema"
)

// Color variables for console output.
var (
	SuccessColor   = color.New(color.FgGreen)           // positive capability signal
	WarnColor      = color.New(color.FgYellow)          // caution, e.g. no vocabulary data found
	SecondaryColor = color.New(color.FgWhite)           // unknown / not analyzed
	ErrorColor     = color.New(color.FgRed, color.Bold) // failed probes
	PendingColor   = color.New(color.FgCyan)            // in-flight log entries
)

// GetPlainSeverityLabel returns a plain text label for a severity level.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainSeverityLabel(sev schema.Severity) string {
	switch sev {
	case schema.SuccessSeverity:
		return "OK"
	case schema.WarnSeverity:
		return "Warn"
	default:
		return "Unknown"
	}
}

// GetColorSeverityLabel returns a colored label for console output (table).
// It uses GetPlainSeverityLabel to determine the string, then applies the
// appropriate color.
func GetColorSeverityLabel(sev schema.Severity) string {
	text := GetPlainSeverityLabel(sev)
	switch sev {
	case schema.SuccessSeverity:
		return SuccessColor.Sprint(text)
	case schema.WarnSeverity:
		return WarnColor.Sprint(text)
	default:
		return SecondaryColor.Sprint(text)
	}
}

// GetLogStatusGlyph returns the glyph used when rendering an analysis log
// entry, colored according to the entry status.
func GetLogStatusGlyph(status schema.LogStatus, useColors bool) string {
	var glyph string
	var c *color.Color
	switch status {
	case schema.SuccessStatus:
		glyph, c = "✓", SuccessColor
	case schema.ErrorStatus:
		glyph, c = "✗", ErrorColor
	default:
		glyph, c = "…", PendingColor
	}
	if !useColors {
		return glyph
	}
	return c.Sprint(glyph)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateURI shortens a URI for table display, keeping the tail which
// usually carries the graph or concept name.
func TruncateURI(uri string, maxLen int) string {
	if maxLen <= 3 || len(uri) <= maxLen {
		return uri
	}
	return "..." + uri[len(uri)-(maxLen-3):]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
