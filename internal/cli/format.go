package cli

import (
	"fmt"
	"io"
)

// OutputFormat represents the output format for chain results.
type OutputFormat string

const (
	// FormatPretty writes titled, underlined blocks followed by a summary (default).
	FormatPretty OutputFormat = "pretty"
	// FormatTOON writes the result as a TOON document.
	FormatTOON OutputFormat = "toon"
	// FormatJSON writes the result as indented JSON.
	FormatJSON OutputFormat = "json"
)

// Formatter renders a chain result.
type Formatter interface {
	FormatResult(w io.Writer, r *Result) error
}

// ResolveFormat determines the output format from flags, falling back to
// fallback (the configured format) when no flag is set.
// If more than one format flag is set, it returns an error.
func ResolveFormat(toonFlag, prettyFlag, jsonFlag bool, fallback OutputFormat) (OutputFormat, error) {
	flagCount := 0
	if toonFlag {
		flagCount++
	}
	if prettyFlag {
		flagCount++
	}
	if jsonFlag {
		flagCount++
	}

	if flagCount > 1 {
		return "", fmt.Errorf("only one format flag allowed: --toon, --pretty, or --json")
	}

	switch {
	case toonFlag:
		return FormatTOON, nil
	case prettyFlag:
		return FormatPretty, nil
	case jsonFlag:
		return FormatJSON, nil
	case fallback == "":
		return FormatPretty, nil
	default:
		return fallback, nil
	}
}

// NewFormatter returns the formatter for p.Format. Unknown formats get the
// pretty formatter.
func NewFormatter(p Params) Formatter {
	switch p.Format {
	case FormatTOON:
		return &ToonFormatter{}
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &PrettyFormatter{Quiet: p.Quiet}
	}
}
