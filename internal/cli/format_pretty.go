package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PrettyFormatter writes each block under the title with a dashed underline,
// then a summary line with the unique count.
type PrettyFormatter struct {
	// Quiet omits the summary line.
	Quiet bool
}

// FormatResult writes every block in order, then "<N> elements chained."
func (f *PrettyFormatter) FormatResult(w io.Writer, r *Result) error {
	for _, b := range r.Blocks {
		if err := WriteBlock(w, r.Title, b.Text); err != nil {
			return err
		}
	}
	if f.Quiet {
		return nil
	}
	return WriteSummary(w, r.Count)
}

// WriteBlock writes title, a line of dashes as long as title in characters,
// block, and a blank line.
func WriteBlock(w io.Writer, title, block string) error {
	underline := strings.Repeat("-", utf8.RuneCountInString(title))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", title, underline, block)
	return err
}

// WriteSummary writes the count line.
func WriteSummary(w io.Writer, count int) error {
	_, err := fmt.Fprintf(w, "%d elements chained.\n", count)
	return err
}
