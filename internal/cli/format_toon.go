package cli

import (
	"fmt"
	"io"

	toon "github.com/toon-format/toon-go"
)

// ToonFormatter writes the result as a TOON document: title and count
// fields followed by a chains[N]{name,block} table.
type ToonFormatter struct{}

// FormatResult renders r in TOON format.
func (f *ToonFormatter) FormatResult(w io.Writer, r *Result) error {
	rows := make([]toon.Object, len(r.Blocks))
	for i, b := range r.Blocks {
		rows[i] = toon.NewObject(
			toon.Field{Key: "name", Value: b.Name},
			toon.Field{Key: "block", Value: b.Text},
		)
	}

	doc := toon.NewObject(
		toon.Field{Key: "title", Value: r.Title},
		toon.Field{Key: "count", Value: r.Count},
		toon.Field{Key: "chains", Value: rows},
	)
	result, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, result)
	return err
}
