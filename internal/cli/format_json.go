package cli

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes the result as 2-space indented JSON with snake_case keys.
type JSONFormatter struct{}

type jsonResult struct {
	Title  string      `json:"title"`
	Count  int         `json:"count"`
	Chains []jsonChain `json:"chains"`
}

type jsonChain struct {
	Name  string `json:"name"`
	Block string `json:"block"`
}

// FormatResult renders r as JSON. Chains is always an array, never null.
func (f *JSONFormatter) FormatResult(w io.Writer, r *Result) error {
	out := jsonResult{
		Title:  r.Title,
		Count:  r.Count,
		Chains: make([]jsonChain, 0, len(r.Blocks)),
	}
	for _, b := range r.Blocks {
		out.Chains = append(out.Chains, jsonChain{Name: b.Name, Block: b.Text})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
