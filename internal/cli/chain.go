package cli

import (
	"github.com/leeovery/chain/internal/chain"
	"github.com/leeovery/chain/internal/config"
	"github.com/leeovery/chain/internal/lines"
)

// Block is one chainer's rendering of the unique lines.
type Block struct {
	Name string
	Text string
}

// Result is the outcome of a chain run, ready for a Formatter.
type Result struct {
	Title  string
	Blocks []Block
	Count  int
}

// Chain loads p.Filename, removes duplicate lines and renders them with
// every chainer in display order. All blocks share one element order.
func (a *App) Chain(p Params) (*Result, error) {
	if p.Filename == "" {
		return nil, ErrMissingArgument
	}

	timeout := p.LockTimeout
	if timeout <= 0 {
		timeout = config.DefaultLockTimeout
	}

	loaded, err := lines.Load(p.Filename,
		lines.WithLockTimeout(timeout),
		lines.WithVerbose(a.logger.Log),
	)
	if err != nil {
		return nil, err
	}

	unique := lines.Dedupe(loaded)
	a.logger.Logf("%d unique of %d lines", unique.Len(), len(loaded))

	items := unique.Items()
	result := &Result{
		Title: p.Title,
		Count: unique.Len(),
	}
	for _, c := range chain.All() {
		result.Blocks = append(result.Blocks, Block{Name: c.Name(), Text: c.Chain(items)})
	}
	return result, nil
}
