// Package chain joins collections of lines into single strings using a
// fixed set of separator and quoting conventions.
package chain

import (
	"fmt"
	"sort"
	"strings"
)

// Chainer joins items into one string. Implementations must not depend on
// the order of items beyond emitting them in the order given.
type Chainer interface {
	// Name is the stable identifier used on the command line and in
	// structured output.
	Name() string
	// Chain joins items. An empty collection yields "".
	Chain(items []string) string
}

// Plain joins items with a single comma: a,b,c
type Plain struct{}

func (Plain) Name() string { return "plain" }

func (Plain) Chain(items []string) string {
	return strings.Join(items, ",")
}

// Quoted wraps each item in single quotes and joins them with commas: 'a','b'
type Quoted struct{}

func (Quoted) Name() string { return "quoted" }

func (Quoted) Chain(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "'" + strings.Join(items, "','") + "'"
}

// EscapedOr joins items with a backslash-escaped pipe: a\|b
type EscapedOr struct{}

func (EscapedOr) Name() string { return "escaped-or" }

func (EscapedOr) Chain(items []string) string {
	return strings.Join(items, `\|`)
}

// All returns every chainer in display order: Plain, Quoted, EscapedOr.
func All() []Chainer {
	return []Chainer{
		Plain{},
		Quoted{},
		EscapedOr{},
	}
}

// Names returns the names of All in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the chainer registered under name.
func Lookup(name string) (Chainer, error) {
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, &UnknownChainerError{Name: name, Available: Names()}
}

// UnknownChainerError is returned by Lookup for a name that matches no chainer.
type UnknownChainerError struct {
	Name      string
	Available []string
}

func (e *UnknownChainerError) Error() string {
	sorted := make([]string, len(e.Available))
	copy(sorted, e.Available)
	sort.Strings(sorted)

	return fmt.Sprintf("unknown chain style %q (available: %s)", e.Name, strings.Join(sorted, ", "))
}
