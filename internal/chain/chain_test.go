package chain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// oneOf reports whether got equals any of want.
func oneOf(got string, want ...string) bool {
	for _, w := range want {
		if got == w {
			return true
		}
	}
	return false
}

func TestPlain(t *testing.T) {
	c := Plain{}

	t.Run("it joins with a bare comma", func(t *testing.T) {
		got := c.Chain([]string{"a", "b"})
		if !oneOf(got, "a,b", "b,a") {
			t.Errorf("Chain() = %q, want a,b or b,a", got)
		}
	})

	t.Run("it emits no separator for one element", func(t *testing.T) {
		if got := c.Chain([]string{"a"}); got != "a" {
			t.Errorf("Chain() = %q, want %q", got, "a")
		}
	})

	t.Run("it returns an empty string for no elements", func(t *testing.T) {
		if got := c.Chain(nil); got != "" {
			t.Errorf("Chain() = %q, want empty", got)
		}
	})

	t.Run("it does not quote or escape elements", func(t *testing.T) {
		if got := c.Chain([]string{"it's", `a|b`}); got != `it's,a|b` {
			t.Errorf("Chain() = %q", got)
		}
	})
}

func TestQuoted(t *testing.T) {
	c := Quoted{}

	t.Run("it wraps each element in single quotes", func(t *testing.T) {
		got := c.Chain([]string{"a", "b"})
		if !oneOf(got, "'a','b'", "'b','a'") {
			t.Errorf("Chain() = %q, want 'a','b' or 'b','a'", got)
		}
	})

	t.Run("it quotes a single element without separator", func(t *testing.T) {
		if got := c.Chain([]string{"a"}); got != "'a'" {
			t.Errorf("Chain() = %q, want %q", got, "'a'")
		}
	})

	t.Run("it returns an empty string for no elements", func(t *testing.T) {
		if got := c.Chain([]string{}); got != "" {
			t.Errorf("Chain() = %q, want empty with no stray quotes", got)
		}
	})

	t.Run("it quotes an empty line as a pair of quotes", func(t *testing.T) {
		if got := c.Chain([]string{""}); got != "''" {
			t.Errorf("Chain() = %q, want %q", got, "''")
		}
	})
}

func TestEscapedOr(t *testing.T) {
	c := EscapedOr{}

	t.Run("it joins with a backslash escaped pipe", func(t *testing.T) {
		got := c.Chain([]string{"x", "y"})
		if !oneOf(got, `x\|y`, `y\|x`) {
			t.Errorf(`Chain() = %q, want x\|y or y\|x`, got)
		}
	})

	t.Run("it emits no separator for one element", func(t *testing.T) {
		if got := c.Chain([]string{"x"}); got != "x" {
			t.Errorf("Chain() = %q, want %q", got, "x")
		}
	})

	t.Run("it returns an empty string for no elements", func(t *testing.T) {
		if got := c.Chain(nil); got != "" {
			t.Errorf("Chain() = %q, want empty", got)
		}
	})

	t.Run("it uses one separator between each pair", func(t *testing.T) {
		got := c.Chain([]string{"a", "b", "c"})
		if n := strings.Count(got, `\|`); n != 2 {
			t.Errorf("separator count = %d, want 2 in %q", n, got)
		}
	})
}

func TestAll(t *testing.T) {
	t.Run("it returns chainers in display order", func(t *testing.T) {
		want := []string{"plain", "quoted", "escaped-or"}
		if diff := cmp.Diff(want, Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("it implements Chainer for every variant", func(t *testing.T) {
		var _ Chainer = Plain{}
		var _ Chainer = Quoted{}
		var _ Chainer = EscapedOr{}
	})
}

func TestLookup(t *testing.T) {
	t.Run("it resolves each registered name", func(t *testing.T) {
		for _, name := range Names() {
			c, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", name, err)
			}
			if c.Name() != name {
				t.Errorf("Lookup(%q).Name() = %q", name, c.Name())
			}
		}
	})

	t.Run("it returns UnknownChainerError listing available names", func(t *testing.T) {
		_, err := Lookup("csv")

		var unknown *UnknownChainerError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected *UnknownChainerError, got %T: %v", err, err)
		}
		want := `unknown chain style "csv" (available: escaped-or, plain, quoted)`
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}
