package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leeovery/chain/internal/testutil"
)

func TestMainIntegration(t *testing.T) {
	binPath := testutil.BuildBinary(t, "chain")

	t.Run("it prints three blocks and the unique count", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "source.txt")
		if err := os.WriteFile(src, []byte("a\na\nb\n"), 0644); err != nil {
			t.Fatalf("failed to write source: %v", err)
		}

		cmd := exec.Command(binPath, src, "T")
		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if code := testutil.ExitCode(t, cmd.Run()); code != 0 {
			t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr.String())
		}

		out := stdout.String()
		if strings.Count(out, "T\n-\n") != 3 {
			t.Errorf("expected three titled blocks, got:\n%s", out)
		}
		if !strings.HasSuffix(out, "\n2 elements chained.\n") {
			t.Errorf("expected summary line at end, got:\n%s", out)
		}
		if stderr.String() != "" {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})

	t.Run("it exits 1 with the missing input message and no blocks", func(t *testing.T) {
		cmd := exec.Command(binPath)
		var stdout strings.Builder
		cmd.Stdout = &stdout

		if code := testutil.ExitCode(t, cmd.Run()); code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}

		want := "No input file provided. Please enter a filename as a parameter. e.g.: chain source.txt\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("it exits 1 with the not found message and no blocks", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.txt")
		cmd := exec.Command(binPath, missing, "T")
		var stdout strings.Builder
		cmd.Stdout = &stdout

		if code := testutil.ExitCode(t, cmd.Run()); code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}

		out := stdout.String()
		if !strings.HasPrefix(out, "The specified file ('"+missing+"') does not exist") {
			t.Errorf("stdout = %q, want not found message", out)
		}
		if strings.Contains(out, "elements chained") {
			t.Errorf("stdout = %q, want no renderer output", out)
		}
	})

	t.Run("it writes other errors to stderr with Error prefix", func(t *testing.T) {
		cmd := exec.Command(binPath, "--no-such-flag")
		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if code := testutil.ExitCode(t, cmd.Run()); code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if stdout.String() != "" {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.HasPrefix(stderr.String(), "Error: ") {
			t.Errorf("stderr = %q, want prefix 'Error: '", stderr.String())
		}
	})
}
