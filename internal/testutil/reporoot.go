// Package testutil provides shared test helpers for the chain and snake binaries.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// FindRepoRoot returns the module root, located from this file's own path
// (internal/testutil) so it does not depend on the test's working directory.
// It fails the test unless the directory holds go.mod.
func FindRepoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot resolve testutil source location")
	}
	root := filepath.Join(filepath.Dir(file), "..", "..")
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("no go.mod at %s: %v", root, err)
	}
	return root
}

// BuildBinary compiles ./cmd/<name> into a temporary directory and returns
// the path of the executable.
func BuildBinary(t *testing.T, name string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/"+name)
	cmd.Dir = FindRepoRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build %s binary: %v\n%s", name, err, out)
	}
	return binPath
}

// ExitCode returns the process exit status carried by err, 0 for nil, and
// fails the test for any other error type.
func ExitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	return exitErr.ExitCode()
}
