package cli

import (
	"fmt"
	"io"

	"github.com/leeovery/chain/internal/snake"
)

// SnakeApp is the snake CLI application.
type SnakeApp struct {
	stdout io.Writer
	stderr io.Writer
}

// NewSnakeApp creates a snake CLI application with the given output writers.
func NewSnakeApp(stdout, stderr io.Writer) *SnakeApp {
	return &SnakeApp{stdout: stdout, stderr: stderr}
}

// Run converts the first argument after the program name and prints it.
// The phrase is taken verbatim, leading dashes included; -h or --help
// alone prints usage.
// Returns the exit code (0 for success, 1 for error).
func (a *SnakeApp) Run(args []string) int {
	if len(args) < 2 {
		return reportError(a.stdout, a.stderr, ErrMissingArgument, missingWordMsg)
	}

	phrase := args[1]
	if len(args) == 2 && (phrase == "-h" || phrase == "--help") {
		fmt.Fprintln(a.stdout, "Usage: snake <phrase>")
		return 0
	}

	fmt.Fprintln(a.stdout, snake.Convert(phrase))
	return 0
}
