package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/leeovery/chain/internal/lines"
)

// ErrMissingArgument is returned when the required positional argument is absent.
var ErrMissingArgument = errors.New("missing required argument")

const (
	missingFileMsg = "No input file provided. Please enter a filename as a parameter. e.g.: chain source.txt"
	notFoundMsg    = "The specified file ('%s') does not exist or the path is incorrect.\nPlease check your input and try again.\n"
	missingWordMsg = "No input provided. Please enter a string as a parameter. e.g.: snake 'Snake case this please'"
)

// reportError writes err for the user and returns the exit code.
// Input problems get the friendly message on stdout; anything else is
// written to stderr with an "Error: " prefix.
func reportError(stdout, stderr io.Writer, err error, missingMsg string) int {
	var nf *lines.NotFoundError
	switch {
	case errors.Is(err, ErrMissingArgument):
		fmt.Fprintln(stdout, missingMsg)
	case errors.As(err, &nf):
		fmt.Fprintf(stdout, notFoundMsg, nf.Path)
	default:
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return 1
}
