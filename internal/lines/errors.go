package lines

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for any NotFoundError.
var ErrNotFound = errors.New("file not found")

// NotFoundError is returned when the input path does not exist or does not
// point at a regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, ErrNotFound)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReadError wraps a failure that happened after the input file was found:
// acquiring its lock, opening it, or scanning its contents.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
