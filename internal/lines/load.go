// Package lines loads text files as line sequences and reduces them to sets
// of unique lines.
package lines

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const defaultLockTimeout = 5 * time.Second

// MaxLineSize is the longest single line Read accepts.
const MaxLineSize = 16 * 1024 * 1024

// errLockTimeout is wrapped in a ReadError when the shared lock cannot be taken.
var errLockTimeout = errors.New("could not acquire shared lock - another process may be writing the file")

type loader struct {
	lockTimeout time.Duration
	verbose     func(string)
}

// Option configures Load.
type Option func(*loader)

// WithLockTimeout sets how long Load waits for the shared lock. The default is 5 seconds.
func WithLockTimeout(d time.Duration) Option {
	return func(l *loader) {
		l.lockTimeout = d
	}
}

// WithVerbose sets a callback that receives progress messages.
func WithVerbose(fn func(string)) Option {
	return func(l *loader) {
		l.verbose = fn
	}
}

func (l *loader) logf(format string, args ...interface{}) {
	if l.verbose == nil {
		return
	}
	l.verbose(fmt.Sprintf(format, args...))
}

// Load reads the regular file at path and returns its lines in file order.
// The file is held under a shared advisory lock while it is read.
//
// A missing path, or one that is not a regular file, yields a *NotFoundError.
// Every later failure yields a *ReadError.
func Load(path string, opts ...Option) ([]string, error) {
	l := &loader{lockTimeout: defaultLockTimeout}
	for _, opt := range opts {
		opt(l)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path}
	}

	unlock, err := l.acquireShared(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	result, err := Read(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	l.logf("read %d lines from %s", len(result), path)

	return result, nil
}

// acquireShared takes a shared lock on path within the configured timeout.
// The file is opened read-only and never created.
// The returned function releases it and must be deferred by the caller.
func (l *loader) acquireShared(path string) (unlock func(), err error) {
	fl := flock.New(path, flock.SetFlag(os.O_RDONLY))
	ctx, cancel := context.WithTimeout(context.Background(), l.lockTimeout)

	l.logf("acquiring shared lock on %s", path)
	locked, err := fl.TryRLockContext(ctx, 50*time.Millisecond)
	switch {
	case errors.Is(err, context.DeadlineExceeded), err == nil && !locked:
		cancel()
		return nil, errLockTimeout
	case err != nil:
		cancel()
		return nil, fmt.Errorf("locking: %w", err)
	}
	l.logf("lock acquired")

	return func() {
		_ = fl.Unlock()
		cancel()
		l.logf("lock released")
	}, nil
}

// Read splits r into lines. Line terminators ("\n" or "\r\n") and any other
// trailing carriage returns or newlines are removed; nothing else is trimmed.
// Empty lines are kept and a final unterminated line is kept.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var result []string
	for sc.Scan() {
		result = append(result, strings.TrimRight(sc.Text(), "\r\n"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
