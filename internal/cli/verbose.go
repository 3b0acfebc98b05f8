package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// VerboseLogger writes verbose debug messages to a writer (intended for stderr).
// All messages are prefixed with "verbose: " for grep-ability.
// A nil VerboseLogger is a no-op (safe to call Log on nil receiver).
type VerboseLogger struct {
	log *zap.Logger
}

// NewVerboseLogger creates a VerboseLogger that writes to the given writer.
// Entries carry only the message: no timestamp, level or caller.
func NewVerboseLogger(w io.Writer) *VerboseLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return &VerboseLogger{log: zap.New(core)}
}

// Log writes a verbose-prefixed message. Safe to call on a nil receiver (no-op).
func (vl *VerboseLogger) Log(msg string) {
	if vl == nil {
		return
	}
	vl.log.Debug("verbose: " + msg)
}

// Logf formats and writes a verbose-prefixed message.
func (vl *VerboseLogger) Logf(format string, args ...interface{}) {
	if vl == nil {
		return
	}
	vl.Log(fmt.Sprintf(format, args...))
}

// Sync flushes buffered entries.
func (vl *VerboseLogger) Sync() {
	if vl == nil {
		return
	}
	_ = vl.log.Sync()
}
