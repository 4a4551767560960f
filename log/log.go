// Package log builds the zap loggers used by txview components.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ConsoleEncoder writes human readable lines.
	ConsoleEncoder = "console"
	// JSONEncoder writes one JSON object per line.
	JSONEncoder = "json"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

// NewWithLevel creates a named logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	return newWithWriter(logWriter, module, level, encoder, hooks...)
}

func newWithWriter(w io.Writer,
	module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
}

// Encoder returns the zap encoder for the given kind.
func Encoder(kind string) (zapcore.Encoder, error) {
	switch kind {
	case "", ConsoleEncoder:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	}
	return nil, fmt.Errorf("unknown log encoder %q", kind)
}

// New parses level and encoder kind and returns a named logger.
func New(module, level, encoder string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse level for %s: %w", module, err)
	}
	enc, err := Encoder(encoder)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(module, lvl, enc), nil
}

// ShortString is implemented by ids that have an abbreviated form for logs.
type ShortString interface {
	ShortString() string
}

// ZShortStringer is a log field for ids that implement ShortString.
func ZShortStringer(name string, val ShortString) zap.Field {
	return zap.Stringer(name, shortStringAdapter{val: val})
}

type shortStringAdapter struct {
	val ShortString
}

func (a shortStringAdapter) String() string {
	return a.val.ShortString()
}
