// Package logging builds the zap logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps the console quiet unless something is wrong.
const DefaultLevel = "warn"

// ParseLevel converts a level name (debug, info, warn, error) to a zapcore.Level.
// The empty string means DefaultLevel.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		s = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return lvl, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// New returns a console logger writing entries at or above level to w.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
