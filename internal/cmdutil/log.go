// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger on dst: warnings and errors by
// default, everything with verbose, nothing with quiet.
func NewLogger(dst io.Writer, quiet, verbose bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(dst), level)
	return zap.New(core)
}
