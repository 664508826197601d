// Package logger builds the zap loggers used by the command line.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr. JSON output uses the zap
// production encoding for machine consumption; otherwise a minimal console
// encoding without timestamps is used. Verbose lowers the level to debug.
func New(jsonOutput, verbose bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		config.OutputPaths = []string{"stderr"}
		return config.Build()
	}
	return zap.New(zapcore.NewCore(newConsoleEncoder(), zapcore.Lock(os.Stderr), level)), nil
}

func newConsoleEncoder() zapcore.Encoder {
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""
	config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(config)
}
