// Package logging builds the zap logger used by the CLI and the store.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-configured logger writing to stderr so command
// output on stdout stays clean. The level comes from the config (warn when
// empty or unparseable); verbose overrides it with Debug.
func New(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level, verbose))
	return config.Build()
}

func parseLevel(level string, verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return parsed
}
