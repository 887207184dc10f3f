package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger ensures everything printed by the logger is done to stderr.
// This allows the application to print HCL to stdout, which can be redirected to a file.
// But application messages are kept in a separate stream.
// Debug messages, like each resource added to the graph, are only written when verbose is set.
func BuildLogger(verbose bool) {
	zap.ReplaceGlobals(NewLogger(zapcore.Lock(os.Stderr), verbose))
}

// NewLogger returns a console logger writing to the syncer.
func NewLogger(syncer zapcore.WriteSyncer, verbose bool) *zap.Logger {
	minimum := zapcore.InfoLevel
	if verbose {
		minimum = zapcore.DebugLevel
	}

	enabled := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= minimum
	})

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}),
		syncer,
		enabled,
	)

	return zap.New(core)
}
