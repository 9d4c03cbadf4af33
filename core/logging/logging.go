// Package logging is a thin wrapper of zap logging library.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// Named creates a named logger without level initialization.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a logger initialized with configured log level.
//
// By codebase convention, this should appear in the same .go file as the package docstring:
//
//	var logger = logging.New("Foo")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(pkgLevel(pkg)))
}

// pkgLevel determines the log level of a package from the environment.
// TCAIFO_LOG_<pkg> overrides TCAIFO_LOG; unset or unrecognized means info.
func pkgLevel(pkg string) zapcore.Level {
	v, ok := os.LookupEnv("TCAIFO_LOG_" + pkg)
	if !ok {
		v = os.Getenv("TCAIFO_LOG")
	}
	if v == "" {
		return zapcore.InfoLevel
	}
	switch v[0] {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.InfoLevel
}
