package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/r3d91ll/irpl/pkg/config"
)

// newLogger builds a JSON logger writing to the configured log file, and to
// stderr at debug level when verbose. With neither, logging is off.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*zap.Logger, error) {
	if cfg.Log.File == "" && !verbose {
		return zap.NewNop(), nil
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	var cores []zapcore.Core

	if cfg.Log.File != "" {
		sink, _, err := zap.Open(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(encoder, sink, cfg.LogLevel()))
	}
	if verbose {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(stderr), zapcore.DebugLevel))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}
