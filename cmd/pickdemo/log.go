package main

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the slog logger handed to pick. Records go through zap
// to stderr, or to a size-rotated file when path is set.
func newLogger(path string, verbose bool) (*slog.Logger, func()) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	var (
		enc  zapcore.Encoder
		sink zapcore.WriteSyncer
		file *lumberjack.Logger
	)
	if path != "" {
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		sink = zapcore.AddSync(file)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(enc, sink, level)
	closeLog := func() {
		_ = core.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return slog.New(zapslog.NewHandler(core, nil)), closeLog
}
