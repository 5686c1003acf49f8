// Package logging builds the zap logger shared by the driver and the game.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a root logger. In dev mode it writes colored console lines
// from debug level up; otherwise JSON lines from info level up. Both go to
// stderr.
func New(dev bool) *zap.Logger {
	return NewTo(os.Stderr, dev)
}

// NewTo is New writing to w.
func NewTo(w io.Writer, dev bool) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if dev {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	logger := zap.New(core)
	logger.Debug("Logging initialized", zap.Bool("devmode", dev))
	return logger
}
