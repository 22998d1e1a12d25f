package util

import (
	"os"

	"github.com/bennett39/stocktrader/conf"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger: JSON to stdout plus a size-rotated
// file per the hertz config section.
func NewLogger(cfg conf.Hertz) *zap.Logger {
	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFileName,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), fileSink),
		zap.InfoLevel,
	)
	return zap.New(core)
}
