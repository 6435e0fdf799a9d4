package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rogerio-castellano/retail-pos/internal/config"
)

const service = "retail-pos"

var l *zap.Logger

// Init builds the process logger from cfg and installs it as the zap global.
func Init(cfg config.LoggerConfig) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "@timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.Encoding == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level)
	l = zap.New(core, zap.AddCaller()).With(zap.String("service", service))
	zap.ReplaceGlobals(l)
	return nil
}

// L returns the process logger, falling back to a no-op logger before Init.
func L() *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func WithRequest(requestID, method, path string) *zap.Logger {
	return L().With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)
}
