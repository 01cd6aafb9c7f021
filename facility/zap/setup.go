package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is an explicit, code-first configuration for a zap-backed facility.
// No envs, no hidden init, one call to NewFromConfig.
type Config struct {
	Writer        io.Writer             // default: os.Stderr
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	Level         zapcore.LevelEnabler  // zap-side filter; default debug so unilog owns filtering
}

// NewFromConfig builds a zap logger from cfg and wraps it in a Facility.
// The zap logger is returned too so callers can Sync it on shutdown.
func NewFromConfig(cfg Config) (*Facility, *zap.Logger) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := cfg.EncoderConfig
	if encCfg.MessageKey == "" && encCfg.LevelKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "category",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	var level zapcore.LevelEnabler = zapcore.DebugLevel
	if cfg.Level != nil {
		level = cfg.Level
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	zl := zap.New(core)
	return New(zl), zl
}
