package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global application logger, set by InitLogger. Defaults to a no-op logger so
// packages can log safely before Initialize() runs (e.g. in tests).
var Logger = zap.NewNop()

// InitLogger builds the zap logger from the Log section of the configuration
// and installs it as the global Logger. Returns a cleanup func that flushes
// buffered entries.
func InitLogger(cfg *Config) (*zap.Logger, func()) {
	var lvl zapcore.Level
	if err := lvl.Set(cfg.Log.Level); err != nil {
		lvl = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if cfg.Log.JSON {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.TimeKey = "ts"
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)

	opts := []zap.Option{zap.AddCaller()}
	if cfg.App.Env == "development" {
		opts = append(opts, zap.Development())
	}

	l := zap.New(core, opts...)
	Logger = l
	cleanup := func() { _ = l.Sync() }
	return l, cleanup
}
