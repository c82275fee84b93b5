package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
)

// NewLogger builds the process logger. Logs always go to stderr because
// stdout carries command results.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg, err := loggerConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}

// loggerConfig picks a terse colored layout for the console format. Any other
// format yields JSON lines tagged with the app name and version, for serve
// output shipped to a collector.
func loggerConfig(cfg config.LogConfig) (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("parsing log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zcfg.DisableStacktrace = true
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "time"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.InitialFields = map[string]any{
			"app":     config.AppName,
			"version": config.Version,
		}
	}

	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg, nil
}
