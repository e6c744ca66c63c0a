package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はJSONの構造化ロガーを作る。levelが不正ならinfo。
func New(level string, env string) (*zap.Logger, error) {
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		lv.SetLevel(zapcore.InfoLevel)
	}

	cfg := zap.Config{
		Level:            lv,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if env == "dev" {
		cfg.Development = true
	}

	return cfg.Build()
}
