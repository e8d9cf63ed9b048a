package logger

import (
	"fmt"
	"os"

	"github.com/GlebRadaev/digimarket/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "digimarket"

// New builds a console logger at the configured level. Errors go to stderr,
// everything below to stdout.
func New(conf *config.Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil || lvl < zapcore.DebugLevel || lvl > zapcore.ErrorLevel {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zap.NewAtomicLevelAt(lvl)
	regular := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l < zapcore.ErrorLevel && level.Enabled(l)
	})
	failures := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel && level.Enabled(l)
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), regular),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), failures),
	)
	return zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", serviceName))), nil
}

// InitLogger installs the logger built by New as the global zap logger.
func InitLogger(conf *config.Config) error {
	logger, err := New(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
