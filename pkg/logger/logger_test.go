package logger

import (
	"testing"

	"github.com/GlebRadaev/digimarket/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		logLvl        string
		expectedError bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{
			name:     "debug enables everything",
			logLvl:   "debug",
			enabled:  zapcore.DebugLevel,
			disabled: zapcore.DebugLevel - 1,
		},
		{
			name:     "info hides debug",
			logLvl:   "info",
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "warn hides info",
			logLvl:   "warn",
			enabled:  zapcore.WarnLevel,
			disabled: zapcore.InfoLevel,
		},
		{
			name:     "error hides warn",
			logLvl:   "error",
			enabled:  zapcore.ErrorLevel,
			disabled: zapcore.WarnLevel,
		},
		{
			name:          "unknown level",
			logLvl:        "verbose",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := zap.L()
			defer zap.ReplaceGlobals(prev)

			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectedError {
				require.Error(t, err)
				assert.Same(t, prev, zap.L())
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}

func TestNew_RejectsPanicLevels(t *testing.T) {
	for _, lvl := range []string{"dpanic", "panic", "fatal"} {
		_, err := New(&config.Config{LogLvl: lvl})
		assert.Error(t, err, lvl)
	}
}
