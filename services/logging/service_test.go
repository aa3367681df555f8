package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tech-arch1tect/authkit/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewService(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		service, err := NewService(Config{Level: Info, Format: "json", OutputPath: "stdout"})

		require.NoError(t, err)
		assert.NotNil(t, service)
		assert.NotNil(t, service.logger)
	})

	t.Run("console format", func(t *testing.T) {
		service, err := NewService(Config{Level: Debug, Format: "console", OutputPath: "stdout"})

		require.NoError(t, err)
		assert.NotNil(t, service.logger)
	})

	t.Run("file output", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "test.log")

		service, err := NewService(Config{Level: Warn, Format: "json", OutputPath: logFile})
		require.NoError(t, err)

		service.Warn("test log entry")
		_ = service.Sync()

		contents, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(contents), "test log entry")
	})
}

func TestNewLoggingService(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "debug"

	service, err := NewLoggingService(cfg)

	require.NoError(t, err)
	assert.True(t, service.Logger().Core().Enabled(zapcore.DebugLevel))
}

func TestService_Named(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	service := NewFromZap(zap.New(core))

	service.Named("totp").Info("hello")

	logs := recorded.TakeAll()
	require.Len(t, logs, 1)
	assert.Equal(t, "totp", logs[0].LoggerName)
}

func TestService_LoggingMethods(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	service := NewFromZap(zap.New(core))

	tests := []struct {
		name  string
		log   func(string, ...zap.Field)
		level zapcore.Level
	}{
		{"Debug", service.Debug, zapcore.DebugLevel},
		{"Info", service.Info, zapcore.InfoLevel},
		{"Warn", service.Warn, zapcore.WarnLevel},
		{"Error", service.Error, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.log(tt.name+" message", zap.String("key", "value"))

			logs := recorded.TakeAll()
			require.Len(t, logs, 1)
			assert.Equal(t, tt.level, logs[0].Level)
			assert.Equal(t, tt.name+" message", logs[0].Message)
			assert.Equal(t, "value", logs[0].ContextMap()["key"])
		})
	}
}

func TestService_NilSafety(t *testing.T) {
	t.Run("nil service methods don't panic", func(t *testing.T) {
		var service *Service

		assert.NotPanics(t, func() {
			service.Debug("test")
			service.Info("test")
			service.Warn("test")
			service.Error("test")
			assert.Nil(t, service.Named("x"))
			assert.Nil(t, service.Logger())
			assert.NoError(t, service.Sync())
		})
	})

	t.Run("service with nil logger", func(t *testing.T) {
		service := &Service{}

		assert.NotPanics(t, func() {
			service.Debug("test")
			service.Info("test")
			service.Named("x").Warn("test")
			service.Error("test")
		})
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{LogLevel("unknown"), zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}
