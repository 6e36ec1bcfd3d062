package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{"Info level", "info", false},
		{"Debug level", "debug", false},
		{"Warn level", "warn", false},
		{"Invalid level", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.level)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, Log)
				assert.True(t, Log.Core().Enabled(zapcore.ErrorLevel))
			}
		})
	}
}

func TestEncoderConfig(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(&buf), zapcore.InfoLevel)
	Log = zap.New(core)
	defer func() { Log = zap.NewNop() }()

	Log.Info("env file updated", zap.String("url", "http://192.168.1.42:5000/api"))
	Sync()

	assert.Contains(t, buf.String(), `"msg":"env file updated"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "http://192.168.1.42:5000/api")
	assert.NotContains(t, buf.String(), "caller")
}
