package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StrictMode)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"info", "info", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"off", "off", false},
		{"unknown level", "verbose", true},
		{"empty level", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("QUILL_LOG_LEVEL", "debug")
	t.Setenv("QUILL_STRICT_MODE", "yes")

	cfg := ConfigFromEnvironment()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictMode)
}

func TestConfigFromEnvironmentDefaults(t *testing.T) {
	t.Setenv("QUILL_LOG_LEVEL", "")
	t.Setenv("QUILL_STRICT_MODE", "")

	cfg := ConfigFromEnvironment()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"1", "true", "TRUE", "yes", "on"} {
		assert.True(t, parseBool(truthy), truthy)
	}
	for _, falsy := range []string{"0", "false", "no", "off", "", "banana"} {
		assert.False(t, parseBool(falsy), falsy)
	}
}

func TestSetGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	SetGlobalConfig(&Config{LogLevel: "error", StrictMode: true})
	cfg := GetGlobalConfig()
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.StrictMode)

	SetGlobalConfig(nil)
	require.NotNil(t, GetGlobalConfig())
	assert.Equal(t, DefaultConfig(), GetGlobalConfig())
}
