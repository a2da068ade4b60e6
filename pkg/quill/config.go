package quill

import (
	"os"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config contains the configuration options for the quill engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode makes the decoder fail on markup it does not model
	// instead of skipping it
	StrictMode bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		StrictMode: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("QUILL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("QUILL_STRICT_MODE"); val != "" {
		config.StrictMode = parseBool(val)
	}

	return config
}

func parseBool(val string) bool {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error", "off"),
		),
	)
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the global configuration
func SetGlobalConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	configOnce.Do(func() {})
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()
	UpdateLoggerFromConfig()
}
