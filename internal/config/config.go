// Package config loads application configuration from defaults, an optional
// YAML config file, and AISTUDIO_-prefixed environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Port the JSON API listens on.
	Port string `mapstructure:"port"`
}

// StorageConfig controls the durable store.
type StorageConfig struct {
	// Path of the sqlite database holding the session record.
	Path string `mapstructure:"path"`
}

// MockConfig tunes the simulated services.
type MockConfig struct {
	// GenerateDelayMs is the fake latency of the generation service.
	GenerateDelayMs int `mapstructure:"generate_delay_ms"`
	// AssistantDelayMs is the assistant typing delay.
	AssistantDelayMs int `mapstructure:"assistant_delay_ms"`
	// AnalyticsSeed seeds the mock analytics dataset.
	AnalyticsSeed int64 `mapstructure:"analytics_seed"`
}

// GenerateDelay returns the generation latency as a duration.
func (m MockConfig) GenerateDelay() time.Duration {
	return time.Duration(m.GenerateDelayMs) * time.Millisecond
}

// AssistantDelay returns the typing delay as a duration.
func (m MockConfig) AssistantDelay() time.Duration {
	return time.Duration(m.AssistantDelayMs) * time.Millisecond
}

// SetDefaults registers default values so they apply even without a config
// file.
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("storage.path", "aistudio.db")
	viper.SetDefault("mock.generate_delay_ms", 2000)
	viper.SetDefault("mock.assistant_delay_ms", 1500)
	viper.SetDefault("mock.analytics_seed", 1)
}

// Init wires viper: defaults, optional config file, and environment
// overrides (AISTUDIO_SERVER_PORT and friends).
func Init(cfgFile string) {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/aistudio")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("AISTUDIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// Load unmarshals the current viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
