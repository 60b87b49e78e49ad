// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Broker configuration
	Broker BrokerConfig `mapstructure:"broker"`

	// Input host configuration
	Input InputConfig `mapstructure:"input"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// BrokerConfig contains the control-socket settings
type BrokerConfig struct {
	// SocketPath is the unix socket bound when no descriptor is inherited
	SocketPath string `mapstructure:"socket_path"`

	// FDEnvVar names the environment variable carrying a pre-opened
	// control socket descriptor number
	FDEnvVar string `mapstructure:"fd_env_var"`

	// Backend selects the host implementation: "sim" or "uinput"
	Backend string `mapstructure:"backend"`
}

// InputConfig contains input-host settings
type InputConfig struct {
	// UinputPath is the uinput device node for the uinput backend
	UinputPath string `mapstructure:"uinput_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Broker: BrokerConfig{
			SocketPath: "/tmp/seatsim.sock",
			FDEnvVar:   "SEATSIM_SOCKET",
			Backend:    "sim",
		},
		Input: InputConfig{
			UinputPath: "/dev/uinput",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("seatsim")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		// Config paths in order of precedence
		viper.AddConfigPath("/etc/seatsim")
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "seatsim"))
		}
		viper.AddConfigPath(".")
	}

	// Set defaults - individual fields so file values merge properly
	viper.SetDefault("broker.socket_path", DefaultConfig.Broker.SocketPath)
	viper.SetDefault("broker.fd_env_var", DefaultConfig.Broker.FDEnvVar)
	viper.SetDefault("broker.backend", DefaultConfig.Broker.Backend)

	viper.SetDefault("input.uinput_path", DefaultConfig.Input.UinputPath)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}
