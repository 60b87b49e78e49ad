package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		viper.Reset()
		SetConfigPath("")

		if err := Init(); err != nil {
			t.Errorf("Init() failed: %v", err)
		}

		config := Get()
		if config == nil {
			t.Fatal("Get() returned nil after Init()")
		}

		if config.Broker.SocketPath != "/tmp/seatsim.sock" {
			t.Errorf("Expected default socket path /tmp/seatsim.sock, got %s", config.Broker.SocketPath)
		}
		if config.Broker.FDEnvVar != "SEATSIM_SOCKET" {
			t.Errorf("Expected default fd env var SEATSIM_SOCKET, got %s", config.Broker.FDEnvVar)
		}
		if config.Broker.Backend != "sim" {
			t.Errorf("Expected default backend sim, got %s", config.Broker.Backend)
		}
		if config.Input.UinputPath != "/dev/uinput" {
			t.Errorf("Expected default uinput path /dev/uinput, got %s", config.Input.UinputPath)
		}
	})

	t.Run("reads values from a config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "seatsim.toml")
		content := `[broker]
socket_path = "/run/seatsim/test.sock"
backend = "uinput"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		config := Get()
		if config.Broker.SocketPath != "/run/seatsim/test.sock" {
			t.Errorf("socket_path = %s, want /run/seatsim/test.sock", config.Broker.SocketPath)
		}
		if config.Broker.Backend != "uinput" {
			t.Errorf("backend = %s, want uinput", config.Broker.Backend)
		}
		// Unset keys keep their defaults.
		if config.Broker.FDEnvVar != "SEATSIM_SOCKET" {
			t.Errorf("fd_env_var = %s, want default", config.Broker.FDEnvVar)
		}
	})

	t.Run("rejects invalid TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "seatsim.toml")
		if err := os.WriteFile(path, []byte("[broker\nbackend = \"sim\""), 0644); err != nil {
			t.Fatal(err)
		}

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err == nil {
			t.Error("Init() accepted invalid TOML")
		}
	})
}

func TestGetBeforeInit(t *testing.T) {
	Set(nil)
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil before Init()")
	}
	if config.Broker.SocketPath != DefaultConfig.Broker.SocketPath {
		t.Error("Get() before Init() did not return defaults")
	}
}
