package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/okatz/seatsim/internal/config"
	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/okatz/seatsim/internal/logger"
	"github.com/okatz/seatsim/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveBackend    string
	serveSocketPath string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the broker",
	Long: `Run the device/session broker. When the configured environment
variable carries a pre-opened socket descriptor number, the broker serves
that single connection; otherwise it listens on the control socket path.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveBackend, "backend", "", "Host backend: sim or uinput (default from config)")
	serveCmd.Flags().StringVar(&serveSocketPath, "socket", "", "Control socket path (default from config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Config file path")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveConfigPath != "" {
		config.SetConfigPath(serveConfigPath)
	}
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.Get()

	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}

	backend := cfg.Broker.Backend
	if serveBackend != "" {
		backend = serveBackend
	}
	socketPath := cfg.Broker.SocketPath
	if serveSocketPath != "" {
		socketPath = serveSocketPath
	}

	// Video commands always hit the simulated screen: there is no output
	// topology to control from outside a display server.
	sim := hostapi.NewSimHost()
	videoHost := hostapi.VideoHost(sim)

	var inputHost hostapi.InputHost
	switch backend {
	case "sim":
		inputHost = sim
	case "uinput":
		uin := hostapi.NewUinputHost(cfg.Input.UinputPath)
		defer func() {
			if err := uin.Close(); err != nil {
				logger.Errorf("Failed to close uinput devices: %v", err)
			}
		}()
		inputHost = uin
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Inherited-descriptor mode: the launcher opened the control socket and
	// passed its number in the environment.
	if num := os.Getenv(cfg.Broker.FDEnvVar); num != "" {
		fd, err := strconv.Atoi(num)
		if err != nil {
			return fmt.Errorf("invalid descriptor in %s: %w", cfg.Broker.FDEnvVar, err)
		}
		file := os.NewFile(uintptr(fd), "control-socket")
		conn, err := net.FileConn(file)
		file.Close()
		if err != nil {
			return fmt.Errorf("failed to adopt control socket fd %d: %w", fd, err)
		}

		logger.Info("serving inherited control socket", "fd", fd, "backend", backend)
		return server.NewSession(conn, inputHost, videoHost).Run(ctx)
	}

	srv, err := server.Listen(socketPath, inputHost, videoHost)
	if err != nil {
		return err
	}
	defer srv.Close()

	logger.Info("broker started", "socket", socketPath, "backend", backend)
	return srv.Serve(ctx)
}
