package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/okatz/seatsim/internal/logger"
)

// Server accepts driver connections on a unix socket when no pre-opened
// descriptor was inherited. Connections are served one at a time: the
// protocol assumes a single trusted driver with no overlapping sessions.
type Server struct {
	listener   net.Listener
	socketPath string
	inputHost  hostapi.InputHost
	videoHost  hostapi.VideoHost
}

// Listen binds the control socket, replacing any stale socket file.
func Listen(socketPath string, inputHost hostapi.InputHost, videoHost hostapi.VideoHost) (*Server, error) {
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(socketPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}
	if err := os.Chmod(socketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	return &Server{
		listener:   listener,
		socketPath: socketPath,
		inputHost:  inputHost,
		videoHost:  videoHost,
	}, nil
}

// Serve accepts drivers until the context is canceled. Each connection gets
// a fresh session; a failed session closes that connection and the next
// driver is accepted.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.listener.Close()
	})
	defer stop()

	logger.Infof("control socket listening at %s", s.socketPath)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		logger.Info("driver connected")
		sess := NewSession(conn, s.inputHost, s.videoHost)
		if err := sess.Run(ctx); err != nil {
			logger.Error("session ended", "err", err)
		}
		conn.Close()
	}
}

// Close shuts the listener down and removes the socket file.
func (s *Server) Close() {
	s.listener.Close()
	os.RemoveAll(s.socketPath)
}
