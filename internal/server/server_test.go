package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/okatz/seatsim/internal/client"
	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerServesDriversSequentially(t *testing.T) {
	sim := hostapi.NewSimHost()
	socketPath := filepath.Join(t.TempDir(), "seatsim.sock")

	srv, err := Listen(socketPath, sim, sim)
	require.NoError(t, err)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx)
	}()

	first, err := client.Dial(socketPath)
	require.NoError(t, err)
	id, err := first.CreateMouse()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
	require.NoError(t, first.Close())

	// The next driver gets a fresh session, but host device ids keep
	// counting for the process lifetime.
	second, err := client.Dial(socketPath)
	require.NoError(t, err)
	id, err = second.CreateKeyboard()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), id)
	require.NoError(t, second.Close())

	cancel()
	assert.NoError(t, <-done)
}
