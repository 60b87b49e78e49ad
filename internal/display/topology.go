// Package display controls the two virtual output/CRTC pairs of the test
// screen: toggling the second output and describing the identifiers the
// host assigned at screen initialization.
package display

import (
	"fmt"

	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/okatz/seatsim/internal/logger"
)

// NumOutputs is fixed by the protocol: a primary that is always connected
// and a secondary that commands toggle.
const NumOutputs = 2

// largeModeWidth classifies the two supported modes: 1024 wide is "large",
// the other one is "small".
const largeModeWidth = 1024

// Placeholder physical size pushed when the second output is toggled, only
// so clients observe some property change.
const toggledMM = 20

// VideoInfo is the identifier snapshot replied to a GetVideoInfo command.
type VideoInfo struct {
	SecondCRTC   uint32
	FirstOutput  uint32
	SecondOutput uint32
	SmallMode    uint32
	LargeMode    uint32
}

// Topology owns the connection state of the two virtual outputs.
type Topology struct {
	host      hostapi.VideoHost
	connected [NumOutputs]bool
}

// New returns the topology with output 0 connected, the initial screen
// configuration.
func New(host hostapi.VideoHost) *Topology {
	t := &Topology{host: host}
	t.connected[0] = true
	return t
}

// SetSecondConnected flips output 1 and synchronously publishes the new
// topology. Output 0 is never toggled. The caller must not reply to the
// driving command before this returns.
func (t *Topology) SetSecondConnected(connected bool) error {
	t.connected[1] = connected
	if err := t.host.SetOutputState(1, connected, toggledMM, toggledMM); err != nil {
		return fmt.Errorf("failed to update output 1: %w", err)
	}
	if err := t.host.NotifyTopologyChanged(); err != nil {
		return fmt.Errorf("failed to publish topology change: %w", err)
	}
	logger.Info("second output toggled", "connected", connected)
	return nil
}

// Connected reports an output's connection state.
func (t *Topology) Connected(output int) bool {
	return t.connected[output]
}

// Describe reads the immutable post-init identifiers and classifies the two
// configured modes by horizontal resolution. Failing to read them means the
// screen was never initialized, which is an unrecoverable host
// misconfiguration.
func (t *Topology) Describe() (VideoInfo, error) {
	screen, err := t.host.ScreenInfo()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("screen not initialized: %w", err)
	}

	info := VideoInfo{
		SecondCRTC:   screen.Outputs[1].CRTCID,
		FirstOutput:  screen.Outputs[0].OutputID,
		SecondOutput: screen.Outputs[1].OutputID,
	}
	for _, mode := range screen.Modes {
		if mode.Width == largeModeWidth {
			info.LargeMode = mode.ID
		} else {
			info.SmallMode = mode.ID
		}
	}
	return info, nil
}
