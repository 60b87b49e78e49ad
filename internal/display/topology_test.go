package display

import (
	"testing"

	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	topo := New(hostapi.NewSimHost())

	assert.True(t, topo.Connected(0), "output 0 must start connected")
	assert.False(t, topo.Connected(1), "output 1 must start disconnected")
}

func TestSetSecondConnected(t *testing.T) {
	sim := hostapi.NewSimHost()
	topo := New(sim)

	require.NoError(t, topo.SetSecondConnected(true))
	assert.True(t, topo.Connected(1))
	assert.True(t, sim.Output(1).Connected)
	assert.Equal(t, uint32(20), sim.Output(1).MMWidth)
	assert.Equal(t, uint32(20), sim.Output(1).MMHeight)
	assert.Equal(t, 1, sim.TopologyChanges(), "toggle must publish a topology change")

	require.NoError(t, topo.SetSecondConnected(false))
	assert.False(t, topo.Connected(1))
	assert.False(t, sim.Output(1).Connected)
	assert.Equal(t, 2, sim.TopologyChanges())

	// Output 0 is never toggled.
	assert.True(t, topo.Connected(0))
	assert.True(t, sim.Output(0).Connected)
}

func TestDescribe(t *testing.T) {
	sim := hostapi.NewSimHost()
	topo := New(sim)

	info, err := topo.Describe()
	require.NoError(t, err)

	screen, err := sim.ScreenInfo()
	require.NoError(t, err)

	assert.Equal(t, screen.Outputs[1].CRTCID, info.SecondCRTC)
	assert.Equal(t, screen.Outputs[0].OutputID, info.FirstOutput)
	assert.Equal(t, screen.Outputs[1].OutputID, info.SecondOutput)

	// Exactly one mode is 1024 wide; it classifies as large.
	var largeID, smallID uint32
	for _, mode := range screen.Modes {
		if mode.Width == 1024 {
			largeID = mode.ID
		} else {
			smallID = mode.ID
		}
	}
	assert.Equal(t, largeID, info.LargeMode)
	assert.Equal(t, smallID, info.SmallMode)
	assert.NotEqual(t, info.LargeMode, info.SmallMode)
}

func TestDescribeStableAcrossToggles(t *testing.T) {
	sim := hostapi.NewSimHost()
	topo := New(sim)

	before, err := topo.Describe()
	require.NoError(t, err)

	require.NoError(t, topo.SetSecondConnected(true))
	mid, err := topo.Describe()
	require.NoError(t, err)

	require.NoError(t, topo.SetSecondConnected(false))
	after, err := topo.Describe()
	require.NoError(t, err)

	// Identifiers are assigned at screen init and never change.
	assert.Equal(t, before, mid)
	assert.Equal(t, before, after)
}

func TestDescribeBeforeScreenInit(t *testing.T) {
	sim := hostapi.NewSimHost()
	sim.SetScreen(nil)
	topo := New(sim)

	_, err := topo.Describe()
	assert.Error(t, err)
}
