package input

import (
	"testing"

	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *hostapi.SimHost) {
	t.Helper()
	sim := hostapi.NewSimHost()
	return NewRegistry(sim), sim
}

func TestCreateAndLookup(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		wantMask bool
	}{
		{"keyboard", Keyboard, false},
		{"mouse", Mouse, true},
		{"touch", Touch, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, sim := newTestRegistry(t)

			id, err := reg.Create(tt.kind)
			require.NoError(t, err)

			dev, err := reg.Lookup(id)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, dev.Kind)

			if tt.wantMask {
				require.NotNil(t, dev.Mask())
				for slot := 0; slot < hostapi.NumValuators; slot++ {
					assert.False(t, dev.Mask().IsSet(slot), "slot %d of a fresh device is set", slot)
				}
			} else {
				assert.Nil(t, dev.Mask())
			}

			hostDev := sim.Device(id)
			require.NotNil(t, hostDev)
			assert.Equal(t, dev.Name, hostDev.Name)
		})
	}
}

func TestDeviceNamesShareCounter(t *testing.T) {
	reg, sim := newTestRegistry(t)

	kb, err := reg.Create(Keyboard)
	require.NoError(t, err)
	ms, err := reg.Create(Mouse)
	require.NoError(t, err)

	assert.Equal(t, "keyboard1", sim.Device(kb).Name)
	assert.Equal(t, "mouse2", sim.Device(ms).Name)
}

func TestCapabilityDeclaration(t *testing.T) {
	reg, sim := newTestRegistry(t)

	ms, err := reg.Create(Mouse)
	require.NoError(t, err)
	caps := sim.Device(ms).Caps
	assert.Equal(t, hostapi.ClassPointer, caps.Class)
	assert.Equal(t, 9, caps.Buttons)
	require.Len(t, caps.Axes, 4)
	assert.Equal(t, int32(120), caps.Axes[2].ScrollIncrement)
	assert.Equal(t, int32(120), caps.Axes[3].ScrollIncrement)
	assert.True(t, caps.NoAcceleration)

	tc, err := reg.Create(Touch)
	require.NoError(t, err)
	caps = sim.Device(tc).Caps
	assert.Equal(t, hostapi.ClassTouchscreen, caps.Class)
	assert.True(t, caps.DirectTouch)
	assert.Equal(t, 2, caps.MaxContacts)
	require.Len(t, caps.Axes, 2)
	assert.True(t, caps.Axes[0].Absolute)
	assert.Equal(t, int32(1023), caps.Axes[0].Max)
	assert.Equal(t, int32(767), caps.Axes[1].Max)
}

func TestKeyTranslation(t *testing.T) {
	reg, sim := newTestRegistry(t)

	kb, err := reg.Create(Keyboard)
	require.NoError(t, err)

	require.NoError(t, reg.KeyPress(kb, 30))
	require.NoError(t, reg.KeyRelease(kb, 30))

	events := sim.Events()
	require.Len(t, events, 2)
	assert.Equal(t, hostapi.EventKey, events[0].Type)
	assert.Equal(t, uint32(38), events[0].Code, "logical code 30 + base 8")
	assert.True(t, events[0].Pressed)
	assert.Equal(t, uint32(38), events[1].Code)
	assert.False(t, events[1].Pressed)
}

func TestKeyLowByteOnly(t *testing.T) {
	reg, sim := newTestRegistry(t)

	kb, err := reg.Create(Keyboard)
	require.NoError(t, err)

	// Upper bytes of the key field are undefined on the wire and ignored.
	require.NoError(t, reg.KeyPress(kb, 0xdeadbe05))
	events := sim.Events()
	require.Len(t, events, 1)
	assert.Equal(t, uint32(0x05+8), events[0].Code)
}

func TestButtonForwarding(t *testing.T) {
	reg, sim := newTestRegistry(t)

	ms, err := reg.Create(Mouse)
	require.NoError(t, err)

	require.NoError(t, reg.ButtonPress(ms, 3))
	require.NoError(t, reg.ButtonRelease(ms, 3))

	events := sim.Events()
	require.Len(t, events, 2)
	assert.Equal(t, hostapi.EventButton, events[0].Type)
	assert.Equal(t, uint32(3), events[0].Code)
	assert.True(t, events[0].Pressed)
	assert.False(t, events[1].Pressed)
}

func TestMouseMoveUnaccelerated(t *testing.T) {
	reg, sim := newTestRegistry(t)

	ms, err := reg.Create(Mouse)
	require.NoError(t, err)

	require.NoError(t, reg.MouseMove(ms, -3, 7))

	events := sim.Events()
	require.Len(t, events, 1)
	mask := events[0].Mask
	require.NotNil(t, mask)

	require.True(t, mask.IsSet(0))
	assert.Equal(t, int32(-3), mask.Value(0))
	unaccel, ok := mask.Unaccelerated(0)
	require.True(t, ok)
	assert.Equal(t, int32(-3), unaccel)

	require.True(t, mask.IsSet(1))
	assert.Equal(t, int32(7), mask.Value(1))
	unaccel, ok = mask.Unaccelerated(1)
	require.True(t, ok)
	assert.Equal(t, int32(7), unaccel)

	assert.False(t, mask.IsSet(2))
	assert.False(t, mask.IsSet(3))
}

func TestMouseScroll(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     int32
		wantHSet   bool
		wantVSet   bool
		wantH      int32
		wantV      int32
	}{
		{"vertical only", 0, 5, false, true, 0, 600},
		{"horizontal only", -2, 0, true, false, -240, 0},
		{"both axes", 1, 1, true, true, 120, 120},
		{"zero deltas emit nothing", 0, 0, false, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, sim := newTestRegistry(t)

			ms, err := reg.Create(Mouse)
			require.NoError(t, err)
			require.NoError(t, reg.MouseScroll(ms, tt.dx, tt.dy))

			events := sim.Events()
			require.Len(t, events, 1)
			mask := events[0].Mask

			assert.Equal(t, tt.wantHSet, mask.IsSet(2))
			assert.Equal(t, tt.wantVSet, mask.IsSet(3))
			if tt.wantHSet {
				assert.Equal(t, tt.wantH, mask.Value(2))
			}
			if tt.wantVSet {
				assert.Equal(t, tt.wantV, mask.Value(3))
			}
			// Position slots never carry scroll values.
			assert.False(t, mask.IsSet(0))
			assert.False(t, mask.IsSet(1))
		})
	}
}

func TestScrollClearsPreviousMotion(t *testing.T) {
	reg, sim := newTestRegistry(t)

	ms, err := reg.Create(Mouse)
	require.NoError(t, err)

	require.NoError(t, reg.MouseMove(ms, 10, -5))
	require.NoError(t, reg.MouseScroll(ms, 0, 3))

	events := sim.Events()
	require.Len(t, events, 2)

	move := events[0].Mask
	assert.Equal(t, int32(10), move.Value(0))
	assert.Equal(t, int32(-5), move.Value(1))

	scroll := events[1].Mask
	assert.False(t, scroll.IsSet(0), "stale motion in scroll report")
	assert.False(t, scroll.IsSet(1))
	assert.False(t, scroll.IsSet(2))
	assert.Equal(t, int32(360), scroll.Value(3))
}

func TestTouchContactIDsAcrossDevices(t *testing.T) {
	reg, sim := newTestRegistry(t)

	a, err := reg.Create(Touch)
	require.NoError(t, err)
	b, err := reg.Create(Touch)
	require.NoError(t, err)

	c1, err := reg.TouchDown(a, 10, 20)
	require.NoError(t, err)
	c2, err := reg.TouchDown(b, 30, 40)
	require.NoError(t, err)
	c3, err := reg.TouchDown(a, 50, 60)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), c1)
	assert.Equal(t, uint32(2), c2)
	assert.Equal(t, uint32(3), c3)

	events := sim.Events()
	require.Len(t, events, 3)
	for _, ev := range events {
		assert.Equal(t, hostapi.EventTouch, ev.Type)
		assert.Equal(t, hostapi.TouchBegin, ev.Phase)
	}
	assert.Equal(t, int32(10), events[0].Mask.Value(0))
	assert.Equal(t, int32(20), events[0].Mask.Value(1))
}

func TestTouchLifecycle(t *testing.T) {
	reg, sim := newTestRegistry(t)

	tc, err := reg.Create(Touch)
	require.NoError(t, err)

	contact, err := reg.TouchDown(tc, 100, 200)
	require.NoError(t, err)
	require.NoError(t, reg.TouchMove(tc, contact, 150, 250))
	require.NoError(t, reg.TouchUp(tc, contact))

	events := sim.Events()
	require.Len(t, events, 3)

	assert.Equal(t, hostapi.TouchBegin, events[0].Phase)
	assert.Equal(t, hostapi.TouchUpdate, events[1].Phase)
	assert.Equal(t, int32(150), events[1].Mask.Value(0))
	assert.Equal(t, int32(250), events[1].Mask.Value(1))
	assert.Equal(t, hostapi.TouchEnd, events[2].Phase)
	assert.Nil(t, events[2].Mask)

	for _, ev := range events {
		assert.Equal(t, contact, ev.Contact)
	}
}

func TestRemoveDevice(t *testing.T) {
	reg, sim := newTestRegistry(t)

	ms, err := reg.Create(Mouse)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	require.NoError(t, reg.Remove(ms))
	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, sim.Device(ms), "host-side device not torn down")

	_, err = reg.Lookup(ms)
	assert.ErrorIs(t, err, ErrUnknownDevice)

	err = reg.MouseMove(ms, 1, 1)
	assert.ErrorIs(t, err, ErrUnknownDevice)

	err = reg.Remove(ms)
	assert.ErrorIs(t, err, ErrUnknownDevice)
}

func TestWrongDeviceKind(t *testing.T) {
	reg, _ := newTestRegistry(t)

	kb, err := reg.Create(Keyboard)
	require.NoError(t, err)
	ms, err := reg.Create(Mouse)
	require.NoError(t, err)

	assert.ErrorIs(t, reg.MouseMove(kb, 1, 1), ErrWrongDeviceKind)
	assert.ErrorIs(t, reg.KeyPress(ms, 30), ErrWrongDeviceKind)
	_, err = reg.TouchDown(ms, 0, 0)
	assert.ErrorIs(t, err, ErrWrongDeviceKind)
}

func TestUnknownDevice(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Lookup(42)
	assert.ErrorIs(t, err, ErrUnknownDevice)
	assert.ErrorIs(t, reg.KeyPress(42, 1), ErrUnknownDevice)
}
