package hostapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuatorMask(t *testing.T) {
	mask := NewValuatorMask()

	for slot := 0; slot < NumValuators; slot++ {
		assert.False(t, mask.IsSet(slot), "fresh mask slot %d is set", slot)
	}

	mask.Set(2, 240)
	assert.True(t, mask.IsSet(2))
	assert.Equal(t, int32(240), mask.Value(2))
	_, hasUnaccel := mask.Unaccelerated(2)
	assert.False(t, hasUnaccel, "plain Set recorded an unaccelerated value")

	mask.SetUnaccelerated(0, -3, -3)
	require.True(t, mask.IsSet(0))
	assert.Equal(t, int32(-3), mask.Value(0))
	unaccel, hasUnaccel := mask.Unaccelerated(0)
	require.True(t, hasUnaccel)
	assert.Equal(t, int32(-3), unaccel)

	// A slot set to zero is still set: "scroll by zero" differs from
	// "no scroll".
	mask.Set(3, 0)
	assert.True(t, mask.IsSet(3))
	assert.Equal(t, int32(0), mask.Value(3))

	mask.Zero()
	for slot := 0; slot < NumValuators; slot++ {
		assert.False(t, mask.IsSet(slot), "slot %d survived Zero()", slot)
	}
}

func TestValuatorMaskSnapshot(t *testing.T) {
	mask := NewValuatorMask()
	mask.Set(0, 100)

	snap := mask.Snapshot()
	mask.Zero()

	assert.True(t, snap.IsSet(0), "snapshot mutated by later Zero()")
	assert.Equal(t, int32(100), snap.Value(0))

	var nilMask *ValuatorMask
	assert.Nil(t, nilMask.Snapshot())
}
