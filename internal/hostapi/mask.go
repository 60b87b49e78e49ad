package hostapi

// NumValuators is the accumulator width shared by pointer and touch devices:
// slots 0/1 carry position, slots 2/3 carry scroll.
const NumValuators = 4

type valuator struct {
	set        bool
	hasUnaccel bool
	value      int32
	unaccel    int32
}

// ValuatorMask accumulates per-axis values for one motion or touch report.
// A slot that was never set emits no value at all, which is distinct from a
// slot set to zero.
type ValuatorMask struct {
	slots [NumValuators]valuator
}

// NewValuatorMask returns an empty mask.
func NewValuatorMask() *ValuatorMask {
	return &ValuatorMask{}
}

// Zero clears every slot. Called before each report.
func (m *ValuatorMask) Zero() {
	m.slots = [NumValuators]valuator{}
}

// Set records a plain value for a slot.
func (m *ValuatorMask) Set(slot int, value int32) {
	m.slots[slot] = valuator{set: true, value: value}
}

// SetUnaccelerated records both the accelerated and unaccelerated value for
// a slot. For synthetic motion both are the exact pixel delta.
func (m *ValuatorMask) SetUnaccelerated(slot int, value, unaccel int32) {
	m.slots[slot] = valuator{set: true, hasUnaccel: true, value: value, unaccel: unaccel}
}

// IsSet reports whether the slot carries a value.
func (m *ValuatorMask) IsSet(slot int) bool {
	return m.slots[slot].set
}

// Value returns the slot's value; zero when unset.
func (m *ValuatorMask) Value(slot int) int32 {
	return m.slots[slot].value
}

// Unaccelerated returns the unaccelerated value and whether one was recorded.
func (m *ValuatorMask) Unaccelerated(slot int) (int32, bool) {
	return m.slots[slot].unaccel, m.slots[slot].hasUnaccel
}

// Snapshot copies the mask, so event journals keep the state at post time.
func (m *ValuatorMask) Snapshot() *ValuatorMask {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}
