// Package input owns the virtual device registry and the per-kind event
// synthesis state machines.
package input

import (
	"errors"

	"github.com/okatz/seatsim/internal/hostapi"
)

// Kind is the device kind, fixed at creation.
type Kind int

const (
	Keyboard Kind = iota + 1
	Mouse
	Touch
)

func (k Kind) String() string {
	switch k {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	case Touch:
		return "touchscreen"
	default:
		return "unknown"
	}
}

// namePrefix is also the synthesized device name prefix on the host.
func (k Kind) namePrefix() string { return k.String() }

var (
	// ErrUnknownDevice is returned when an id does not resolve to a live
	// device, including ids referencing an already removed device.
	ErrUnknownDevice = errors.New("unknown device id")

	// ErrWrongDeviceKind is returned when an id resolves to a device of a
	// different kind than the command requires.
	ErrWrongDeviceKind = errors.New("wrong device kind")
)

// Device is one live virtual device. The registry owns the record; the host
// only ever sees the id.
type Device struct {
	ID   uint32
	Kind Kind
	Name string

	// mask is the valuator accumulator for pointer and touch devices,
	// nil for keyboards.
	mask *hostapi.ValuatorMask
}

// Mask exposes the accumulator for inspection in tests.
func (d *Device) Mask() *hostapi.ValuatorMask { return d.mask }

// Capability declarations, made once at creation before any event is
// accepted. Values mirror the classic X virtual-device setup: 9 buttons,
// relative x/y plus two 120-unit scroll axes for pointers, and a direct
// touch surface bounded to the 1024x768 logical screen.

func keyboardCaps() hostapi.Capabilities {
	return hostapi.Capabilities{
		Class: hostapi.ClassKeyboard,
	}
}

func mouseCaps() hostapi.Capabilities {
	return hostapi.Capabilities{
		Class:   hostapi.ClassPointer,
		Buttons: 9,
		Axes: []hostapi.Axis{
			{Label: "Rel X", Min: -1, Max: -1},
			{Label: "Rel Y", Min: -1, Max: -1},
			{Label: "Rel Horiz Scroll", ScrollIncrement: scrollUnit},
			{Label: "Rel Vert Scroll", ScrollIncrement: scrollUnit},
		},
		NoAcceleration: true,
	}
}

func touchCaps() hostapi.Capabilities {
	return hostapi.Capabilities{
		Class:   hostapi.ClassTouchscreen,
		Buttons: 9,
		Axes: []hostapi.Axis{
			{Label: "Abs MT Position X", Min: 0, Max: touchSurfaceWidth - 1, Absolute: true},
			{Label: "Abs MT Position Y", Min: 0, Max: touchSurfaceHeight - 1, Absolute: true},
		},
		DirectTouch:    true,
		MaxContacts:    2,
		NoAcceleration: true,
	}
}

const (
	touchSurfaceWidth  = 1024
	touchSurfaceHeight = 768

	// scrollUnit is one full wheel notch in the host's scroll convention.
	scrollUnit = 120
)
