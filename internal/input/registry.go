package input

import (
	"fmt"

	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/okatz/seatsim/internal/logger"
)

// Registry owns every live virtual device of one session and synthesizes
// their events. It is not safe for concurrent use: the protocol is strictly
// sequential and all mutation happens on the session goroutine.
type Registry struct {
	host    hostapi.InputHost
	devices []*Device

	// nextName numbers synthesized device names, shared across kinds.
	nextName uint32

	// nextContact is the touch-contact id counter, shared across every
	// touch device of the session. Never recycled.
	nextContact uint32
}

// NewRegistry returns an empty registry bound to a host.
func NewRegistry(host hostapi.InputHost) *Registry {
	return &Registry{
		host:        host,
		nextName:    1,
		nextContact: 1,
	}
}

// Create registers a new floating virtual device of the given kind and
// returns the host-assigned id. A host rejection is an unrecoverable
// configuration error and is propagated as-is.
func (r *Registry) Create(kind Kind) (uint32, error) {
	var caps hostapi.Capabilities
	switch kind {
	case Keyboard:
		caps = keyboardCaps()
	case Mouse:
		caps = mouseCaps()
	case Touch:
		caps = touchCaps()
	default:
		return 0, fmt.Errorf("cannot create device of kind %v", kind)
	}

	name := fmt.Sprintf("%s%d", kind.namePrefix(), r.nextName)
	r.nextName++

	id, err := r.host.CreateDevice(name, caps)
	if err != nil {
		return 0, fmt.Errorf("host rejected %s device %q: %w", kind, name, err)
	}

	dev := &Device{ID: id, Kind: kind, Name: name}
	if kind != Keyboard {
		dev.mask = hostapi.NewValuatorMask()
	}
	r.devices = append(r.devices, dev)

	logger.Info("created virtual device", "kind", kind, "name", name, "id", id)
	return id, nil
}

// Remove tears the device down on the host and drops it from the table.
// From this point on the id deterministically resolves to ErrUnknownDevice,
// even if host-side teardown is still in flight.
func (r *Registry) Remove(id uint32) error {
	for i, dev := range r.devices {
		if dev.ID == id {
			r.devices = append(r.devices[:i], r.devices[i+1:]...)
			dev.mask = nil
			if err := r.host.DestroyDevice(id); err != nil {
				return fmt.Errorf("host teardown of device %d failed: %w", id, err)
			}
			logger.Info("removed virtual device", "kind", dev.Kind, "id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownDevice, id)
}

// Clear removes every remaining device, called when a session ends so
// host-side devices do not outlive their driver.
func (r *Registry) Clear() error {
	var firstErr error
	for len(r.devices) > 0 {
		if err := r.Remove(r.devices[0].ID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Lookup resolves an id to a live device. Linear scan in insertion order;
// device counts in a test session stay tiny.
func (r *Registry) Lookup(id uint32) (*Device, error) {
	for _, dev := range r.devices {
		if dev.ID == id {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDevice, id)
}

func (r *Registry) lookupKind(id uint32, kind Kind) (*Device, error) {
	dev, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if dev.Kind != kind {
		return nil, fmt.Errorf("%w: device %d is a %s, not a %s", ErrWrongDeviceKind, id, dev.Kind, kind)
	}
	return dev, nil
}

// Len reports the number of live devices.
func (r *Registry) Len() int { return len(r.devices) }

// KeyPress translates a zero-based logical key code into the host's keycode
// space and delivers a key-down event.
func (r *Registry) KeyPress(id uint32, key uint32) error {
	return r.key(id, key, true)
}

// KeyRelease delivers the matching key-up event.
func (r *Registry) KeyRelease(id uint32, key uint32) error {
	return r.key(id, key, false)
}

func (r *Registry) key(id uint32, key uint32, pressed bool) error {
	dev, err := r.lookupKind(id, Keyboard)
	if err != nil {
		return err
	}
	keycode := uint32(uint8(key)) + r.host.KeycodeBase()
	return r.host.PostKey(dev.ID, keycode, pressed)
}

// ButtonPress delivers a button-down event. The button index is forwarded
// untranslated.
func (r *Registry) ButtonPress(id uint32, button uint32) error {
	return r.button(id, button, true)
}

// ButtonRelease delivers the matching button-up event.
func (r *Registry) ButtonRelease(id uint32, button uint32) error {
	return r.button(id, button, false)
}

func (r *Registry) button(id uint32, button uint32, pressed bool) error {
	dev, err := r.lookupKind(id, Mouse)
	if err != nil {
		return err
	}
	return r.host.PostButton(dev.ID, uint32(uint8(button)), pressed)
}

// MouseMove delivers an unaccelerated relative motion: the deltas are final
// pixel deltas and the host must not run them through an acceleration curve.
func (r *Registry) MouseMove(id uint32, dx, dy int32) error {
	dev, err := r.lookupKind(id, Mouse)
	if err != nil {
		return err
	}
	dev.mask.Zero()
	dev.mask.SetUnaccelerated(0, dx, dx)
	dev.mask.SetUnaccelerated(1, dy, dy)
	return r.host.PostMotion(dev.ID, dev.mask)
}

// MouseScroll delivers a scroll motion in 120-unit notches. An axis with a
// zero delta emits no value at all, which is different from scrolling by
// zero.
func (r *Registry) MouseScroll(id uint32, dx, dy int32) error {
	dev, err := r.lookupKind(id, Mouse)
	if err != nil {
		return err
	}
	dev.mask.Zero()
	if dx != 0 {
		dev.mask.Set(2, dx*scrollUnit)
	}
	if dy != 0 {
		dev.mask.Set(3, dy*scrollUnit)
	}
	return r.host.PostMotion(dev.ID, dev.mask)
}

// TouchDown begins a new contact at an absolute position and returns its
// freshly allocated contact id. Contact ids increase strictly across the
// session no matter which touch device they came from.
func (r *Registry) TouchDown(id uint32, x, y int32) (uint32, error) {
	dev, err := r.lookupKind(id, Touch)
	if err != nil {
		return 0, err
	}
	dev.mask.Zero()
	dev.mask.Set(0, x)
	dev.mask.Set(1, y)

	contact := r.nextContact
	r.nextContact++

	if err := r.host.PostTouch(dev.ID, contact, hostapi.TouchBegin, dev.mask); err != nil {
		return 0, err
	}
	return contact, nil
}

// TouchMove updates a contact's absolute position. Whether the contact is
// actually active is the caller's responsibility.
func (r *Registry) TouchMove(id uint32, contact uint32, x, y int32) error {
	dev, err := r.lookupKind(id, Touch)
	if err != nil {
		return err
	}
	dev.mask.Zero()
	dev.mask.Set(0, x)
	dev.mask.Set(1, y)
	return r.host.PostTouch(dev.ID, contact, hostapi.TouchUpdate, dev.mask)
}

// TouchUp ends a contact. Contact ids are never recycled, so no cleanup is
// needed beyond the host event.
func (r *Registry) TouchUp(id uint32, contact uint32) error {
	dev, err := r.lookupKind(id, Touch)
	if err != nil {
		return err
	}
	return r.host.PostTouch(dev.ID, contact, hostapi.TouchEnd, nil)
}
