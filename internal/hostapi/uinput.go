package hostapi

import (
	"fmt"

	"github.com/ThomasT75/uinput"
	"github.com/okatz/seatsim/internal/logger"
)

// UinputHost realizes InputHost with real kernel virtual devices, so a
// scripted session can drive an actual desktop instead of a simulated one.
// Touch contacts are approximated with absolute moves plus press/release;
// the kernel touchpad surface is bounded like the simulated screen.
type UinputHost struct {
	path    string
	nextID  uint32
	devices map[uint32]*uinputDevice
}

type uinputDevice struct {
	class    DeviceClass
	keyboard uinput.Keyboard
	mouse    uinput.Mouse
	touch    uinput.TouchPad
}

// NewUinputHost creates a host backed by the given uinput device node,
// normally /dev/uinput.
func NewUinputHost(path string) *UinputHost {
	return &UinputHost{
		path:    path,
		nextID:  1,
		devices: make(map[uint32]*uinputDevice),
	}
}

var _ InputHost = (*UinputHost)(nil)

func (h *UinputHost) CreateDevice(name string, caps Capabilities) (uint32, error) {
	dev := &uinputDevice{class: caps.Class}

	var err error
	switch caps.Class {
	case ClassKeyboard:
		dev.keyboard, err = uinput.CreateKeyboard(h.path, []byte(name))
	case ClassPointer:
		dev.mouse, err = uinput.CreateMouse(h.path, []byte(name))
	case ClassTouchscreen:
		var minX, maxX, minY, maxY int32
		for i, axis := range caps.Axes {
			if !axis.Absolute {
				continue
			}
			switch i {
			case 0:
				minX, maxX = axis.Min, axis.Max
			case 1:
				minY, maxY = axis.Min, axis.Max
			}
		}
		dev.touch, err = uinput.CreateTouchPad(h.path, []byte(name), minX, maxX, minY, maxY)
	default:
		return 0, fmt.Errorf("unsupported device class %v", caps.Class)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create uinput %s: %w", caps.Class, err)
	}

	id := h.nextID
	h.nextID++
	h.devices[id] = dev
	logger.Infof("uinput: created %s device %q id=%d", caps.Class, name, id)
	return id, nil
}

// KeycodeBase is zero: uinput speaks raw evdev keycodes.
func (h *UinputHost) KeycodeBase() uint32 { return 0 }

func (h *UinputHost) DestroyDevice(id uint32) error {
	dev, ok := h.devices[id]
	if !ok {
		return fmt.Errorf("uinput: no device with id %d", id)
	}
	delete(h.devices, id)

	var err error
	switch {
	case dev.keyboard != nil:
		err = dev.keyboard.Close()
	case dev.mouse != nil:
		err = dev.mouse.Close()
	case dev.touch != nil:
		err = dev.touch.Close()
	}
	if err != nil {
		return fmt.Errorf("uinput: failed to close device %d: %w", id, err)
	}
	return nil
}

func (h *UinputHost) PostKey(id uint32, keycode uint32, pressed bool) error {
	dev, err := h.device(id, ClassKeyboard)
	if err != nil {
		return err
	}
	if pressed {
		return dev.keyboard.KeyDown(int(keycode))
	}
	return dev.keyboard.KeyUp(int(keycode))
}

func (h *UinputHost) PostButton(id uint32, button uint32, pressed bool) error {
	dev, err := h.device(id, ClassPointer)
	if err != nil {
		return err
	}

	// Core X button numbering: 1 left, 2 middle, 3 right. uinput exposes
	// nothing beyond those three.
	switch button {
	case 1:
		if pressed {
			return dev.mouse.LeftPress()
		}
		return dev.mouse.LeftRelease()
	case 2:
		if pressed {
			return dev.mouse.MiddlePress()
		}
		return dev.mouse.MiddleRelease()
	case 3:
		if pressed {
			return dev.mouse.RightPress()
		}
		return dev.mouse.RightRelease()
	default:
		return fmt.Errorf("uinput: unmapped button %d", button)
	}
}

func (h *UinputHost) PostMotion(id uint32, mask *ValuatorMask) error {
	dev, err := h.device(id, ClassPointer)
	if err != nil {
		return err
	}

	if mask.IsSet(0) || mask.IsSet(1) {
		if err := dev.mouse.Move(mask.Value(0), mask.Value(1)); err != nil {
			return fmt.Errorf("uinput: move failed: %w", err)
		}
	}
	// Scroll slots carry notch*120 values; uinput wheels count notches.
	if mask.IsSet(2) {
		if err := dev.mouse.Wheel(true, mask.Value(2)/scrollUnit); err != nil {
			return fmt.Errorf("uinput: horizontal wheel failed: %w", err)
		}
	}
	if mask.IsSet(3) {
		if err := dev.mouse.Wheel(false, mask.Value(3)/scrollUnit); err != nil {
			return fmt.Errorf("uinput: vertical wheel failed: %w", err)
		}
	}
	return nil
}

const scrollUnit = 120

func (h *UinputHost) PostTouch(id uint32, contact uint32, phase TouchPhase, mask *ValuatorMask) error {
	dev, err := h.device(id, ClassTouchscreen)
	if err != nil {
		return err
	}

	if mask != nil && (mask.IsSet(0) || mask.IsSet(1)) {
		if err := dev.touch.MoveTo(mask.Value(0), mask.Value(1)); err != nil {
			return fmt.Errorf("uinput: touch move failed: %w", err)
		}
	}
	switch phase {
	case TouchBegin:
		return dev.touch.LeftPress()
	case TouchEnd:
		return dev.touch.LeftRelease()
	case TouchUpdate:
		return nil
	default:
		return fmt.Errorf("uinput: unknown touch phase %v", phase)
	}
}

// Close tears down every remaining device.
func (h *UinputHost) Close() error {
	var firstErr error
	for id := range h.devices {
		if err := h.DestroyDevice(id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *UinputHost) device(id uint32, class DeviceClass) (*uinputDevice, error) {
	dev, ok := h.devices[id]
	if !ok {
		return nil, fmt.Errorf("uinput: no device with id %d", id)
	}
	if dev.class != class {
		return nil, fmt.Errorf("uinput: device %d is a %s, not a %s", id, dev.class, class)
	}
	return dev, nil
}
