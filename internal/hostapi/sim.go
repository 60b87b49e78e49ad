package hostapi

import (
	"fmt"

	"github.com/okatz/seatsim/internal/logger"
)

// Default identifiers handed out by the simulated screen. Arbitrary but
// stable, so round-tripping queries yields identical values.
var defaultScreen = ScreenInfo{
	Outputs: [2]OutputInfo{
		{OutputID: 64, CRTCID: 62},
		{OutputID: 65, CRTCID: 63},
	},
	Modes: []ModeInfo{
		{ID: 70, Width: 1024, Height: 768},
		{ID: 71, Width: 800, Height: 600},
	},
}

// EventType discriminates journal entries recorded by SimHost.
type EventType int

const (
	EventKey EventType = iota + 1
	EventButton
	EventMotion
	EventTouch
)

// PostedEvent is one synthetic event delivered to the simulated host.
type PostedEvent struct {
	Type    EventType
	Device  uint32
	Code    uint32 // keycode or button index
	Pressed bool
	Contact uint32
	Phase   TouchPhase
	Mask    *ValuatorMask
}

// SimDevice is the simulated host's view of one registered device.
type SimDevice struct {
	ID   uint32
	Name string
	Caps Capabilities
}

// SimOutput is the simulated state of one virtual output.
type SimOutput struct {
	Connected bool
	MMWidth   uint32
	MMHeight  uint32
}

// SimHost is an in-memory host used by the sim backend and by tests. It
// assigns monotonically increasing device ids and journals every delivered
// event. Not safe for concurrent use; the session is single-threaded.
type SimHost struct {
	nextID  uint32
	devices []*SimDevice
	events  []PostedEvent

	screen  *ScreenInfo
	outputs [2]SimOutput
	changes int
}

// NewSimHost returns a host with an initialized screen: two output/CRTC
// pairs, output 0 connected, modes 1024x768 and 800x600.
func NewSimHost() *SimHost {
	screen := defaultScreen
	h := &SimHost{
		nextID: 1,
		screen: &screen,
	}
	h.outputs[0] = SimOutput{Connected: true, MMWidth: 2000, MMHeight: 1000}
	h.outputs[1] = SimOutput{MMWidth: 2000, MMHeight: 1000}
	return h
}

var _ InputHost = (*SimHost)(nil)
var _ VideoHost = (*SimHost)(nil)

func (h *SimHost) CreateDevice(name string, caps Capabilities) (uint32, error) {
	dev := &SimDevice{
		ID:   h.nextID,
		Name: name,
		Caps: caps,
	}
	h.nextID++
	h.devices = append(h.devices, dev)
	logger.Debugf("sim: created %s device %q id=%d", caps.Class, name, dev.ID)
	return dev.ID, nil
}

// KeycodeBase matches the X server convention of evdev code + 8.
func (h *SimHost) KeycodeBase() uint32 { return 8 }

func (h *SimHost) DestroyDevice(id uint32) error {
	for i, dev := range h.devices {
		if dev.ID == id {
			h.devices = append(h.devices[:i], h.devices[i+1:]...)
			logger.Debugf("sim: destroyed device id=%d", id)
			return nil
		}
	}
	return fmt.Errorf("sim: no device with id %d", id)
}

func (h *SimHost) PostKey(id uint32, keycode uint32, pressed bool) error {
	if err := h.checkDevice(id); err != nil {
		return err
	}
	h.events = append(h.events, PostedEvent{
		Type:    EventKey,
		Device:  id,
		Code:    keycode,
		Pressed: pressed,
	})
	return nil
}

func (h *SimHost) PostButton(id uint32, button uint32, pressed bool) error {
	if err := h.checkDevice(id); err != nil {
		return err
	}
	h.events = append(h.events, PostedEvent{
		Type:    EventButton,
		Device:  id,
		Code:    button,
		Pressed: pressed,
	})
	return nil
}

func (h *SimHost) PostMotion(id uint32, mask *ValuatorMask) error {
	if err := h.checkDevice(id); err != nil {
		return err
	}
	h.events = append(h.events, PostedEvent{
		Type:   EventMotion,
		Device: id,
		Mask:   mask.Snapshot(),
	})
	return nil
}

func (h *SimHost) PostTouch(id uint32, contact uint32, phase TouchPhase, mask *ValuatorMask) error {
	if err := h.checkDevice(id); err != nil {
		return err
	}
	h.events = append(h.events, PostedEvent{
		Type:    EventTouch,
		Device:  id,
		Contact: contact,
		Phase:   phase,
		Mask:    mask.Snapshot(),
	})
	return nil
}

func (h *SimHost) SetOutputState(output int, connected bool, mmWidth, mmHeight uint32) error {
	if output < 0 || output >= len(h.outputs) {
		return fmt.Errorf("sim: no output %d", output)
	}
	h.outputs[output] = SimOutput{
		Connected: connected,
		MMWidth:   mmWidth,
		MMHeight:  mmHeight,
	}
	return nil
}

func (h *SimHost) NotifyTopologyChanged() error {
	h.changes++
	logger.Debug("sim: topology change published", "count", h.changes)
	return nil
}

func (h *SimHost) ScreenInfo() (*ScreenInfo, error) {
	if h.screen == nil {
		return nil, fmt.Errorf("sim: screen not initialized")
	}
	return h.screen, nil
}

// SetScreen replaces the screen snapshot; tests pass nil to exercise the
// pre-initialization failure path.
func (h *SimHost) SetScreen(info *ScreenInfo) {
	h.screen = info
}

// Devices returns the live device table in creation order.
func (h *SimHost) Devices() []*SimDevice {
	return h.devices
}

// Device looks up a live device by id, nil when absent.
func (h *SimHost) Device(id uint32) *SimDevice {
	for _, dev := range h.devices {
		if dev.ID == id {
			return dev
		}
	}
	return nil
}

// Events returns the delivered-event journal in order.
func (h *SimHost) Events() []PostedEvent {
	return h.events
}

// Output returns the simulated state of one output.
func (h *SimHost) Output(i int) SimOutput {
	return h.outputs[i]
}

// TopologyChanges counts published topology notifications.
func (h *SimHost) TopologyChanges() int {
	return h.changes
}

func (h *SimHost) checkDevice(id uint32) error {
	if h.Device(id) == nil {
		return fmt.Errorf("sim: no device with id %d", id)
	}
	return nil
}
