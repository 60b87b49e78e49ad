// Package hostapi defines the narrow surface the broker needs from the host
// windowing subsystem: device creation/teardown, synthetic event delivery,
// and the virtual output topology. The real machinery behind these calls is
// the host's concern; the broker only depends on the interfaces here.
package hostapi

// DeviceClass selects the host-side device class at creation time.
type DeviceClass int

const (
	ClassKeyboard DeviceClass = iota + 1
	ClassPointer
	ClassTouchscreen
)

func (c DeviceClass) String() string {
	switch c {
	case ClassKeyboard:
		return "keyboard"
	case ClassPointer:
		return "pointer"
	case ClassTouchscreen:
		return "touchscreen"
	default:
		return "unknown"
	}
}

// Axis describes one valuator axis declared at device creation.
type Axis struct {
	Label    string
	Min, Max int32
	Absolute bool

	// ScrollIncrement is the per-notch unit for scroll axes, 0 otherwise.
	ScrollIncrement int32
}

// Capabilities is the one-time declaration made when a device is created,
// before any event for it is accepted.
type Capabilities struct {
	Class   DeviceClass
	Buttons int
	Axes    []Axis

	// DirectTouch marks touchscreen semantics (contacts map to screen
	// positions); MaxContacts bounds concurrent contacts.
	DirectTouch bool
	MaxContacts int

	// NoAcceleration requests that the host deliver deltas untouched by any
	// pointer acceleration curve.
	NoAcceleration bool
}

// TouchPhase is the lifecycle stage of a touch contact event.
type TouchPhase int

const (
	TouchBegin TouchPhase = iota + 1
	TouchUpdate
	TouchEnd
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegin:
		return "begin"
	case TouchUpdate:
		return "update"
	case TouchEnd:
		return "end"
	default:
		return "unknown"
	}
}

// InputHost is the host-side device and event delivery surface. All calls
// are synchronous and must only be made from the session goroutine.
type InputHost interface {
	// CreateDevice registers a floating virtual device and returns the
	// host-assigned id. Rejection is an unrecoverable configuration error.
	CreateDevice(name string, caps Capabilities) (uint32, error)

	// KeycodeBase is the host-assigned offset added to zero-based logical
	// key codes to reach the host's keycode space.
	KeycodeBase() uint32

	// DestroyDevice tears the device down on the host side.
	DestroyDevice(id uint32) error

	// PostKey delivers a key event in the host's keycode space.
	PostKey(id uint32, keycode uint32, pressed bool) error

	// PostButton delivers a button event by button index.
	PostButton(id uint32, button uint32, pressed bool) error

	// PostMotion delivers a motion event carrying the valuator mask.
	PostMotion(id uint32, mask *ValuatorMask) error

	// PostTouch delivers a touch contact event. The mask may be nil for
	// TouchEnd.
	PostTouch(id uint32, contact uint32, phase TouchPhase, mask *ValuatorMask) error
}

// OutputInfo holds the immutable identifiers of one virtual output pair,
// assigned by the host at screen initialization.
type OutputInfo struct {
	OutputID uint32
	CRTCID   uint32
}

// ModeInfo is one supported display mode.
type ModeInfo struct {
	ID     uint32
	Width  uint16
	Height uint16
}

// ScreenInfo is the post-init identifier snapshot for the virtual screen.
type ScreenInfo struct {
	Outputs [2]OutputInfo
	Modes   []ModeInfo
}

// VideoHost is the host-side output topology surface.
type VideoHost interface {
	// SetOutputState flips an output's connected flag and reported physical
	// size. It does not publish the change by itself.
	SetOutputState(output int, connected bool, mmWidth, mmHeight uint32) error

	// NotifyTopologyChanged makes the host recompute and publish the current
	// topology to clients. Must complete before the caller replies.
	NotifyTopologyChanged() error

	// ScreenInfo reports the immutable identifiers. Calling it before screen
	// initialization is a configuration error.
	ScreenInfo() (*ScreenInfo, error)
}
