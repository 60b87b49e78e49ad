package wire

// Requests without payload.

type CreateKeyboard struct{}

func (*CreateKeyboard) Tag() Tag        { return TagCreateKeyboard }
func (*CreateKeyboard) payloadLen() int { return 0 }
func (*CreateKeyboard) encode([]byte)   {}
func (*CreateKeyboard) decode([]byte)   {}

type CreateMouse struct{}

func (*CreateMouse) Tag() Tag        { return TagCreateMouse }
func (*CreateMouse) payloadLen() int { return 0 }
func (*CreateMouse) encode([]byte)   {}
func (*CreateMouse) decode([]byte)   {}

type CreateTouch struct{}

func (*CreateTouch) Tag() Tag        { return TagCreateTouch }
func (*CreateTouch) payloadLen() int { return 0 }
func (*CreateTouch) encode([]byte)   {}
func (*CreateTouch) decode([]byte)   {}

type GetVideoInfo struct{}

func (*GetVideoInfo) Tag() Tag        { return TagGetVideoInfo }
func (*GetVideoInfo) payloadLen() int { return 0 }
func (*GetVideoInfo) encode([]byte)   {}
func (*GetVideoInfo) decode([]byte)   {}

// Device creation replies carry the host-assigned device id.

type CreateKeyboardReply struct {
	ID uint32
}

func (*CreateKeyboardReply) Tag() Tag        { return TagCreateKeyboardReply }
func (*CreateKeyboardReply) payloadLen() int { return 4 }
func (m *CreateKeyboardReply) encode(b []byte) {
	host.PutUint32(b, m.ID)
}
func (m *CreateKeyboardReply) decode(b []byte) {
	m.ID = host.Uint32(b)
}

type CreateMouseReply struct {
	ID uint32
}

func (*CreateMouseReply) Tag() Tag        { return TagCreateMouseReply }
func (*CreateMouseReply) payloadLen() int { return 4 }
func (m *CreateMouseReply) encode(b []byte) {
	host.PutUint32(b, m.ID)
}
func (m *CreateMouseReply) decode(b []byte) {
	m.ID = host.Uint32(b)
}

type CreateTouchReply struct {
	ID uint32
}

func (*CreateTouchReply) Tag() Tag        { return TagCreateTouchReply }
func (*CreateTouchReply) payloadLen() int { return 4 }
func (m *CreateTouchReply) encode(b []byte) {
	host.PutUint32(b, m.ID)
}
func (m *CreateTouchReply) decode(b []byte) {
	m.ID = host.Uint32(b)
}

// Keyboard and button events. Only the low byte of Key/Button is meaningful.

type KeyPress struct {
	Device uint32
	Key    uint32
}

func (*KeyPress) Tag() Tag        { return TagKeyPress }
func (*KeyPress) payloadLen() int { return 8 }
func (m *KeyPress) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Key)
}
func (m *KeyPress) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Key = host.Uint32(b[4:])
}

type KeyRelease struct {
	Device uint32
	Key    uint32
}

func (*KeyRelease) Tag() Tag        { return TagKeyRelease }
func (*KeyRelease) payloadLen() int { return 8 }
func (m *KeyRelease) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Key)
}
func (m *KeyRelease) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Key = host.Uint32(b[4:])
}

type ButtonPress struct {
	Device uint32
	Button uint32
}

func (*ButtonPress) Tag() Tag        { return TagButtonPress }
func (*ButtonPress) payloadLen() int { return 8 }
func (m *ButtonPress) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Button)
}
func (m *ButtonPress) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Button = host.Uint32(b[4:])
}

type ButtonRelease struct {
	Device uint32
	Button uint32
}

func (*ButtonRelease) Tag() Tag        { return TagButtonRelease }
func (*ButtonRelease) payloadLen() int { return 8 }
func (m *ButtonRelease) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Button)
}
func (m *ButtonRelease) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Button = host.Uint32(b[4:])
}

// Pointer motion and scroll, relative deltas.

type MouseMove struct {
	Device uint32
	DX, DY int32
}

func (*MouseMove) Tag() Tag        { return TagMouseMove }
func (*MouseMove) payloadLen() int { return 12 }
func (m *MouseMove) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], uint32(m.DX))
	host.PutUint32(b[8:], uint32(m.DY))
}
func (m *MouseMove) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.DX = int32(host.Uint32(b[4:]))
	m.DY = int32(host.Uint32(b[8:]))
}

type MouseScroll struct {
	Device uint32
	DX, DY int32
}

func (*MouseScroll) Tag() Tag        { return TagMouseScroll }
func (*MouseScroll) payloadLen() int { return 12 }
func (m *MouseScroll) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], uint32(m.DX))
	host.PutUint32(b[8:], uint32(m.DY))
}
func (m *MouseScroll) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.DX = int32(host.Uint32(b[4:]))
	m.DY = int32(host.Uint32(b[8:]))
}

// Touch contact lifecycle. X/Y are absolute positions on the touch surface.

type TouchDown struct {
	Device uint32
	X, Y   int32
}

func (*TouchDown) Tag() Tag        { return TagTouchDown }
func (*TouchDown) payloadLen() int { return 12 }
func (m *TouchDown) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], uint32(m.X))
	host.PutUint32(b[8:], uint32(m.Y))
}
func (m *TouchDown) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.X = int32(host.Uint32(b[4:]))
	m.Y = int32(host.Uint32(b[8:]))
}

type TouchDownReply struct {
	Contact uint32
}

func (*TouchDownReply) Tag() Tag        { return TagTouchDownReply }
func (*TouchDownReply) payloadLen() int { return 4 }
func (m *TouchDownReply) encode(b []byte) {
	host.PutUint32(b, m.Contact)
}
func (m *TouchDownReply) decode(b []byte) {
	m.Contact = host.Uint32(b)
}

type TouchMove struct {
	Device  uint32
	Contact uint32
	X, Y    int32
}

func (*TouchMove) Tag() Tag        { return TagTouchMove }
func (*TouchMove) payloadLen() int { return 16 }
func (m *TouchMove) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Contact)
	host.PutUint32(b[8:], uint32(m.X))
	host.PutUint32(b[12:], uint32(m.Y))
}
func (m *TouchMove) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Contact = host.Uint32(b[4:])
	m.X = int32(host.Uint32(b[8:]))
	m.Y = int32(host.Uint32(b[12:]))
}

type TouchUp struct {
	Device  uint32
	Contact uint32
}

func (*TouchUp) Tag() Tag        { return TagTouchUp }
func (*TouchUp) payloadLen() int { return 8 }
func (m *TouchUp) encode(b []byte) {
	host.PutUint32(b, m.Device)
	host.PutUint32(b[4:], m.Contact)
}
func (m *TouchUp) decode(b []byte) {
	m.Device = host.Uint32(b)
	m.Contact = host.Uint32(b[4:])
}

type RemoveDevice struct {
	Device uint32
}

func (*RemoveDevice) Tag() Tag        { return TagRemoveDevice }
func (*RemoveDevice) payloadLen() int { return 4 }
func (m *RemoveDevice) encode(b []byte) {
	host.PutUint32(b, m.Device)
}
func (m *RemoveDevice) decode(b []byte) {
	m.Device = host.Uint32(b)
}

// Display topology commands.

type EnableSecondMonitor struct {
	Enable uint32
}

func (*EnableSecondMonitor) Tag() Tag        { return TagEnableSecondMonitor }
func (*EnableSecondMonitor) payloadLen() int { return 4 }
func (m *EnableSecondMonitor) encode(b []byte) {
	host.PutUint32(b, m.Enable)
}
func (m *EnableSecondMonitor) decode(b []byte) {
	m.Enable = host.Uint32(b)
}

type EnableSecondMonitorReply struct{}

func (*EnableSecondMonitorReply) Tag() Tag        { return TagEnableSecondMonitorReply }
func (*EnableSecondMonitorReply) payloadLen() int { return 0 }
func (*EnableSecondMonitorReply) encode([]byte)   {}
func (*EnableSecondMonitorReply) decode([]byte)   {}

type GetVideoInfoReply struct {
	SecondCRTC   uint32
	FirstOutput  uint32
	SecondOutput uint32
	SmallMode    uint32
	LargeMode    uint32
}

func (*GetVideoInfoReply) Tag() Tag        { return TagGetVideoInfoReply }
func (*GetVideoInfoReply) payloadLen() int { return 20 }
func (m *GetVideoInfoReply) encode(b []byte) {
	host.PutUint32(b, m.SecondCRTC)
	host.PutUint32(b[4:], m.FirstOutput)
	host.PutUint32(b[8:], m.SecondOutput)
	host.PutUint32(b[12:], m.SmallMode)
	host.PutUint32(b[16:], m.LargeMode)
}
func (m *GetVideoInfoReply) decode(b []byte) {
	m.SecondCRTC = host.Uint32(b)
	m.FirstOutput = host.Uint32(b[4:])
	m.SecondOutput = host.Uint32(b[8:])
	m.SmallMode = host.Uint32(b[12:])
	m.LargeMode = host.Uint32(b[16:])
}

// Error is replied instead of the expected reply when a request named a
// device the broker cannot resolve.
type Error struct {
	Code ErrorCode
}

func (*Error) Tag() Tag        { return TagError }
func (*Error) payloadLen() int { return 4 }
func (m *Error) encode(b []byte) {
	host.PutUint32(b, uint32(m.Code))
}
func (m *Error) decode(b []byte) {
	m.Code = ErrorCode(host.Uint32(b))
}
