// Package wire implements the fixed-layout control protocol spoken by the
// external test driver. Every message starts with a 4-byte tag; the payload
// size is implied by the tag alone, there is no length prefix. All fields are
// encoded in host byte order, matching what the driver process writes from
// the same machine.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Tag identifies a control message. The numbering is part of the wire
// contract and must not be reordered.
type Tag uint32

const (
	TagNone Tag = iota
	TagCreateKeyboard
	TagCreateKeyboardReply
	TagKeyPress
	TagKeyRelease
	TagRemoveDevice
	TagEnableSecondMonitor
	TagEnableSecondMonitorReply
	TagGetVideoInfo
	TagGetVideoInfoReply
	TagCreateMouse
	TagCreateMouseReply
	TagButtonPress
	TagButtonRelease
	TagMouseMove
	TagMouseScroll
	TagCreateTouch
	TagCreateTouchReply
	TagTouchDown
	TagTouchDownReply
	TagTouchUp
	TagTouchMove
	TagError
)

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint32(t))
}

var tagNames = [...]string{
	"None",
	"CreateKeyboard",
	"CreateKeyboardReply",
	"KeyPress",
	"KeyRelease",
	"RemoveDevice",
	"EnableSecondMonitor",
	"EnableSecondMonitorReply",
	"GetVideoInfo",
	"GetVideoInfoReply",
	"CreateMouse",
	"CreateMouseReply",
	"ButtonPress",
	"ButtonRelease",
	"MouseMove",
	"MouseScroll",
	"CreateTouch",
	"CreateTouchReply",
	"TouchDown",
	"TouchDownReply",
	"TouchUp",
	"TouchMove",
	"Error",
}

// ErrUnknownTag is returned when a message arrives with a tag outside the
// protocol. The session treats this as fatal; it is never silently skipped.
var ErrUnknownTag = errors.New("unknown message tag")

// ErrorCode travels in an Error reply when a command referenced a device the
// broker cannot resolve.
type ErrorCode uint32

const (
	CodeUnknownDevice ErrorCode = iota + 1
	CodeWrongDeviceKind
	CodeBadRequest
)

func (c ErrorCode) String() string {
	switch c {
	case CodeUnknownDevice:
		return "unknown device"
	case CodeWrongDeviceKind:
		return "wrong device kind"
	case CodeBadRequest:
		return "bad request"
	default:
		return fmt.Sprintf("ErrorCode(%d)", uint32(c))
	}
}

// Message is one control message, request or reply.
type Message interface {
	Tag() Tag

	// payloadLen is the exact byte count following the tag.
	payloadLen() int
	encode(b []byte)
	decode(b []byte)
}

// Host byte order: the driver writes raw structs from the same machine.
var host = binary.NativeEndian

// ReadMessage reads exactly one tag-framed message. io.EOF is returned
// untouched when the peer closed the connection between messages.
func ReadMessage(r io.Reader) (Message, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read message tag: %w", err)
	}
	tag := Tag(host.Uint32(head[:]))

	msg := newMessage(tag)
	if msg == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint32(tag))
	}

	if n := msg.payloadLen(); n > 0 {
		payload := make([]byte, n)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("failed to read %s payload: %w", tag, err)
		}
		msg.decode(payload)
	}
	return msg, nil
}

// WriteMessage writes one message as a single tag-framed unit.
func WriteMessage(w io.Writer, msg Message) error {
	buf := make([]byte, 4+msg.payloadLen())
	host.PutUint32(buf, uint32(msg.Tag()))
	msg.encode(buf[4:])
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s message: %w", msg.Tag(), err)
	}
	return nil
}

func newMessage(tag Tag) Message {
	switch tag {
	case TagCreateKeyboard:
		return &CreateKeyboard{}
	case TagCreateKeyboardReply:
		return &CreateKeyboardReply{}
	case TagKeyPress:
		return &KeyPress{}
	case TagKeyRelease:
		return &KeyRelease{}
	case TagRemoveDevice:
		return &RemoveDevice{}
	case TagEnableSecondMonitor:
		return &EnableSecondMonitor{}
	case TagEnableSecondMonitorReply:
		return &EnableSecondMonitorReply{}
	case TagGetVideoInfo:
		return &GetVideoInfo{}
	case TagGetVideoInfoReply:
		return &GetVideoInfoReply{}
	case TagCreateMouse:
		return &CreateMouse{}
	case TagCreateMouseReply:
		return &CreateMouseReply{}
	case TagButtonPress:
		return &ButtonPress{}
	case TagButtonRelease:
		return &ButtonRelease{}
	case TagMouseMove:
		return &MouseMove{}
	case TagMouseScroll:
		return &MouseScroll{}
	case TagCreateTouch:
		return &CreateTouch{}
	case TagCreateTouchReply:
		return &CreateTouchReply{}
	case TagTouchDown:
		return &TouchDown{}
	case TagTouchDownReply:
		return &TouchDownReply{}
	case TagTouchUp:
		return &TouchUp{}
	case TagTouchMove:
		return &TouchMove{}
	case TagError:
		return &Error{}
	default:
		return nil
	}
}
