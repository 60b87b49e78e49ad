// Package client implements the driver side of the control protocol: the
// API a test harness uses to create virtual devices, synthesize events and
// reshape the virtual display.
package client

import (
	"errors"
	"fmt"
	"net"

	"github.com/okatz/seatsim/internal/wire"
)

var (
	// ErrUnknownDevice mirrors the broker's rejection of a stale or bogus id.
	ErrUnknownDevice = errors.New("broker: unknown device id")

	// ErrWrongDeviceKind mirrors a kind mismatch rejection.
	ErrWrongDeviceKind = errors.New("broker: wrong device kind")
)

// Client drives one broker session. Commands are strictly sequential, so
// the client is not safe for concurrent use.
type Client struct {
	conn net.Conn
}

// Dial connects to a broker listening on a unix socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	return New(conn), nil
}

// New wraps an already open broker connection.
func New(conn net.Conn) *Client {
	return &Client{conn: conn}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// CreateKeyboard creates a virtual keyboard and returns its device id.
func (c *Client) CreateKeyboard() (uint32, error) {
	reply, err := c.roundTrip(&wire.CreateKeyboard{})
	if err != nil {
		return 0, err
	}
	r, ok := reply.(*wire.CreateKeyboardReply)
	if !ok {
		return 0, unexpectedReply(reply)
	}
	return r.ID, nil
}

// CreateMouse creates a virtual mouse and returns its device id.
func (c *Client) CreateMouse() (uint32, error) {
	reply, err := c.roundTrip(&wire.CreateMouse{})
	if err != nil {
		return 0, err
	}
	r, ok := reply.(*wire.CreateMouseReply)
	if !ok {
		return 0, unexpectedReply(reply)
	}
	return r.ID, nil
}

// CreateTouch creates a virtual touchscreen and returns its device id.
func (c *Client) CreateTouch() (uint32, error) {
	reply, err := c.roundTrip(&wire.CreateTouch{})
	if err != nil {
		return 0, err
	}
	r, ok := reply.(*wire.CreateTouchReply)
	if !ok {
		return 0, unexpectedReply(reply)
	}
	return r.ID, nil
}

// KeyPress presses a zero-based logical key code.
func (c *Client) KeyPress(id, key uint32) error {
	return wire.WriteMessage(c.conn, &wire.KeyPress{Device: id, Key: key})
}

// KeyRelease releases a key.
func (c *Client) KeyRelease(id, key uint32) error {
	return wire.WriteMessage(c.conn, &wire.KeyRelease{Device: id, Key: key})
}

// ButtonPress presses a pointer button.
func (c *Client) ButtonPress(id, button uint32) error {
	return wire.WriteMessage(c.conn, &wire.ButtonPress{Device: id, Button: button})
}

// ButtonRelease releases a pointer button.
func (c *Client) ButtonRelease(id, button uint32) error {
	return wire.WriteMessage(c.conn, &wire.ButtonRelease{Device: id, Button: button})
}

// MouseMove moves the pointer by exact, unaccelerated pixel deltas.
func (c *Client) MouseMove(id uint32, dx, dy int32) error {
	return wire.WriteMessage(c.conn, &wire.MouseMove{Device: id, DX: dx, DY: dy})
}

// MouseScroll scrolls by whole notches on either axis.
func (c *Client) MouseScroll(id uint32, dx, dy int32) error {
	return wire.WriteMessage(c.conn, &wire.MouseScroll{Device: id, DX: dx, DY: dy})
}

// TouchDown begins a contact and returns the broker-assigned contact id.
func (c *Client) TouchDown(id uint32, x, y int32) (uint32, error) {
	reply, err := c.roundTrip(&wire.TouchDown{Device: id, X: x, Y: y})
	if err != nil {
		return 0, err
	}
	r, ok := reply.(*wire.TouchDownReply)
	if !ok {
		return 0, unexpectedReply(reply)
	}
	return r.Contact, nil
}

// TouchMove updates a contact's position.
func (c *Client) TouchMove(id, contact uint32, x, y int32) error {
	return wire.WriteMessage(c.conn, &wire.TouchMove{Device: id, Contact: contact, X: x, Y: y})
}

// TouchUp ends a contact.
func (c *Client) TouchUp(id, contact uint32) error {
	return wire.WriteMessage(c.conn, &wire.TouchUp{Device: id, Contact: contact})
}

// RemoveDevice tears a device down. Fire-and-forget: any later command using
// the id fails with ErrUnknownDevice.
func (c *Client) RemoveDevice(id uint32) error {
	return wire.WriteMessage(c.conn, &wire.RemoveDevice{Device: id})
}

// EnableSecondMonitor toggles the second virtual output and waits for the
// broker's acknowledgement, so a following topology query is accurate.
func (c *Client) EnableSecondMonitor(enable bool) error {
	var v uint32
	if enable {
		v = 1
	}
	reply, err := c.roundTrip(&wire.EnableSecondMonitor{Enable: v})
	if err != nil {
		return err
	}
	if _, ok := reply.(*wire.EnableSecondMonitorReply); !ok {
		return unexpectedReply(reply)
	}
	return nil
}

// GetVideoInfo queries the immutable output, CRTC and mode identifiers.
func (c *Client) GetVideoInfo() (*wire.GetVideoInfoReply, error) {
	reply, err := c.roundTrip(&wire.GetVideoInfo{})
	if err != nil {
		return nil, err
	}
	r, ok := reply.(*wire.GetVideoInfoReply)
	if !ok {
		return nil, unexpectedReply(reply)
	}
	return r, nil
}

func (c *Client) roundTrip(req wire.Message) (wire.Message, error) {
	if err := wire.WriteMessage(c.conn, req); err != nil {
		return nil, err
	}
	reply, err := wire.ReadMessage(c.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s reply: %w", req.Tag(), err)
	}
	if e, ok := reply.(*wire.Error); ok {
		return nil, codeError(e.Code)
	}
	return reply, nil
}

func codeError(code wire.ErrorCode) error {
	switch code {
	case wire.CodeUnknownDevice:
		return ErrUnknownDevice
	case wire.CodeWrongDeviceKind:
		return ErrWrongDeviceKind
	default:
		return fmt.Errorf("broker: request rejected (%s)", code)
	}
}

func unexpectedReply(msg wire.Message) error {
	return fmt.Errorf("broker: unexpected %s reply", msg.Tag())
}
