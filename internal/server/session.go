// Package server drives the control protocol: it reads one command at a
// time from the driver connection, applies it to the device registry and
// the display topology, and writes back the reply when the command has one.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/okatz/seatsim/internal/display"
	"github.com/okatz/seatsim/internal/hostapi"
	"github.com/okatz/seatsim/internal/input"
	"github.com/okatz/seatsim/internal/logger"
	"github.com/okatz/seatsim/internal/wire"
)

// Session is one driver connection with its own device registry and
// topology state. Everything runs on the goroutine calling Run: the protocol
// is strictly request/response with no overlapping in-flight commands.
type Session struct {
	conn     net.Conn
	devices  *input.Registry
	topology *display.Topology
}

// NewSession binds a fresh session to an open driver connection.
func NewSession(conn net.Conn, inputHost hostapi.InputHost, videoHost hostapi.VideoHost) *Session {
	return &Session{
		conn:     conn,
		devices:  input.NewRegistry(inputHost),
		topology: display.New(videoHost),
	}
}

// Run processes messages until the driver disconnects, the context is
// canceled, or the session hits an unrecoverable error. A clean disconnect
// returns nil.
func (s *Session) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.conn.Close()
	})
	defer stop()

	defer func() {
		if err := s.devices.Clear(); err != nil {
			logger.Warnf("device cleanup failed: %v", err)
		}
	}()

	for {
		msg, err := wire.ReadMessage(s.conn)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("driver disconnected")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("session failed: %w", err)
		}
		if err := s.dispatch(msg); err != nil {
			return fmt.Errorf("session failed: %w", err)
		}
	}
}

// dispatch applies one command. A non-nil return is unrecoverable and ends
// the session; recoverable device-resolution failures are replied or logged
// instead, never silently dropped.
func (s *Session) dispatch(msg wire.Message) error {
	logger.Debug("dispatching command", "tag", msg.Tag())

	switch m := msg.(type) {
	case *wire.CreateKeyboard:
		id, err := s.devices.Create(input.Keyboard)
		if err != nil {
			return err
		}
		return s.reply(&wire.CreateKeyboardReply{ID: id})

	case *wire.CreateMouse:
		id, err := s.devices.Create(input.Mouse)
		if err != nil {
			return err
		}
		return s.reply(&wire.CreateMouseReply{ID: id})

	case *wire.CreateTouch:
		id, err := s.devices.Create(input.Touch)
		if err != nil {
			return err
		}
		return s.reply(&wire.CreateTouchReply{ID: id})

	case *wire.KeyPress:
		return s.oneway(msg.Tag(), s.devices.KeyPress(m.Device, m.Key))

	case *wire.KeyRelease:
		return s.oneway(msg.Tag(), s.devices.KeyRelease(m.Device, m.Key))

	case *wire.ButtonPress:
		return s.oneway(msg.Tag(), s.devices.ButtonPress(m.Device, m.Button))

	case *wire.ButtonRelease:
		return s.oneway(msg.Tag(), s.devices.ButtonRelease(m.Device, m.Button))

	case *wire.MouseMove:
		return s.oneway(msg.Tag(), s.devices.MouseMove(m.Device, m.DX, m.DY))

	case *wire.MouseScroll:
		return s.oneway(msg.Tag(), s.devices.MouseScroll(m.Device, m.DX, m.DY))

	case *wire.TouchDown:
		contact, err := s.devices.TouchDown(m.Device, m.X, m.Y)
		if code, ok := errorCode(err); ok {
			return s.reply(&wire.Error{Code: code})
		}
		if err != nil {
			return err
		}
		return s.reply(&wire.TouchDownReply{Contact: contact})

	case *wire.TouchMove:
		return s.oneway(msg.Tag(), s.devices.TouchMove(m.Device, m.Contact, m.X, m.Y))

	case *wire.TouchUp:
		return s.oneway(msg.Tag(), s.devices.TouchUp(m.Device, m.Contact))

	case *wire.RemoveDevice:
		return s.oneway(msg.Tag(), s.devices.Remove(m.Device))

	case *wire.EnableSecondMonitor:
		if err := s.topology.SetSecondConnected(m.Enable != 0); err != nil {
			return err
		}
		return s.reply(&wire.EnableSecondMonitorReply{})

	case *wire.GetVideoInfo:
		info, err := s.topology.Describe()
		if err != nil {
			return err
		}
		return s.reply(&wire.GetVideoInfoReply{
			SecondCRTC:   info.SecondCRTC,
			FirstOutput:  info.FirstOutput,
			SecondOutput: info.SecondOutput,
			SmallMode:    info.SmallMode,
			LargeMode:    info.LargeMode,
		})

	default:
		// Reply tags arriving as requests are a protocol violation.
		return fmt.Errorf("unexpected %s message from driver", msg.Tag())
	}
}

func (s *Session) reply(msg wire.Message) error {
	return wire.WriteMessage(s.conn, msg)
}

// oneway finishes a command that has no reply. Device-resolution failures
// are recoverable: the driver may legitimately race a removal, so they are
// logged and the session keeps going.
func (s *Session) oneway(tag wire.Tag, err error) error {
	if err == nil {
		return nil
	}
	if code, ok := errorCode(err); ok {
		logger.Warn("command dropped", "tag", tag, "reason", code, "err", err)
		return nil
	}
	return err
}

func errorCode(err error) (wire.ErrorCode, bool) {
	switch {
	case errors.Is(err, input.ErrUnknownDevice):
		return wire.CodeUnknownDevice, true
	case errors.Is(err, input.ErrWrongDeviceKind):
		return wire.CodeWrongDeviceKind, true
	default:
		return 0, false
	}
}
