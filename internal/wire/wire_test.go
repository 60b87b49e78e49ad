package wire

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"create keyboard", &CreateKeyboard{}},
		{"create keyboard reply", &CreateKeyboardReply{ID: 7}},
		{"create mouse", &CreateMouse{}},
		{"create mouse reply", &CreateMouseReply{ID: 2}},
		{"create touch", &CreateTouch{}},
		{"create touch reply", &CreateTouchReply{ID: 3}},
		{"key press", &KeyPress{Device: 1, Key: 30}},
		{"key release", &KeyRelease{Device: 1, Key: 30}},
		{"button press", &ButtonPress{Device: 2, Button: 3}},
		{"button release", &ButtonRelease{Device: 2, Button: 3}},
		{"mouse move", &MouseMove{Device: 2, DX: -3, DY: 7}},
		{"mouse scroll", &MouseScroll{Device: 2, DX: 0, DY: 5}},
		{"touch down", &TouchDown{Device: 3, X: 100, Y: 200}},
		{"touch down reply", &TouchDownReply{Contact: 1}},
		{"touch move", &TouchMove{Device: 3, Contact: 1, X: 150, Y: 250}},
		{"touch up", &TouchUp{Device: 3, Contact: 1}},
		{"remove device", &RemoveDevice{Device: 2}},
		{"enable second monitor", &EnableSecondMonitor{Enable: 1}},
		{"enable second monitor reply", &EnableSecondMonitorReply{}},
		{"get video info", &GetVideoInfo{}},
		{"get video info reply", &GetVideoInfoReply{
			SecondCRTC:   63,
			FirstOutput:  64,
			SecondOutput: 65,
			SmallMode:    71,
			LargeMode:    70,
		}},
		{"error", &Error{Code: CodeUnknownDevice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := WriteMessage(buf, tt.msg); err != nil {
				t.Fatalf("WriteMessage() failed: %v", err)
			}
			if want := 4 + tt.msg.payloadLen(); buf.Len() != want {
				t.Errorf("encoded length = %d, want %d", buf.Len(), want)
			}

			decoded, err := ReadMessage(buf)
			if err != nil {
				t.Fatalf("ReadMessage() failed: %v", err)
			}
			if !reflect.DeepEqual(tt.msg, decoded) {
				t.Errorf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", tt.msg, decoded)
			}
			if buf.Len() != 0 {
				t.Errorf("%d trailing bytes after decode", buf.Len())
			}
		})
	}
}

func TestReadMessageUnknownTag(t *testing.T) {
	buf := &bytes.Buffer{}
	var raw [4]byte
	host.PutUint32(raw[:], 99)
	buf.Write(raw[:])

	_, err := ReadMessage(buf)
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("ReadMessage() error = %v, want ErrUnknownTag", err)
	}
}

func TestReadMessageFraming(t *testing.T) {
	full := &bytes.Buffer{}
	if err := WriteMessage(full, &MouseMove{Device: 1, DX: 10, DY: -5}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		data    []byte
		wantEOF bool
	}{
		{
			name:    "empty stream",
			data:    nil,
			wantEOF: true,
		},
		{
			name: "truncated tag",
			data: []byte{0x01, 0x02},
		},
		{
			name: "truncated payload",
			data: full.Bytes()[:full.Len()-4],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMessage(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("ReadMessage() succeeded on malformed input")
			}
			if tt.wantEOF && !errors.Is(err, io.EOF) {
				t.Errorf("ReadMessage() error = %v, want io.EOF", err)
			}
		})
	}
}

func TestTagStrings(t *testing.T) {
	if got := TagTouchDown.String(); got != "TouchDown" {
		t.Errorf("TagTouchDown.String() = %q", got)
	}
	if got := Tag(1000).String(); got != "Tag(1000)" {
		t.Errorf("Tag(1000).String() = %q", got)
	}
}
