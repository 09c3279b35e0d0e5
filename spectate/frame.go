// Package spectate streams read-only engine snapshots to websocket viewers
package spectate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/reef-arcade/puzzle"
	"github.com/lixenwraith/reef-arcade/survival"
)

// Wire formats selected with ?format=
const (
	FormatMsgpack = "msgpack"
	FormatJSON    = "json"
)

var ErrUnknownFormat = errors.New("spectate: unknown format")

// Frame is one published snapshot; exactly one of Survival or Puzzle is set
type Frame struct {
	Session  string           `msgpack:"session" json:"session"`
	Mode     string           `msgpack:"mode" json:"mode"`
	Tick     uint64           `msgpack:"tick" json:"tick"`
	Survival *survival.State  `msgpack:"survival,omitempty" json:"survival,omitempty"`
	Puzzle   *puzzle.Snapshot `msgpack:"puzzle,omitempty" json:"puzzle,omitempty"`
}

// Encode serializes f for format and reports the websocket message type it needs
func Encode(format string, f *Frame) ([]byte, websocket.MessageType, error) {
	switch format {
	case FormatMsgpack:
		data, err := msgpack.Marshal(f)
		if err != nil {
			return nil, 0, fmt.Errorf("spectate: msgpack encode: %w", err)
		}
		return data, websocket.MessageBinary, nil
	case FormatJSON:
		data, err := json.Marshal(f)
		if err != nil {
			return nil, 0, fmt.Errorf("spectate: json encode: %w", err)
		}
		return data, websocket.MessageText, nil
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ValidFormat reports whether format names a supported encoding
func ValidFormat(format string) bool {
	return format == FormatMsgpack || format == FormatJSON
}
