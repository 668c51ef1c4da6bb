package zplane

import (
	"fmt"
	"image"
)

// EventKind identifies the type of an input Event.
type EventKind uint8

const (
	EventPointerDown EventKind = iota + 1
	EventPointerMove
	EventPointerUp
	EventKeyDown
	EventKeyUp
	EventResize
)

var eventKindNames = map[EventKind]string{
	EventPointerDown: "down",
	EventPointerMove: "move",
	EventPointerUp:   "up",
	EventKeyDown:     "key",
	EventKeyUp:       "keyup",
	EventResize:      "resize",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key is a command key understood by the Session.
type Key uint8

const (
	KeyNone Key = iota
	// KeyClear empties trails and rings (C or Escape).
	KeyClear
	// KeyToggleDerivative switches derivative mode (P).
	KeyToggleDerivative
	// KeyMoveUp, KeyMoveDown, KeyMoveLeft and KeyMoveRight drive the virtual
	// pointer in tracking mode (W, S, A, D).
	KeyMoveUp
	KeyMoveDown
	KeyMoveLeft
	KeyMoveRight
)

var keyNames = [...]string{
	KeyNone:             "none",
	KeyClear:            "clear",
	KeyToggleDerivative: "derivative",
	KeyMoveUp:           "up",
	KeyMoveDown:         "down",
	KeyMoveLeft:         "left",
	KeyMoveRight:        "right",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// ParseKey returns the Key with the given script name.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyNone {
			return Key(k), true
		}
	}
	return KeyNone, false
}

// Event is one input action delivered to a Session.
type Event struct {
	Kind   EventKind
	Pos    image.Point // pointer position; canvas size for EventResize
	Button Button
	Key    Key
}

// PointerDownEvent returns a press of button at (x, y).
func PointerDownEvent(x, y int, b Button) Event {
	return Event{Kind: EventPointerDown, Pos: image.Pt(x, y), Button: b}
}

// PointerMoveEvent returns a pointer motion to (x, y).
func PointerMoveEvent(x, y int) Event {
	return Event{Kind: EventPointerMove, Pos: image.Pt(x, y)}
}

// PointerUpEvent returns a release of button at (x, y).
func PointerUpEvent(x, y int, b Button) Event {
	return Event{Kind: EventPointerUp, Pos: image.Pt(x, y), Button: b}
}

// KeyDownEvent returns a key press.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key release.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// ResizeEvent returns a canvas resize to width x height.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Pos: image.Pt(width, height)}
}
