// Package event defines the input and system notifications consumed by the frame loop.
// Events are produced by a backend, handled immediately and never stored.
package event

import "fmt"

// Kind tags the variant carried by an Event.
type Kind uint8

const (
	// KindOther covers every notification the loop does not react to
	// (mouse motion, focus changes, key releases, ...).
	KindOther Kind = iota
	// KindQuit is a request to close the application, e.g. the window close button.
	KindQuit
	// KindKeyDown reports a single key press.
	KindKeyDown
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindKeyDown:
		return "keydown"
	default:
		return "other"
	}
}

// Event is one entry of the backend's event queue.
// Key is only meaningful when Kind is KindKeyDown.
type Event struct {
	Kind Kind
	Key  Key
}

// Quit returns a quit-requested event.
func Quit() Event {
	return Event{Kind: KindQuit}
}

// KeyDown returns a key-pressed event for the given key.
func KeyDown(key Key) Event {
	return Event{Kind: KindKeyDown, Key: key}
}

// Other returns an event the loop ignores.
func Other() Event {
	return Event{Kind: KindOther}
}

// Stops reports whether the event moves a running loop into its terminal state.
func (e Event) Stops() bool {
	switch e.Kind {
	case KindQuit:
		return true
	case KindKeyDown:
		return e.Key == KeyEscape
	default:
		return false
	}
}

func (e Event) String() string {
	if e.Kind == KindKeyDown {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	}
	return e.Kind.String()
}
