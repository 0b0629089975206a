package ui

import "github.com/gdamore/tcell/v2"

// ActionKind is what the player asked for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStream
	ActionBuy
	ActionQuit
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionStream:
		return "stream"
	case ActionBuy:
		return "buy"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is one player request. Slot is the shop row for ActionBuy.
type Action struct {
	Kind ActionKind
	Slot int
}

// KeyAction maps a key press to an action. Digits 1..slots buy the matching
// shop row.
func KeyAction(ev *tcell.EventKey, slots int) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyEnter:
		return Action{Kind: ActionStream}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			return Action{Kind: ActionStream}
		case r == 'q' || r == 'Q':
			return Action{Kind: ActionQuit}
		case r >= '1' && r <= '9':
			slot := int(r - '1')
			if slot < slots {
				return Action{Kind: ActionBuy, Slot: slot}
			}
		}
	}
	return Action{}
}

// MouseTracker turns raw mouse events into taps. tcell reports the button
// state on every motion, so a tap is the moment the primary button goes down.
type MouseTracker struct {
	down bool
}

// Tap returns the tap position if ev is a primary button press.
func (m *MouseTracker) Tap(ev *tcell.EventMouse) (x, y int, ok bool) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.down
	m.down = pressed
	if !pressed || wasDown {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}
