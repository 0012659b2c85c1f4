package tui

import (
	"errors"
	"fmt"

	"github.com/baaaaaaaka/bootmenu/internal/menu"
)

// ErrInputClosed is returned by an EventSource that has no more key events.
var ErrInputClosed = errors.New("input closed")

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyAbort
	// KeyRedraw is a resize notification rather than a keypress.
	KeyRedraw
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyAbort:
		return "abort"
	case KeyRedraw:
		return "redraw"
	default:
		return "other"
	}
}

type KeyEvent struct {
	Key  Key
	Name string
}

// EventSource delivers key events one blocking read at a time.
type EventSource interface {
	ReadKey() (KeyEvent, error)
}

// ScriptedSource replays a fixed list of key events, then reports
// ErrInputClosed.
type ScriptedSource struct {
	events []KeyEvent
	next   int
}

func NewScriptedSource(keys ...Key) *ScriptedSource {
	s := &ScriptedSource{}
	for _, k := range keys {
		s.events = append(s.events, KeyEvent{Key: k, Name: k.String()})
	}
	return s
}

func (s *ScriptedSource) Push(ev KeyEvent) {
	s.events = append(s.events, ev)
}

func (s *ScriptedSource) ReadKey() (KeyEvent, error) {
	if s.next >= len(s.events) {
		return KeyEvent{}, ErrInputClosed
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// Outcome is how a navigation run ended.
type Outcome struct {
	Run      bool
	Position int
	Command  string
}

type navState int

const (
	stateDisplaying navState = iota
	stateAwaitingKey
	stateExiting
)

type NavigatorOptions struct {
	// AbortKey lets KeyAbort leave the menu without running anything.
	// When false the abort key is treated like any other key.
	AbortKey bool
	// BeforeFirstRead runs once, after the initial frame is flushed and
	// before the first key is read.
	BeforeFirstRead func()
	OnUnhandledKey  func(KeyEvent)
}

// Navigator is the input-driven selection state machine.
type Navigator struct {
	model   *menu.Model
	painter Painter
	source  EventSource
	opts    NavigatorOptions

	state   navState
	current int
	outcome Outcome
}

func NewNavigator(model *menu.Model, painter Painter, source EventSource, opts NavigatorOptions) *Navigator {
	return &Navigator{
		model:   model,
		painter: painter,
		source:  source,
		opts:    opts,
		state:   stateDisplaying,
	}
}

func (n *Navigator) Current() int { return n.current }

// Run drives the state machine until a selection or abort. A read error
// ends the run without a selection.
func (n *Navigator) Run() (Outcome, error) {
	if !n.model.HasSelectable() {
		return Outcome{}, fmt.Errorf("navigate: no selectable entries")
	}
	firstRead := true
	for {
		switch n.state {
		case stateDisplaying:
			n.current = n.painter.DrawAll()
			n.painter.Flush()
			n.state = stateAwaitingKey
		case stateAwaitingKey:
			if firstRead {
				firstRead = false
				if n.opts.BeforeFirstRead != nil {
					n.opts.BeforeFirstRead()
					n.painter.Flush()
				}
			}
			ev, err := n.source.ReadKey()
			if err != nil {
				n.state = stateExiting
				return Outcome{Position: n.current}, fmt.Errorf("read key: %w", err)
			}
			n.Handle(ev)
			n.painter.Flush()
		case stateExiting:
			return n.outcome, nil
		}
	}
}

// Handle applies one key event. It reports whether the machine has reached
// its exiting state.
func (n *Navigator) Handle(ev KeyEvent) bool {
	if n.state == stateExiting {
		return true
	}
	switch ev.Key {
	case KeyUp:
		n.move(-1)
	case KeyDown:
		n.move(1)
	case KeyEnter:
		entry, ok := n.model.EntryAt(n.current)
		if !ok || entry.Separator {
			break
		}
		n.outcome = Outcome{Run: true, Position: entry.Position, Command: entry.Command}
		n.state = stateExiting
	case KeyAbort:
		if !n.opts.AbortKey {
			n.unhandled(ev)
			break
		}
		n.outcome = Outcome{Position: n.current}
		n.state = stateExiting
	case KeyRedraw:
		n.painter.Redraw(n.current)
	default:
		n.unhandled(ev)
	}
	return n.state == stateExiting
}

func (n *Navigator) move(delta int) {
	next, ok := n.model.Step(n.current, delta)
	if !ok {
		return
	}
	n.painter.DrawEntry(n.current, false)
	n.current = next
	n.painter.DrawEntry(n.current, true)
}

func (n *Navigator) unhandled(ev KeyEvent) {
	if n.opts.OnUnhandledKey != nil {
		n.opts.OnUnhandledKey(ev)
	}
}
