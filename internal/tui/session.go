package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/bootmenu/internal/menu"
)

var newScreen = tcell.NewScreen

// Splash is drawn in the rows above the menu window before input begins.
type Splash interface {
	Draw(screen tcell.Screen, rows int)
}

type Options struct {
	Width          int
	AbortKey       bool
	Splash         Splash
	OnUnhandledKey func(KeyEvent)
}

// Show acquires a terminal session, runs the menu until a selection or an
// abort, and releases the terminal on every path out.
func Show(model *menu.Model, opts Options) (Outcome, error) {
	if model.Count() == 0 {
		return Outcome{}, errors.New("show: menu is empty")
	}

	screen, err := newScreen()
	if err != nil {
		return Outcome{}, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return Outcome{}, fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	renderer := NewRenderer(screen, model, opts.Width)
	navOpts := NavigatorOptions{
		AbortKey:       opts.AbortKey,
		OnUnhandledKey: opts.OnUnhandledKey,
	}
	if opts.Splash != nil {
		navOpts.BeforeFirstRead = func() {
			opts.Splash.Draw(screen, renderer.SplashRows())
		}
	}
	nav := NewNavigator(model, renderer, NewScreenSource(screen), navOpts)
	return nav.Run()
}

type screenSource struct {
	screen tcell.Screen
	w, h   int
}

// NewScreenSource reads key events from a tcell screen. Resize events that
// do not change the size (tcell posts one on Init) are dropped.
func NewScreenSource(screen tcell.Screen) EventSource {
	w, h := screen.Size()
	return &screenSource{screen: screen, w: w, h: h}
}

func (s *screenSource) ReadKey() (KeyEvent, error) {
	for {
		ev := s.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return KeyEvent{}, ErrInputClosed
		case *tcell.EventResize:
			w, h := tev.Size()
			if w == s.w && h == s.h {
				continue
			}
			s.w, s.h = w, h
			return KeyEvent{Key: KeyRedraw, Name: "resize"}, nil
		case *tcell.EventKey:
			return translateKey(tev), nil
		}
	}
}

func translateKey(ev *tcell.EventKey) KeyEvent {
	out := KeyEvent{Key: KeyOther, Name: ev.Name()}
	switch ev.Key() {
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		out.Key = KeyEnter
	case tcell.KeyCtrlC:
		out.Key = KeyAbort
	}
	return out
}
