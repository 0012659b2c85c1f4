package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/bootmenu/internal/menu"
)

// Painter is what the navigation state machine draws through.
type Painter interface {
	// DrawAll draws every entry unselected, highlights the initial entry
	// and returns its position.
	DrawAll() int
	DrawEntry(position int, selected bool)
	// Redraw rebuilds the frame after a resize, keeping position highlighted.
	Redraw(position int)
	Flush()
	// SplashRows is the number of screen rows above the menu window.
	SplashRows() int
}

// Renderer draws a menu model on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	model  *menu.Model
	width  int
	frame  frame
}

func NewRenderer(screen tcell.Screen, model *menu.Model, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	r := &Renderer{screen: screen, model: model, width: width}
	r.layout()
	return r
}

func (r *Renderer) layout() {
	w, h := r.screen.Size()
	r.frame = computeFrame(w, h, r.model.Count(), r.width)
	r.screen.Clear()
	drawFrame(r.screen, r.frame)
}

func (r *Renderer) DrawEntry(position int, selected bool) {
	entry, ok := r.model.EntryAt(position)
	if !ok {
		return
	}
	y := r.frame.list.y + position - 1
	style := tcell.StyleDefault
	if entry.Separator {
		writeText(r.screen, r.frame.list.x, y, padRight("", r.frame.list.w), style)
	} else {
		if selected {
			style = style.Reverse(true)
		}
		writeText(r.screen, r.frame.list.x, y, r.row(entry.Label), style)
	}
	if selected {
		writeText(r.screen, r.frame.help.x, r.frame.help.y, r.row(entry.Description), tcell.StyleDefault)
	}
}

func (r *Renderer) row(text string) string {
	return " " + fitText(text, r.width) + " "
}

func (r *Renderer) DrawAll() int {
	for pos := 1; pos <= r.model.Count(); pos++ {
		r.DrawEntry(pos, false)
	}
	first := r.model.FirstSelectable()
	if first == 0 {
		first = 1
	}
	r.DrawEntry(first, true)
	return first
}

func (r *Renderer) Redraw(position int) {
	r.screen.Sync()
	r.layout()
	for pos := 1; pos <= r.model.Count(); pos++ {
		r.DrawEntry(pos, pos == position)
	}
}

func (r *Renderer) Flush() {
	r.screen.Show()
}

func (r *Renderer) SplashRows() int {
	return r.frame.window.y
}
