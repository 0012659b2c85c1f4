package tui

import "github.com/gdamore/tcell/v2"

// DefaultWidth is the label column width used when none is configured.
const DefaultWidth = 30

type rect struct {
	y int
	x int
	h int
	w int
}

// frame is the composite menu window: a bordered box holding the listing
// viewport, a divider row, and the single help line.
//
//	+------------------------------------+
//	| label                              |  list (rows = entry count)
//	| ...                                |
//	+------------------------------------+  divider
//	| description of highlighted entry   |  help
//	+------------------------------------+
type frame struct {
	window  rect
	list    rect
	help    rect
	divider int
}

func computeFrame(screenW, screenH, rows, width int) frame {
	if width <= 0 {
		width = DefaultWidth
	}
	rows = max(rows, 0)
	win := rect{h: rows + 4, w: width + 4}
	win.y = max(0, (screenH-win.h)/2)
	win.x = max(0, (screenW-win.w)/2)

	return frame{
		window:  win,
		list:    rect{y: win.y + 1, x: win.x + 1, h: rows, w: width + 2},
		divider: win.y + rows + 1,
		help:    rect{y: win.y + rows + 2, x: win.x + 1, h: 1, w: width + 2},
	}
}

func drawFrame(screen tcell.Screen, f frame) {
	r := f.window
	if r.w <= 0 || r.h <= 0 {
		return
	}
	style := tcell.StyleDefault
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		screen.SetContent(x, r.y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, r.y+r.h-1, tcell.RuneHLine, nil, style)
		screen.SetContent(x, f.divider, tcell.RuneHLine, nil, style)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		screen.SetContent(r.x, y, tcell.RuneVLine, nil, style)
		screen.SetContent(r.x+r.w-1, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, style)
	screen.SetContent(r.x+r.w-1, r.y, tcell.RuneURCorner, nil, style)
	screen.SetContent(r.x, r.y+r.h-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(r.x+r.w-1, r.y+r.h-1, tcell.RuneLRCorner, nil, style)
	screen.SetContent(r.x, f.divider, tcell.RuneLTee, nil, style)
	screen.SetContent(r.x+r.w-1, f.divider, tcell.RuneRTee, nil, style)
}
