// Package splash draws a text-art splash above the boot menu.
package splash

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type Text struct {
	lines []string
}

func New(text string) *Text {
	text = strings.TrimRight(ansi.Strip(strings.ToValidUTF8(text, "")), "\n")
	if text == "" {
		return &Text{}
	}
	return &Text{lines: strings.Split(text, "\n")}
}

func Load(path string) (*Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open splash: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		b.WriteString(strings.TrimRight(sc.Text(), "\r"))
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read splash: %w", err)
	}
	return New(b.String()), nil
}

func (t *Text) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Draw centers the splash horizontally in the top rows of the screen and
// vertically within those rows. Lines that do not fit are dropped from the
// bottom; columns that do not fit are clipped by the screen.
func (t *Text) Draw(screen tcell.Screen, rows int) {
	if len(t.lines) == 0 || rows <= 0 {
		return
	}
	w, _ := screen.Size()
	lines := t.lines
	if len(lines) > rows {
		lines = lines[:rows]
	}
	top := (rows - len(lines)) / 2
	for i, line := range lines {
		x := max(0, (w-runewidth.StringWidth(line))/2)
		for _, ch := range line {
			cw := runewidth.RuneWidth(ch)
			if cw == 0 {
				continue
			}
			screen.SetContent(x, top+i, ch, nil, tcell.StyleDefault)
			x += cw
		}
	}
}

// Print writes the splash to a plain stream, used once the terminal session
// has been released.
func (t *Text) Print(w io.Writer) error {
	for _, line := range t.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
