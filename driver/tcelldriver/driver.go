// Package tcelldriver is a concrete texelfw.Screen implementation
// backed by github.com/gdamore/tcell/v2. It is the only place in this
// module that touches an actual terminal; the windowing and
// dependency-object core never imports it.
package tcelldriver

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/texelfw/texelfw"
)

// Driver adapts a tcell.Screen to texelfw.Screen.
type Driver struct {
	screen tcell.Screen
}

// New initializes a tcell screen (locale, raw mode, alternate
// screen buffer, hidden cursor) and returns a ready-to-use Driver.
// Callers must call Close when done to restore the terminal.
func New() (*Driver, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("texelfw/tcelldriver: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("texelfw/tcelldriver: %w", err)
	}
	s.HideCursor()
	return &Driver{screen: s}, nil
}

// Close restores the terminal to its state before New.
func (d *Driver) Close() { d.screen.Fini() }

func (d *Driver) GetHeight() (int, error) {
	_, h := d.screen.Size()
	return h, nil
}

func (d *Driver) GetWidth() (int, error) {
	w, _ := d.screen.Size()
	return w, nil
}

func toTcellColor(c texelfw.Color) tcell.Color {
	return tcell.PaletteColor(int(c))
}

func toTcellStyle(t texelfw.Texel) tcell.Style {
	style := tcell.StyleDefault.Foreground(toTcellColor(t.Fg))
	if t.Bg != nil {
		style = style.Background(toTcellColor(*t.Bg))
	}
	attr := t.Attr
	style = style.
		Bold(attr&texelfw.AttrBold != 0).
		Underline(attr&texelfw.AttrUnderline != 0).
		Blink(attr&texelfw.AttrBlink != 0).
		Dim(attr&texelfw.AttrDim != 0).
		Reverse(attr&texelfw.AttrReverse != 0)
	return style
}

func (d *Driver) Out(y, x int, t texelfw.Texel) error {
	width, height := d.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return texelfw.ErrOutOfBounds
	}
	d.screen.SetContent(x, y, t.Ch, nil, toTcellStyle(t))
	return nil
}

func (d *Driver) Refresh(cursor *[2]int) error {
	if cursor == nil {
		d.screen.HideCursor()
	} else {
		d.screen.ShowCursor(cursor[1], cursor[0])
	}
	d.screen.Show()
	return nil
}

// keyTable translates the tcell keys that have a direct curses-style
// counterpart; anything else surfaces as a decoded rune, mirroring
// how scr.rs's curses binding only special-cases the keys with an ACS
// equivalent.
var keyTable = map[tcell.Key]texelfw.Key{
	tcell.KeyUp:        texelfw.KeyUp,
	tcell.KeyDown:      texelfw.KeyDown,
	tcell.KeyLeft:      texelfw.KeyLeft,
	tcell.KeyRight:     texelfw.KeyRight,
	tcell.KeyHome:      texelfw.KeyHome,
	tcell.KeyEnd:       texelfw.KeyEnd,
	tcell.KeyBackspace: texelfw.KeyBackspace,
	tcell.KeyBackspace2: texelfw.KeyBackspace,
	tcell.KeyDelete:    texelfw.KeyDC,
	tcell.KeyInsert:    texelfw.KeyIC,
	tcell.KeyPgUp:      texelfw.KeyPPage,
	tcell.KeyPgDn:      texelfw.KeyNPage,
	tcell.KeyEnter:     texelfw.KeyEnter,
	tcell.KeyBacktab:   texelfw.KeyBTab,
}

func (d *Driver) Getch() (texelfw.Key, rune, error) {
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			return texelfw.KeyResize, 0, nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyRune {
				return 0, ev.Rune(), nil
			}
			if k, ok := keyTable[ev.Key()]; ok {
				return k, 0, nil
			}
			if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF63 {
				return texelfw.F(int(ev.Key()-tcell.KeyF1) + 1), 0, nil
			}
			// No curses equivalent: surface as its control rune so
			// callers that only look at ch still see something.
			return 0, rune(ev.Key()), nil
		case nil:
			return 0, 0, fmt.Errorf("texelfw/tcelldriver: screen closed")
		}
	}
}
