package tcelldriver

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/texelfw/texelfw"
)

func TestToTcellColor(t *testing.T) {
	if got, want := toTcellColor(texelfw.ColorRed), tcell.PaletteColor(int(texelfw.ColorRed)); got != want {
		t.Errorf("toTcellColor(ColorRed) = %v, want %v", got, want)
	}
}

func TestToTcellStyleAttributes(t *testing.T) {
	black := texelfw.ColorBlack
	tex := texelfw.Texel{
		Ch:   'x',
		Attr: texelfw.AttrBold | texelfw.AttrUnderline,
		Fg:   texelfw.ColorWhite,
		Bg:   &black,
	}
	style := toTcellStyle(tex)
	fg, bg, attrs := style.Decompose()
	if fg != toTcellColor(texelfw.ColorWhite) {
		t.Errorf("foreground = %v, want %v", fg, toTcellColor(texelfw.ColorWhite))
	}
	if bg != toTcellColor(texelfw.ColorBlack) {
		t.Errorf("background = %v, want %v", bg, toTcellColor(texelfw.ColorBlack))
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected AttrBold to carry through")
	}
	if attrs&tcell.AttrUnderline == 0 {
		t.Error("expected AttrUnderline to carry through")
	}
	if attrs&tcell.AttrBlink != 0 {
		t.Error("did not expect AttrBlink to be set")
	}
}

func TestToTcellStyleNoBackground(t *testing.T) {
	tex := texelfw.Texel{Ch: 'x', Attr: texelfw.AttrNormal, Fg: texelfw.ColorGreen}
	style := toTcellStyle(tex)
	_, bg, _ := style.Decompose()
	if bg != tcell.ColorDefault {
		t.Errorf("background = %v, want tcell.ColorDefault when Texel.Bg is nil", bg)
	}
}

// newSimulationDriver builds a Driver over an in-memory SimulationScreen,
// so Getch/Out/GetHeight/GetWidth can be exercised without a real tty.
func newSimulationDriver(t *testing.T, width, height int) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	sim.SetSize(width, height)
	return &Driver{screen: sim}, sim
}

func TestDriverGetHeightWidth(t *testing.T) {
	d, _ := newSimulationDriver(t, 30, 10)
	w, err := d.GetWidth()
	if err != nil || w != 30 {
		t.Errorf("GetWidth = (%d, %v), want (30, nil)", w, err)
	}
	h, err := d.GetHeight()
	if err != nil || h != 10 {
		t.Errorf("GetHeight = (%d, %v), want (10, nil)", h, err)
	}
}

func TestDriverOutOfBounds(t *testing.T) {
	d, _ := newSimulationDriver(t, 5, 5)
	if err := d.Out(-1, 0, texelfw.Texel{Ch: 'x'}); err != texelfw.ErrOutOfBounds {
		t.Errorf("Out(-1, 0) = %v, want ErrOutOfBounds", err)
	}
	if err := d.Out(0, 5, texelfw.Texel{Ch: 'x'}); err != texelfw.ErrOutOfBounds {
		t.Errorf("Out(0, 5) = %v, want ErrOutOfBounds", err)
	}
	if err := d.Out(2, 2, texelfw.Texel{Ch: 'x'}); err != nil {
		t.Errorf("Out(2, 2) = %v, want nil", err)
	}
}

func TestDriverGetchResize(t *testing.T) {
	d, sim := newSimulationDriver(t, 10, 10)
	sim.SetSize(20, 20)
	key, _, err := d.Getch()
	if err != nil {
		t.Fatalf("Getch: %v", err)
	}
	if key != texelfw.KeyResize {
		t.Errorf("Getch key = %v, want KeyResize", key)
	}
}

// getchSkippingResize drains any resize events Init/SetSize themselves
// queue, returning the first real key/rune event.
func getchSkippingResize(t *testing.T, d *Driver) (texelfw.Key, rune) {
	t.Helper()
	for i := 0; i < 10; i++ {
		key, ch, err := d.Getch()
		if err != nil {
			t.Fatalf("Getch: %v", err)
		}
		if key == texelfw.KeyResize {
			continue
		}
		return key, ch
	}
	t.Fatal("Getch kept returning resize events")
	return 0, 0
}

func TestDriverGetchRune(t *testing.T) {
	d, sim := newSimulationDriver(t, 10, 10)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	key, ch := getchSkippingResize(t, d)
	if key != 0 || ch != 'q' {
		t.Errorf("Getch = (%v, %q), want (0, 'q')", key, ch)
	}
}

func TestDriverGetchSpecialKey(t *testing.T) {
	d, sim := newSimulationDriver(t, 10, 10)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	key, _ := getchSkippingResize(t, d)
	if key != texelfw.KeyUp {
		t.Errorf("Getch key = %v, want KeyUp", key)
	}
}
