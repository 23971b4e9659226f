package texelfw

import "fmt"

// Attr is a bitset of terminal cell attributes.
type Attr uint32

const AttrNormal Attr = 0

const (
	AttrStandout Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrDim
	AttrBold
	AttrAltCharset
	AttrInvis
	AttrProtect
	AttrHorizontal
	AttrLeft
	AttrLow
	AttrRight
	AttrTop
	AttrVertical
)

// Color is one of the eight standard terminal colors.
type Color int8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Texel is a single terminal cell: a codepoint, an attribute bitset, a
// foreground color, and an optional background color (absent means
// the terminal's default background). Texel is immutable by contract;
// callers should treat values as copy-on-write.
type Texel struct {
	Ch   rune
	Attr Attr
	Fg   Color
	Bg   *Color
}

// uninitializedTexel is written into newly exposed cells when a
// window's back-buffer grows, so an unrendered defect is visible in
// practice rather than silently showing stale or zero content.
var uninitializedTexel = Texel{Ch: 'X', Attr: AttrBold, Fg: ColorRed}

// Screen is the abstract sink a WindowsHost composites into. The
// concrete terminal driver (locale setup, raw mode, actual curses or
// tcell calls) is an external collaborator; only this contract is used
// by the windowing core. See package driver/tcelldriver for a concrete
// implementation.
type Screen interface {
	// GetHeight returns the screen's current height in rows.
	GetHeight() (int, error)
	// GetWidth returns the screen's current width in columns.
	GetWidth() (int, error)
	// Out writes a single cell. Fails if (y, x) is outside the screen.
	Out(y, x int, t Texel) error
	// Refresh commits buffered writes. A non-nil cursor reveals the
	// terminal cursor at that position; nil hides it.
	Refresh(cursor *[2]int) error
	// Getch blocks for the next input event: either a special Key or a
	// decoded Unicode codepoint.
	Getch() (Key, rune, error)
}

// ErrOutOfBounds is returned by Screen.Out when (y, x) is outside the
// screen's current size.
var ErrOutOfBounds = fmt.Errorf("texelfw: cell out of screen bounds")
