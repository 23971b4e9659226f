package texelfw

// Graph is the alternate-character-set glyph table: named symbols
// (corners, tees, lines, arrows, blocks) with the ASCII codepoints
// that, combined with AttrAltCharset, select the driver's line-drawing
// character set.
type Graph rune

const (
	GraphULCorner     Graph = 'l'
	GraphURCorner     Graph = 'k'
	GraphLLCorner     Graph = 'm'
	GraphLRCorner     Graph = 'j'
	GraphLTee         Graph = 't'
	GraphRTee         Graph = 'u'
	GraphBTee         Graph = 'v'
	GraphTTee         Graph = 'w'
	GraphHLine        Graph = 'q'
	GraphVLine        Graph = 'x'
	GraphPlus         Graph = 'n'
	GraphS1           Graph = 'o'
	GraphS9           Graph = 's'
	GraphDiamond      Graph = '`'
	GraphCkBoard      Graph = 'a'
	GraphDegree       Graph = 'f'
	GraphPlMinus      Graph = 'g'
	GraphBullet       Graph = '~'
	GraphLArrow       Graph = ','
	GraphRArrow       Graph = '+'
	GraphDArrow       Graph = '.'
	GraphUArrow       Graph = '-'
	GraphBoard        Graph = 'h'
	GraphLantern      Graph = 'i'
	GraphBlock        Graph = '0'
	GraphS3           Graph = 'p'
	GraphS7           Graph = 'r'
	GraphLessEqual    Graph = 'y'
	GraphGreaterEqual Graph = 'z'
	GraphPi           Graph = '{'
	GraphNotEqual     Graph = '|'
	GraphSterling     Graph = '}'
)

// Drawable is anything the draw helpers can turn into a concrete
// Texel given the attribute/color arguments of the call site: a
// literal Texel (passed through unchanged), a bare Glyph rune, or a
// Graph line-drawing symbol (which additionally sets AttrAltCharset).
type Drawable interface {
	texel(attr Attr, fg Color, bg *Color) Texel
}

func (t Texel) texel(Attr, Color, *Color) Texel { return t }

// Glyph is a single codepoint drawn with the call's own attribute and
// colors.
type Glyph rune

func (g Glyph) texel(attr Attr, fg Color, bg *Color) Texel {
	return Texel{Ch: rune(g), Attr: attr, Fg: fg, Bg: bg}
}

func (g Graph) texel(attr Attr, fg Color, bg *Color) Texel {
	return Texel{Ch: rune(g), Attr: attr | AttrAltCharset, Fg: fg, Bg: bg}
}

// DrawTexel writes one cell of d at (y, x), if that point is inside
// the window's area; a no-op otherwise.
func DrawTexel(w *Window, y, x int, d Drawable, attr Attr, fg Color, bg *Color) {
	if w.Area().Contains(y, x) {
		w.Out(y, x, d.texel(attr, fg, bg))
	}
}

// DrawHLine draws the half-open horizontal range [x1, x2) at row y,
// clipped to the window's area. A nil ch falls back to GraphHLine.
func DrawHLine(w *Window, y, x1, x2 int, ch Drawable, attr Attr, fg Color, bg *Color) {
	cx1, cx2, ok := w.Area().IntersHLine(y, x1, x2)
	if !ok {
		return
	}
	if ch == nil {
		ch = GraphHLine
	}
	t := ch.texel(attr, fg, bg)
	for x := cx1; x < cx2; x++ {
		w.Out(y, x, t)
	}
}

// DrawVLine draws the half-open vertical range [y1, y2) at column x,
// clipped to the window's area. A nil ch falls back to GraphVLine.
func DrawVLine(w *Window, y1, y2, x int, ch Drawable, attr Attr, fg Color, bg *Color) {
	cy1, cy2, ok := w.Area().IntersVLine(y1, y2, x)
	if !ok {
		return
	}
	if ch == nil {
		ch = GraphVLine
	}
	t := ch.texel(attr, fg, bg)
	for y := cy1; y < cy2; y++ {
		w.Out(y, x, t)
	}
}

// Border names the eight edge/corner glyphs drawn by DrawBorder. A
// nil field omits that edge or corner. NewBorder returns the default
// single-line box; the Without* methods return a modified copy.
type Border struct {
	UpperLeft, UpperRight, LowerLeft, LowerRight Drawable
	Upper, Lower, Left, Right                    Drawable
}

// NewBorder returns the default single-line box border.
func NewBorder() Border {
	return Border{
		UpperLeft: GraphULCorner, UpperRight: GraphURCorner,
		LowerLeft: GraphLLCorner, LowerRight: GraphLRCorner,
		Upper: GraphHLine, Lower: GraphHLine,
		Left: GraphVLine, Right: GraphVLine,
	}
}

// WithoutTop removes the upper edge and its two corners.
func (b Border) WithoutTop() Border {
	b.Upper, b.UpperLeft, b.UpperRight = nil, nil, nil
	return b
}

// WithoutBottom removes the lower edge and its two corners.
func (b Border) WithoutBottom() Border {
	b.Lower, b.LowerLeft, b.LowerRight = nil, nil, nil
	return b
}

// WithoutLeftSide removes the left edge and its two corners.
func (b Border) WithoutLeftSide() Border {
	b.Left, b.UpperLeft, b.LowerLeft = nil, nil, nil
	return b
}

// WithoutRightSide removes the right edge and its two corners.
func (b Border) WithoutRightSide() Border {
	b.Right, b.UpperRight, b.LowerRight = nil, nil, nil
	return b
}

func presentBit(a, b, c Drawable) int {
	if a == nil && b == nil && c == nil {
		return 0
	}
	return 1
}

// DrawBorder draws border's edges and corners around bounds. A side
// counts as present if its edge or either of its corners is set. Each
// edge stops one cell short of every present perpendicular side, and
// reaches into the corner cell only where that side is absent
// entirely; omitting a single corner leaves its cell empty.
func DrawBorder(w *Window, bounds Rect, border Border, attr Attr, fg Color, bg *Color) {
	y, x, ok := bounds.Loc()
	if !ok {
		return
	}
	height, width := bounds.Size()
	t := presentBit(border.Upper, border.UpperLeft, border.UpperRight)
	l := presentBit(border.Left, border.UpperLeft, border.LowerLeft)
	b := presentBit(border.Lower, border.LowerLeft, border.LowerRight)
	r := presentBit(border.Right, border.UpperRight, border.LowerRight)

	if border.Upper != nil {
		DrawHLine(w, y, x+l, x+width-r, border.Upper, attr, fg, bg)
	}
	if border.Lower != nil {
		DrawHLine(w, y+height-b, x+l, x+width-r, border.Lower, attr, fg, bg)
	}
	if border.Left != nil {
		DrawVLine(w, y+t, y+height-b, x, border.Left, attr, fg, bg)
	}
	if border.Right != nil {
		DrawVLine(w, y+t, y+height-b, x+width-r, border.Right, attr, fg, bg)
	}
	if border.UpperLeft != nil {
		DrawTexel(w, y, x, border.UpperLeft, attr, fg, bg)
	}
	if border.UpperRight != nil {
		DrawTexel(w, y, x+width-1, border.UpperRight, attr, fg, bg)
	}
	if border.LowerLeft != nil {
		DrawTexel(w, y+height-1, x, border.LowerLeft, attr, fg, bg)
	}
	if border.LowerRight != nil {
		DrawTexel(w, y+height-1, x+width-1, border.LowerRight, attr, fg, bg)
	}
}

// DrawText clips by y, then streams text left to right starting at
// x, skipping max(0,-x) leading runes when the start is left of the
// window's area, and stopping at the right edge.
func DrawText(w *Window, y, x int, text string, attr Attr, fg Color, bg *Color) {
	if y < 0 {
		return
	}
	height, width := w.Bounds().Size()
	if y >= height {
		return
	}
	x0 := x
	if x0 < 0 {
		x0 = 0
	}
	skip := x0 - x
	xi := x0
	for i, c := range []rune(text) {
		if i < skip {
			continue
		}
		if xi >= width {
			return
		}
		w.Out(y, xi, Glyph(c).texel(attr, fg, bg))
		xi++
	}
}

// FillRect clips rect to the window's area and writes the same cell
// to every cell within it.
func FillRect(w *Window, rect Rect, d Drawable, attr Attr, fg Color, bg *Color) {
	clipped := w.Area().IntersRect(rect)
	t := d.texel(attr, fg, bg)
	ScanAll(clipped, func(y, x int) {
		w.Out(y, x, t)
	})
}
