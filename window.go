package texelfw

import "sync"

// uninitializedRow fills a newly exposed row/column with the
// uninitialized sentinel so an unrendered cell is visible as a defect
// rather than silently showing stale or zero content.
func uninitializedRow(width int) []Texel {
	row := make([]Texel, width)
	for i := range row {
		row[i] = uninitializedTexel
	}
	return row
}

// windowData is a window's private, mutex-guarded state: its bounds in
// its parent's coordinate space, its back-buffer, its accumulated
// dirty rect (in local coordinates), and its place in the attach tree.
// Exactly one of (parent == nil && attached == false), (parent == nil
// && attached == true) [top-level, attached to the host], or
// (parent != nil) [attached to another window] holds at a time.
type windowData struct {
	mu sync.Mutex

	bounds  Rect
	content [][]Texel
	invalid Rect

	attached   bool
	parent     *windowData
	subwindows []*Window
}

func newWindowData() *windowData {
	return &windowData{bounds: EmptyRect(), invalid: EmptyRect()}
}

// isDetachedLocked reports whether w, or any of its ancestors up to the
// host, is not attached. Must be called with w.mu held.
func (w *windowData) isDetachedLocked() bool {
	if w.parent == nil {
		return !w.attached
	}
	w.parent.mu.Lock()
	defer w.parent.mu.Unlock()
	return w.parent.isDetachedLocked()
}

// setBoundsLocked resizes the back-buffer to the new bounds, preserving
// overlapping content and filling newly exposed cells with the
// uninitialized sentinel, clips the dirty rect to the new area, and
// returns the previous bounds. Must be called with w.mu held.
func (w *windowData) setBoundsLocked(bounds Rect) Rect {
	height, width := bounds.Size()
	for i := range w.content {
		row := w.content[i]
		if width > len(row) {
			grown := make([]Texel, width)
			copy(grown, row)
			for j := len(row); j < width; j++ {
				grown[j] = uninitializedTexel
			}
			w.content[i] = grown
		} else {
			w.content[i] = row[:width]
		}
	}
	for len(w.content) < height {
		w.content = append(w.content, uninitializedRow(width))
	}
	w.content = w.content[:height]
	w.invalid = w.invalid.IntersRect(TLHW(0, 0, height, width))
	old := w.bounds
	w.bounds = bounds
	return old
}

// outLocked writes a single cell and marks it dirty. Must be called
// with w.mu held.
func (w *windowData) outLocked(y, x int, t Texel) {
	w.invalid = w.invalid.Include(y, x)
	w.content[y][x] = t
}

// scr renders w into s, recursively via host machinery, clipped to the
// viewport formed by the parent's offset and the crop rect handed down
// from the ancestor chain. It returns the computed viewport (in
// screen/ancestor coordinates) so callers can recurse into
// subwindows, and folds newly invalid cells into globalInvalid so the
// host can accumulate a single screen-wide dirty rect across the
// whole tree. A failing Out call aborts the remaining cells in this
// window's scan immediately; it does not abort sibling or ancestor
// windows.
func (w *windowData) scr(s Screen, parentY, parentX, cropHeight, cropWidth int, globalInvalid *Rect, debug bool) Rect {
	w.mu.Lock()
	invalid := w.invalid
	w.invalid = EmptyRect()
	bounds := w.bounds
	content := w.content
	w.mu.Unlock()

	y, x, ok := bounds.Loc()
	if !ok {
		return EmptyRect()
	}
	offsetBounds := bounds.Offset(parentY, parentX)
	viewport := offsetBounds.IntersRect(TLHW(parentY, parentX, cropHeight, cropWidth))
	y0 := parentY + y
	x0 := parentX + x
	invalid = invalid.Offset(y0, x0)
	*globalInvalid = globalInvalid.Union(invalid.IntersRect(viewport))

	scan := viewport.IntersRect(*globalInvalid)
	_, failed := Scan(scan, func(yi, xi int) (struct{}, bool) {
		t := content[yi-y0][xi-x0]
		if err := s.Out(yi, xi, t); err != nil {
			return struct{}{}, true
		}
		return struct{}{}, false
	})
	if failed {
		reportRenderError(debug)
	}
	return viewport
}

// Window is a handle to a window's state and its position in the
// attach tree. The zero value is not usable; create one with
// (*WindowsHost).NewWindow.
type Window struct {
	host *hostData
	data *windowData
}

// Out writes a single cell at (y, x) in the window's own coordinate
// space (0,0 is the window's top-left corner), marking it dirty.
func (w *Window) Out(y, x int, t Texel) {
	w.data.mu.Lock()
	defer w.data.mu.Unlock()
	w.data.outLocked(y, x, t)
}

// Bounds returns the window's current bounds, in its parent's
// coordinate space (or the host's, if top-level).
func (w *Window) Bounds() Rect {
	w.data.mu.Lock()
	defer w.data.mu.Unlock()
	return w.data.bounds
}

// Area returns the window's bounds translated to its own local origin
// (0, 0, height, width).
func (w *Window) Area() Rect {
	w.data.mu.Lock()
	height, width := w.data.bounds.Size()
	w.data.mu.Unlock()
	return TLHW(0, 0, height, width)
}

// globalOrigin walks the parent chain to compute w's top-left corner
// in host coordinates. ok is false if any ancestor (including w) has
// empty bounds.
func globalOrigin(w *windowData) (y, x int, ok bool) {
	w.mu.Lock()
	top, left, locOk := w.bounds.Loc()
	parent := w.parent
	w.mu.Unlock()
	if !locOk {
		return 0, 0, false
	}
	if parent == nil {
		return top, left, true
	}
	py, px, pok := globalOrigin(parent)
	if !pok {
		return 0, 0, false
	}
	return py + top, px + left, true
}

// SetBounds resizes and/or moves the window, preserving overlapping
// back-buffer content, and marks both the old and new screen-space
// areas dirty on the host so the next Render picks up the change.
func (w *Window) SetBounds(bounds Rect) {
	w.data.mu.Lock()
	oldBounds := w.data.setBoundsLocked(bounds)
	parent := w.data.parent
	w.data.mu.Unlock()

	newBounds := bounds
	py, px, ok := 0, 0, true
	if parent != nil {
		py, px, ok = globalOrigin(parent)
	}
	if !ok {
		return
	}
	oldBounds = oldBounds.Offset(py, px)
	newBounds = newBounds.Offset(py, px)
	w.host.mu.Lock()
	w.host.invalid = w.host.invalid.Union(oldBounds)
	w.host.invalid = w.host.invalid.Union(newBounds)
	w.host.mu.Unlock()
}

// Attach makes w a top-level window of its host. Panics if w is
// already attached.
func (w *Window) Attach() {
	w.data.mu.Lock()
	if w.data.parent != nil || w.data.attached {
		w.data.mu.Unlock()
		panic("texelfw: window is attached already")
	}
	w.data.attached = true
	w.data.mu.Unlock()

	w.host.mu.Lock()
	w.host.windows = append(w.host.windows, w)
	w.host.mu.Unlock()
}

// AttachTo makes w a subwindow of parent. Panics if w and parent
// belong to different hosts, or if w is already attached.
func (w *Window) AttachTo(parent *Window) {
	if w.host != parent.host {
		panic("texelfw: foreign window")
	}
	w.data.mu.Lock()
	if w.data.parent != nil || w.data.attached {
		w.data.mu.Unlock()
		panic("texelfw: window is attached already")
	}
	w.data.parent = parent.data
	w.data.mu.Unlock()

	parent.data.mu.Lock()
	parent.data.subwindows = append(parent.data.subwindows, w)
	parent.data.mu.Unlock()
}

func removeWindow(windows []*Window, target *Window) []*Window {
	for i, w := range windows {
		if w == target {
			return append(windows[:i], windows[i+1:]...)
		}
	}
	return windows
}

// detachCore performs the detach mechanics and reports whether w was
// attached. It does not panic, so Drop-like cleanup paths can call it
// unconditionally.
func (w *Window) detachCore() bool {
	w.data.mu.Lock()
	parent := w.data.parent
	attached := w.data.attached
	if parent == nil && !attached {
		w.data.mu.Unlock()
		return false
	}
	w.data.mu.Unlock()

	w.SetBounds(EmptyRect())

	if parent != nil {
		parent.mu.Lock()
		parent.subwindows = removeWindow(parent.subwindows, w)
		parent.mu.Unlock()
	} else {
		w.host.mu.Lock()
		w.host.windows = removeWindow(w.host.windows, w)
		w.host.mu.Unlock()
	}

	w.data.mu.Lock()
	w.data.parent = nil
	w.data.attached = false
	w.data.mu.Unlock()
	return true
}

// Detach removes w from the attach tree. Panics if w is already
// detached.
func (w *Window) Detach() {
	if !w.detachCore() {
		panic("texelfw: window is detached already")
	}
}

// IsDetached reports whether w, or any of its ancestors, is detached
// from the host.
func (w *Window) IsDetached() bool {
	w.data.mu.Lock()
	defer w.data.mu.Unlock()
	return w.data.isDetachedLocked()
}

func windowIndex(windows []*Window, target *Window) int {
	for i, w := range windows {
		if w == target {
			return i
		}
	}
	return -1
}

// ZIndex returns w's position among its siblings (0 is bottom-most,
// rendered first).
func (w *Window) ZIndex() int {
	w.data.mu.Lock()
	parent := w.data.parent
	w.data.mu.Unlock()
	if parent != nil {
		parent.mu.Lock()
		defer parent.mu.Unlock()
		return windowIndex(parent.subwindows, w)
	}
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return windowIndex(w.host.windows, w)
}

// SetZIndex moves w to position index among its siblings, clamping to
// the valid range, and marks w's screen-space area dirty.
func (w *Window) SetZIndex(index int) {
	w.data.mu.Lock()
	bounds := w.data.bounds
	parent := w.data.parent
	w.data.mu.Unlock()

	py, px, ok := 0, 0, true
	if parent != nil {
		py, px, ok = globalOrigin(parent)
	}
	if ok {
		bounds = bounds.Offset(py, px)
		w.host.mu.Lock()
		w.host.invalid = w.host.invalid.Union(bounds)
		w.host.mu.Unlock()
	}

	if parent != nil {
		parent.mu.Lock()
		defer parent.mu.Unlock()
		parent.subwindows = reorderWindow(parent.subwindows, w, index)
		return
	}
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	w.host.windows = reorderWindow(w.host.windows, w, index)
}

func reorderWindow(windows []*Window, target *Window, index int) []*Window {
	windows = removeWindow(windows, target)
	if index > len(windows) {
		index = len(windows)
	}
	if index < 0 {
		index = 0
	}
	windows = append(windows, nil)
	copy(windows[index+1:], windows[index:])
	windows[index] = target
	return windows
}
