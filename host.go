package texelfw

import (
	"fmt"
	"os"
	"sync"
)

// hostData is a WindowsHost's shared state: its top-level windows (in
// z-order, index 0 rendered first) and the accumulated screen-space
// dirty rect contributed by windows that moved, resized, or
// detached since the last Render.
type hostData struct {
	mu      sync.Mutex
	windows []*Window
	invalid Rect
	debug   bool
}

// WindowsHost owns a tree of windows and composites them onto a
// Screen. All of its methods, and all Window methods for windows
// created by it, are safe for concurrent use.
type WindowsHost struct {
	val *hostData
}

// NewWindowsHost creates an empty host with no windows attached.
func NewWindowsHost() *WindowsHost {
	return &WindowsHost{val: &hostData{invalid: EmptyRect()}}
}

// SetDebug switches debug mode. With debug on, a failed Screen.Out
// during Render panics and a deep window tree is reported on stderr;
// with debug off, a failed Screen.Out is reported as one line on
// stderr and no depth warning is printed.
func (h *WindowsHost) SetDebug(debug bool) {
	h.val.mu.Lock()
	defer h.val.mu.Unlock()
	h.val.debug = debug
}

// NewWindow creates a new, detached window belonging to h. Call
// Attach or AttachTo to make it visible.
func (h *WindowsHost) NewWindow() *Window {
	return &Window{host: h.val, data: newWindowData()}
}

// scrWindow renders window and recurses into its subwindows, each
// clipped to the viewport its parent computed.
func scrWindow(w *windowData, s Screen, parentY, parentX, cropHeight, cropWidth int, invalid *Rect, debug bool, depth int) {
	debugCheckTreeDepth(debug, depth)
	viewport := w.scr(s, parentY, parentX, cropHeight, cropWidth, invalid, debug)
	y, x, ok := viewport.Loc()
	if !ok {
		return
	}
	height, width := viewport.Size()

	w.mu.Lock()
	subwindows := make([]*windowData, len(w.subwindows))
	for i, sw := range w.subwindows {
		subwindows[i] = sw.data
	}
	w.mu.Unlock()

	for _, sub := range subwindows {
		scrWindow(sub, s, y, x, height, width, invalid, debug, depth+1)
	}
}

// Render composites every attached window, bottom to top, onto s,
// repainting the dirty region: the bounding rect of each window's own
// local writes since its last render, plus any area exposed by a
// resize, move, reorder, or detach recorded on the host.
func (h *WindowsHost) Render(s Screen) error {
	h.val.mu.Lock()
	invalid := h.val.invalid
	h.val.invalid = EmptyRect()
	windows := make([]*windowData, len(h.val.windows))
	for i, w := range h.val.windows {
		windows[i] = w.data
	}
	debug := h.val.debug
	h.val.mu.Unlock()

	height, err := s.GetHeight()
	if err != nil {
		return err
	}
	width, err := s.GetWidth()
	if err != nil {
		return err
	}

	for _, w := range windows {
		scrWindow(w, s, 0, 0, height, width, &invalid, debug, 0)
	}
	return nil
}

// reportRenderError surfaces a failed Screen.Out call during
// compositing. In debug mode it panics immediately so test and
// development builds fail loudly; otherwise it logs one line to
// stderr and compositing of the rest of the tree continues.
func reportRenderError(debug bool) {
	const msg = "texelfw: render error occurred"
	if debug {
		panic(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
