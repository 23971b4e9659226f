package texelfw

import "fmt"

// testScreenFill is what a freshly created TestScreen starts full of,
// so untouched cells are visibly distinct from both the uninitialized
// window sentinel and real content.
var testScreenFill = Texel{Ch: 'T', Attr: AttrNormal, Fg: ColorCyan, Bg: colorPtr(ColorRed)}

func colorPtr(c Color) *Color { return &c }

// testScreenEvent is one queued response to Getch.
type testScreenEvent struct {
	key Key
	ch  rune
	err error
}

// TestScreen is a fully in-memory Screen: a fixed-size content grid
// plus a queue of scripted Getch responses. It is this package's own
// test fixture, and is exported so downstream code can drive its
// shells against it without a real terminal.
type TestScreen struct {
	height, width int
	content       []Texel
	invalid       bool
	cursor        *[2]int
	queue         []testScreenEvent
}

// NewTestScreen creates a height x width TestScreen, every cell
// initialized to testScreenFill.
func NewTestScreen(height, width int) *TestScreen {
	content := make([]Texel, height*width)
	for i := range content {
		content[i] = testScreenFill
	}
	return &TestScreen{height: height, width: width, content: content}
}

// Content returns the texel currently at (y, x).
func (s *TestScreen) Content(y, x int) Texel {
	return s.content[y*s.width+x]
}

// Invalid reports whether any Out call has landed since the last
// Refresh.
func (s *TestScreen) Invalid() bool { return s.invalid }

// Cursor returns the position Refresh was last called with, or nil if
// it was last called with nil (cursor hidden).
func (s *TestScreen) Cursor() *[2]int { return s.cursor }

// QueueKey appends a special-key Getch response to the queue.
func (s *TestScreen) QueueKey(k Key) { s.queue = append(s.queue, testScreenEvent{key: k}) }

// QueueRune appends a decoded-codepoint Getch response to the queue.
func (s *TestScreen) QueueRune(r rune) { s.queue = append(s.queue, testScreenEvent{ch: r}) }

var errTestScreenEmpty = fmt.Errorf("texelfw: test screen has no queued input")

func (s *TestScreen) GetHeight() (int, error) { return s.height, nil }
func (s *TestScreen) GetWidth() (int, error)  { return s.width, nil }

func (s *TestScreen) Out(y, x int, t Texel) error {
	if y < 0 || x < 0 || y >= s.height || x >= s.width {
		return ErrOutOfBounds
	}
	s.invalid = true
	s.content[y*s.width+x] = t
	return nil
}

func (s *TestScreen) Refresh(cursor *[2]int) error {
	s.invalid = false
	s.cursor = cursor
	return nil
}

func (s *TestScreen) Getch() (Key, rune, error) {
	if len(s.queue) == 0 {
		return 0, 0, errTestScreenEmpty
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev.key, ev.ch, ev.err
}
