package texelfw

import "testing"

func TestRectContains(t *testing.T) {
	r := TLHW(5, 7, 10, 70)
	if !r.Contains(10, 10) {
		t.Error("expected (10, 10) to be contained")
	}
	if !r.Contains(5, 10) {
		t.Error("expected (5, 10) to be contained")
	}
	if r.Contains(10, 5) {
		t.Error("expected (10, 5) to not be contained")
	}
	if r.Contains(15, 77) {
		t.Error("expected (15, 77) to not be contained")
	}
}

func TestTLHWCollapsesNonPositive(t *testing.T) {
	cases := []struct{ height, width int }{
		{0, 5}, {5, 0}, {-1, 5}, {5, -1},
	}
	for _, c := range cases {
		if got := TLHW(0, 0, c.height, c.width); !got.IsEmpty() {
			t.Errorf("TLHW(0, 0, %d, %d) = %v, want empty", c.height, c.width, got)
		}
	}
}

func TestTLBR(t *testing.T) {
	r := TLBR(1, 2, 4, 9)
	top, left, ok := r.Loc()
	if !ok || top != 1 || left != 2 {
		t.Fatalf("Loc() = (%d, %d, %v), want (1, 2, true)", top, left, ok)
	}
	height, width := r.Size()
	if height != 3 || width != 7 {
		t.Fatalf("Size() = (%d, %d), want (3, 7)", height, width)
	}

	if got := TLBR(4, 2, 4, 9); !got.IsEmpty() {
		t.Errorf("TLBR with bottom == top should be empty, got %v", got)
	}
	if got := TLBR(1, 9, 4, 9); !got.IsEmpty() {
		t.Errorf("TLBR with right == left should be empty, got %v", got)
	}
}

func TestRectInclude(t *testing.T) {
	r := EmptyRect().Include(3, 4)
	if got := TLHW(3, 4, 1, 1); r != got {
		t.Fatalf("Include on empty = %v, want %v", r, got)
	}

	r = TLHW(5, 5, 3, 3) // rows [5,8), cols [5,8)
	r = r.Include(10, 10)
	if want := TLBR(5, 5, 11, 11); r != want {
		t.Errorf("Include(10, 10) = %v, want %v", r, want)
	}

	r = TLHW(5, 5, 3, 3)
	r = r.Include(0, 0)
	if want := TLBR(0, 0, 8, 8); r != want {
		t.Errorf("Include(0, 0) = %v, want %v", r, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := TLHW(0, 0, 2, 2)
	b := TLHW(5, 5, 2, 2)
	if got := a.Union(EmptyRect()); got != a {
		t.Errorf("Union with empty should be identity, got %v", got)
	}
	if got := EmptyRect().Union(a); got != a {
		t.Errorf("empty.Union(a) should be a, got %v", got)
	}
	if got, want := a.Union(b), b.Union(a); got != want {
		t.Errorf("Union not commutative: %v != %v", got, want)
	}
	c := TLHW(1, 1, 1, 1)
	if got, want := a.Union(b).Union(c), a.Union(b.Union(c)); got != want {
		t.Errorf("Union not associative: %v != %v", got, want)
	}
}

func TestRectIntersRect(t *testing.T) {
	a := TLHW(0, 0, 5, 5)
	b := TLHW(3, 3, 5, 5)
	got := a.IntersRect(b)
	want := TLBR(3, 3, 5, 5)
	if got != want {
		t.Fatalf("IntersRect = %v, want %v", got, want)
	}
	if got, want := a.IntersRect(b), b.IntersRect(a); got != want {
		t.Errorf("IntersRect not commutative: %v != %v", got, want)
	}

	disjoint := TLHW(10, 10, 1, 1)
	if got := a.IntersRect(disjoint); !got.IsEmpty() {
		t.Errorf("IntersRect of disjoint rects = %v, want empty", got)
	}
	if got := a.IntersRect(EmptyRect()); !got.IsEmpty() {
		t.Errorf("IntersRect with empty = %v, want empty", got)
	}
}

func TestRectIntersContainsLaw(t *testing.T) {
	a := TLHW(0, 0, 10, 10)
	b := TLHW(5, 5, 10, 10)
	inter := a.IntersRect(b)
	for y := -2; y < 20; y++ {
		for x := -2; x < 20; x++ {
			got := inter.Contains(y, x)
			want := a.Contains(y, x) && b.Contains(y, x)
			if got != want {
				t.Fatalf("at (%d, %d): inter.Contains = %v, want a.Contains && b.Contains = %v", y, x, got, want)
			}
		}
	}
}

func TestRectIntersHLine(t *testing.T) {
	r := TLHW(0, 2, 5, 6) // rows [0,5), cols [2,8)
	if _, _, ok := r.IntersHLine(10, 0, 100); ok {
		t.Error("row outside rect should not intersect")
	}
	x1, x2, ok := r.IntersHLine(2, 0, 100)
	if !ok || x1 != 2 || x2 != 8 {
		t.Errorf("IntersHLine(2, 0, 100) = (%d, %d, %v), want (2, 8, true)", x1, x2, ok)
	}
	if _, _, ok := r.IntersHLine(2, 8, 10); ok {
		t.Error("fully clipped-out range should not intersect")
	}
}

func TestRectIntersVLine(t *testing.T) {
	r := TLHW(2, 0, 6, 5) // rows [2,8), cols [0,5)
	if _, _, ok := r.IntersVLine(0, 100, 10); ok {
		t.Error("column outside rect should not intersect")
	}
	y1, y2, ok := r.IntersVLine(0, 100, 2)
	if !ok || y1 != 2 || y2 != 8 {
		t.Errorf("IntersVLine(0, 100, 2) = (%d, %d, %v), want (2, 8, true)", y1, y2, ok)
	}
}

func TestRectOffset(t *testing.T) {
	r := TLHW(1, 2, 3, 4).Offset(5, -1)
	if want := TLHW(6, 1, 3, 4); r != want {
		t.Errorf("Offset = %v, want %v", r, want)
	}
	if got := EmptyRect().Offset(5, 5); !got.IsEmpty() {
		t.Errorf("Offset on empty should stay empty, got %v", got)
	}
}

func TestScanShortCircuits(t *testing.T) {
	r := TLHW(0, 0, 3, 3)
	var visited int
	v, ok := Scan(r, func(y, x int) (string, bool) {
		visited++
		if y == 1 && x == 1 {
			return "found", true
		}
		return "", false
	})
	if !ok || v != "found" {
		t.Fatalf("Scan = (%q, %v), want (\"found\", true)", v, ok)
	}
	if want := 1*3 + 1 + 1; visited != want {
		t.Errorf("Scan visited %d cells before stopping, want %d", visited, want)
	}
}

func TestScanAllVisitsEveryCell(t *testing.T) {
	r := TLHW(0, 0, 2, 3)
	var got [][2]int
	ScanAll(r, func(y, x int) {
		got = append(got, [2]int{y, x})
	})
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("ScanAll visited %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}
