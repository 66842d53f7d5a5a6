package morph

import (
	"fmt"
	"slices"
	"testing"
)

// testPath returns a path with two pieces made of lines and quadratics.
func testPath() Path {
	a := Path{
		Line{Pt(0, 0), Pt(10, 0)}.Cmd(),
		QuadBez{Pt(10, 0), Pt(20, 0), Pt(20, 10)}.Cmd(),
		Line{Pt(20, 10), Pt(20, 20)}.Cmd(),
	}
	b := Path{
		QuadBez{Pt(30, 30), Pt(40, 40), Pt(50, 30)}.Cmd(),
		Line{Pt(50, 30), Pt(50, 40)}.Cmd(),
	}
	return slices.Concat(a, b)
}

func TestSplitterEmpty(t *testing.T) {
	s := NewSplitter(nil)
	if l := s.Length(); l != 0 {
		t.Errorf("got length %g, want 0", l)
	}
	if i := s.Index(0); i != -1 {
		t.Errorf("got index %d, want -1", i)
	}
	diff(t, Point{}, s.At(5))
	if p := s.Get(0, 1); p != nil {
		t.Errorf("got %v, want nil", p)
	}
}

func TestSplitterIndex(t *testing.T) {
	// Lengths 1, 1 and 2.
	s := NewSplitter(lines(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(3, 1)))
	tests := []struct {
		pos  float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0},
		// Boundaries belong to the later command.
		{1, 1},
		{2, 2},
		// The end of the path belongs to the last command.
		{4, 2},
		{10, 2},
	}
	for _, tt := range tests {
		if got := s.Index(tt.pos); got != tt.want {
			t.Errorf("Index(%g) = %d, want %d", tt.pos, got, tt.want)
		}
	}
	diff(t, SplitterEntry{Start: 2, Length: 2, End: 4}, s.Entry(2))
	if n := s.Len(); n != 3 {
		t.Errorf("got %d entries, want 3", n)
	}
}

func TestSplitterIndexTrailingZeroLength(t *testing.T) {
	p := lines(Pt(0, 0), Pt(1, 0))
	p = append(p, VertexMarker(Pt(1, 0)))
	s := NewSplitter(p)
	if i := s.Index(1); i != 1 {
		t.Errorf("got index %d, want 1", i)
	}
	diff(t, Pt(1, 0), s.At(1))
}

func TestSplitterAt(t *testing.T) {
	p := testPath()
	s := NewSplitter(p)
	assertNearFloat(t, s.Length(), p.Length(), 1e-12)

	// The endpoints are exact.
	diff(t, p.Start(), s.At(0))
	diff(t, p.End(), s.At(s.Length()))
	diff(t, p.Start(), s.At(-5))
	diff(t, p.End(), s.At(s.Length()+5))

	assertNear(t, s.At(5), Pt(5, 0), 1e-9)
	// The first point of the second piece.
	assertNear(t, s.At(s.Entry(3).Start), Pt(30, 30), 1e-9)
}

func TestSplitterAtLargeScale(t *testing.T) {
	// Arc length accuracy is absolute, so at this scale the parameter
	// tolerance would fall below the float64 spacing in [0, 1].
	for _, scale := range []float64{1e3, 1e8, 1e9, 1e12} {
		cmd, err := Line{Pt(scale, 0), Pt(scale, scale/2)}.Cmd().Lifted()
		if err != nil {
			t.Fatal(err)
		}
		s := NewSplitter(Path{cmd})
		for _, f := range []float64{0.1, 0.3, 0.7} {
			got := s.At(f * s.Length())
			assertNear(t, got, Pt(scale, f*scale/2), scale*1e-9)
		}
	}
}

func TestSplitterAtContinuous(t *testing.T) {
	// Continuity within pieces: moving along the path by d never moves the
	// point by more than d.
	p := testPath()
	s := NewSplitter(p)
	const n = 1000
	step := s.Length() / n
	prev := s.At(0)
	for i := 1; i <= n; i++ {
		pos := float64(i) * step
		pt := s.At(pos)
		if idx := s.Index(pos); idx == s.Index(pos-step) || connected(p[idx-1], p[idx]) {
			if d := pt.Distance(prev); d > step+1e-7 {
				t.Fatalf("At jumped by %g between %g and %g", d, pos-step, pos)
			}
		}
		prev = pt
	}
}

func TestSplitterGet(t *testing.T) {
	s := NewSplitter(lines(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(3, 1)))

	got := s.Get(0.5, 3)
	want := lines(Pt(0.5, 0), Pt(1, 0), Pt(1, 1), Pt(2, 1))
	diff(t, want, got, cmdComparer)

	// Ending on a boundary doesn't produce a zero-length command.
	got = s.Get(0, 2)
	diff(t, lines(Pt(0, 0), Pt(1, 0), Pt(1, 1)), got, cmdComparer)

	// Within a single command.
	got = s.Get(2.5, 3.5)
	diff(t, lines(Pt(1.5, 1), Pt(2.5, 1)), got, cmdComparer)

	// Empty and inverted ranges result in a single point at to.
	for _, r := range [][2]float64{{3, 3}, {3, 1}} {
		got = s.Get(r[0], r[1])
		if len(got) != 1 || !got[0].IsZeroLength() {
			t.Fatalf("Get(%g, %g) = %v, want a single zero-length command", r[0], r[1], got)
		}
		assertNear(t, got[0].Start(), s.At(r[1]), 1e-12)
	}

	// Ranges are clamped.
	got = s.Get(-10, 10)
	diff(t, s.Path(), got, cmdComparer)
}

func TestSplitterGetProperties(t *testing.T) {
	p := testPath()
	s := NewSplitter(p)
	total := s.Length()
	const n = 17
	for i := range n + 1 {
		for j := i + 1; j <= n; j++ {
			from := total * float64(i) / n
			to := total * float64(j) / n
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				got := s.Get(from, to)
				assertNearFloat(t, got.Length(), to-from, 1e-7)
				assertNear(t, got.Start(), s.At(from), 1e-9)
				assertNear(t, got.End(), s.At(to), 1e-9)
			})
		}
	}
}

func TestSplitterGetKeepsPieces(t *testing.T) {
	a := lines(Pt(0, 0), Pt(1, 0))
	b := lines(Pt(1, 0), Pt(2, 0), Pt(3, 0))
	s := NewSplitter(Join(a, b))
	got := s.Get(0.5, 2.5)
	if n := got.NumPieces(); n != 2 {
		t.Errorf("got %d pieces, want 2", n)
	}
}

func TestSplitterDoesNotModifyPath(t *testing.T) {
	p := testPath()
	s := NewSplitter(p)
	s.Get(3, 40)
	s.At(12)
	diff(t, testPath(), p)
}
