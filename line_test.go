package morph

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := l.Arclen(epsilon) - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineSolveForArclenDegenerate(t *testing.T) {
	l := Line{Pt(2, 2), Pt(2, 2)}
	if ts := l.SolveForArclen(1, 1e-9); ts != 0 {
		t.Errorf("got %g, want 0", ts)
	}
	l = Line{Pt(0, 0), Pt(2, 0)}
	if ts := l.SolveForArclen(5, 1e-9); ts != 1 {
		t.Errorf("got %g, want 1", ts)
	}
}

func TestLineCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	pt, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected lines to cross")
	}
	assertNear(t, pt, Pt(10, 0), 1e-9)

	if _, ok := hLine.CrossingPoint(Line{Pt(0, 1), Pt(1, 1)}); ok {
		t.Error("parallel lines shouldn't cross")
	}
}

func TestLineQuad(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, 5)}
	q := l.Quad()
	diff(t, QuadBez{Pt(1, 2), Pt(1, 2), Pt(5, 5)}, q)
	assertNearFloat(t, q.Arclen(1e-9), l.Length(), 1e-9)
	for i := range 11 {
		ts := float64(i) / 10
		p := q.Eval(ts)
		// The lifted quadratic traces the same points, at a different speed.
		if c := p.Sub(l.P0).Cross(l.P1.Sub(l.P0)); math.Abs(c) > 1e-9 {
			t.Errorf("point %s at t=%g isn't on the line", p, ts)
		}
	}
}
