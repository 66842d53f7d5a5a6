package morph

import (
	"math"
	"testing"
)

func TestCirclePath(t *testing.T) {
	center := Pt(5, 5)
	for _, r := range []float64{1, 5, -5, 100} {
		c := Circle{center, r}
		for _, tol := range []float64{0.1, 1e-3} {
			p := c.Path(tol)
			if len(p) < 4 {
				t.Errorf("got %d commands, want at least 4", len(p))
			}
			if p.NumPieces() != 1 {
				t.Errorf("got %d pieces, want 1", p.NumPieces())
			}
			if p[0].Start() != p[len(p)-1].End() {
				t.Errorf("path isn't closed: %s != %s", p[0].Start(), p[len(p)-1].End())
			}
			// Midpoints of all commands are close to the circle.
			for _, cmd := range p {
				if cmd.Kind != QuadKind {
					t.Fatalf("got %s, want quadratics", cmd.Kind)
				}
				d := cmd.At(0.5).Distance(center)
				assertNearFloat(t, d, math.Abs(r), 2*tol)
			}
			assertNearFloat(t, p.Length(), c.Perimeter(), c.Perimeter()*tol)
		}
	}

	p := Circle{center, 0}.Path(0.1)
	if len(p) != 1 || p.Length() != 0 {
		t.Errorf("got %v, want a single point", p)
	}
}

func TestCircleSmooth(t *testing.T) {
	p := Circle{Pt(0, 0), 10}.Path(1e-3)
	if n := TagCorners(p, nil).NumVertices(); n != 0 {
		t.Errorf("got %d corners, want 0", n)
	}
}

func TestCircleArc(t *testing.T) {
	c := Circle{Pt(0, 0), 2}
	p := c.Arc(0, math.Pi/2, 2)
	if len(p) != 2 {
		t.Fatalf("got %d commands, want 2", len(p))
	}
	assertNear(t, p.Start(), Pt(2, 0), 1e-12)
	assertNear(t, p.End(), Pt(0, 2), 1e-12)
	assertNear(t, p[0].End(), Pt(math.Sqrt2, math.Sqrt2), 1e-12)

	// Negative sweeps run the other way.
	p = c.Arc(0, -math.Pi/2, 2)
	assertNear(t, p.End(), Pt(0, -2), 1e-12)
}

func TestCircleBoundingBox(t *testing.T) {
	c := Circle{Pt(1, 2), -3}
	diff(t, Rect{-2, -1, 4, 5}, c.BoundingBox())
	diff(t, Rect{1, 0, 7, 6}, c.Translate(Vec(3, 1)).BoundingBox())

	if !c.Contains(Pt(1, 2)) || c.Contains(Pt(4, 2)) {
		t.Error("wrong containment")
	}
}
