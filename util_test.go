package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertNearFloat(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); d > epsilon {
		t.Errorf("got %g, want %g (off by %g)", got, want, d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Near(p2, 1e-9)
})

// cmdComparer compares commands by kind, flags and the points their kind
// uses.
var cmdComparer = cmp.Comparer(func(a, b Command) bool {
	if a.Kind != b.Kind || a.Vertex != b.Vertex || a.Lift != b.Lift {
		return false
	}
	const eps = 1e-9
	switch a.Kind {
	case LineKind:
		return a.P0.Near(b.P0, eps) && a.P1.Near(b.P1, eps)
	case QuadKind:
		return a.P0.Near(b.P0, eps) && a.P1.Near(b.P1, eps) && a.P2.Near(b.P2, eps)
	default:
		return a.P0.Near(b.P0, eps) && a.P1.Near(b.P1, eps) && a.P2.Near(b.P2, eps) && a.P3.Near(b.P3, eps)
	}
})

// lines builds a connected path of lines through pts.
func lines(pts ...Point) Path {
	var p Path
	for i := 1; i < len(pts); i++ {
		p = append(p, Line{pts[i-1], pts[i]}.Cmd())
	}
	return p
}
