package morph

import (
	"math"
	"testing"
)

func TestQuadBezArclen(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		est := q.Arclen(accuracy)
		error := math.Abs(est - want)
		if error > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestQuadBezArclenPathological(t *testing.T) {
	q := QuadBez{
		Pt(-1.0, 0.0),
		Pt(1.03, 0.0),
		Pt(1.0, 0.0),
	}
	const want = 2.0008737864167325 // A rough empirical calculation
	const accuracy = 1e-11
	est := q.Arclen(accuracy)
	error := math.Abs(est - want)
	if error > accuracy {
		t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
	}
}

func TestQuadBezArclenDegenerate(t *testing.T) {
	p := Pt(4, 2)
	if l := (QuadBez{p, p, p}).Arclen(1e-9); l != 0 {
		t.Errorf("got length %g for a single point, want 0", l)
	}
}

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezEvalEndpoints(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	if p := q.Eval(0); p != q.P0 {
		t.Errorf("got %s, want %s", p, q.P0)
	}
	if p := q.Eval(1); p != q.P2 {
		t.Errorf("got %s, want %s", p, q.P2)
	}
}

func TestQuadBezInvArclen(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 50),
		Pt(100.0, 100.0),
	}
	total := q.Arclen(1e-12)
	const n = 10
	for j := range n + 1 {
		arc := float64(j) / n * total
		ts := solveForArclen(q, arc, 1e-9)
		assertNearFloat(t, q.Subsegment(0, ts).Arclen(1e-12), arc, 1e-8)
	}
}

func TestQuadBezTangents(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	d0, d1 := q.Tangents()
	diff(t, Vec(1, 0), d0)
	diff(t, Vec(0, 1), d1)

	// A control point on an endpoint falls back to the chord.
	q = QuadBez{Pt(0, 0), Pt(0, 0), Pt(2, 2)}
	d0, _ = q.Tangents()
	diff(t, Vec(2, 2), d0)
}

func TestQuadBezLerp(t *testing.T) {
	a := QuadBez{Pt(0, 0), Pt(1, 0), Pt(2, 0)}
	b := QuadBez{Pt(0, 2), Pt(1, 4), Pt(2, 2)}
	diff(t, QuadBez{Pt(0, 1), Pt(1, 2), Pt(2, 1)}, a.Lerp(b, 0.5))
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
}
