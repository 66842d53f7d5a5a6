package morph

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpExact(t *testing.T) {
	p0 := Pt(0.1, 0.7)
	p1 := Pt(1.3, -2.9)
	if got := p0.Lerp(p1, 0); got != p0 {
		t.Errorf("got %s, want %s", got, p0)
	}
	if got := p0.Lerp(p1, 1); got != p1 {
		t.Errorf("got %s, want %s", got, p1)
	}
	assertNear(t, p0.Lerp(p1, 0.5), p0.Midpoint(p1), 1e-12)
}
