package morph

import (
	"errors"
	"math"
	"testing"
)

func TestCommandLength(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}.Cmd()
	assertNearFloat(t, l.Length(), 5, 1e-12)

	// y = x^2
	q := QuadBez{Pt(0, 0), Pt(0.5, 0), Pt(1, 1)}.Cmd()
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	assertNearFloat(t, q.Length(), want, 1e-9)

	if l := VertexMarker(Pt(1, 1)).Length(); l != 0 {
		t.Errorf("got marker length %g, want 0", l)
	}
}

func TestCommandSplit(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Cmd()
	left := q.Split(0, 0.5)
	right := q.Split(0.5, 1)
	diff(t, q.Start(), left.Start())
	diff(t, q.End(), right.End())
	assertNear(t, left.End(), right.Start(), 1e-12)
	assertNearFloat(t, left.Length()+right.Length(), q.Length(), 1e-9)

	// Degenerate ranges result in valid zero-length commands.
	d := q.Split(0.3, 0.3)
	if !d.IsZeroLength() {
		t.Errorf("got %s, want a zero-length command", d)
	}
	if l := d.Length(); l != 0 {
		t.Errorf("got length %g, want 0", l)
	}

	// Splitting never modifies the receiver.
	diff(t, QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Cmd(), q)
}

func TestCommandSplitN(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Cmd()
	q.Lift = true
	parts := q.SplitN(3)
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}
	for i, part := range parts {
		assertNearFloat(t, part.Length(), q.Length()/3, 1e-8)
		if part.Lift != (i == 0) {
			t.Errorf("part %d: got Lift = %t", i, part.Lift)
		}
	}
	diff(t, q.Start(), parts[0].Start())
	diff(t, q.End(), parts[2].End())
}

func TestCommandAngles(t *testing.T) {
	l := Line{Pt(0, 0), Pt(0, 1)}.Cmd()
	assertNearFloat(t, l.IncomingAngle(), math.Pi/2, 1e-12)
	assertNearFloat(t, l.OutgoingAngle(), math.Pi/2, 1e-12)

	q := QuadBez{Pt(0, 0), Pt(1, 0), Pt(1, 1)}.Cmd()
	assertNearFloat(t, q.IncomingAngle(), 0, 1e-12)
	assertNearFloat(t, q.OutgoingAngle(), math.Pi/2, 1e-12)

	m := VertexMarker(Pt(1, 1))
	if a := m.IncomingAngle(); !math.IsNaN(a) {
		t.Errorf("got incoming angle %g for a marker, want NaN", a)
	}
	if a := m.OutgoingAngle(); !math.IsNaN(a) {
		t.Errorf("got outgoing angle %g for a marker, want NaN", a)
	}
}

func TestCommandToQuad(t *testing.T) {
	l := Line{Pt(1, 1), Pt(3, 1)}.Cmd()
	l.Lift = true
	q, err := l.ToQuad()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, QuadBez{Pt(1, 1), Pt(1, 1), Pt(3, 1)}, q)

	lifted, err := l.Lifted()
	if err != nil {
		t.Fatal(err)
	}
	if lifted.Kind != QuadKind || !lifted.Lift {
		t.Errorf("got %s, want a lifted quadratic", lifted)
	}
	assertNearFloat(t, lifted.Length(), l.Length(), 1e-12)

	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}.Cmd()
	_, err = c.ToQuad()
	var kindErr *UnsupportedCommandKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("got error %v, want an UnsupportedCommandKindError", err)
	}
	if kindErr.Kind != CubicKind {
		t.Errorf("got kind %s, want %s", kindErr.Kind, CubicKind)
	}
}

func TestCommandReverse(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Cmd()
	q.Lift = true
	r := q.Reverse()
	diff(t, QuadBez{Pt(2, 0), Pt(1, 2), Pt(0, 0)}.Cmd(), r)

	m := VertexMarker(Pt(1, 1)).Reverse()
	if !m.Vertex {
		t.Error("reversing a marker lost its Vertex flag")
	}
}

func TestCommandTransform(t *testing.T) {
	m := VertexMarker(Pt(1, 1))
	got := m.Translate(Vec(1, 2))
	want := VertexMarker(Pt(2, 3))
	diff(t, want, got)
	diff(t, VertexMarker(Pt(1, 1)), m)
}

func TestCommandString(t *testing.T) {
	m := VertexMarker(Pt(1, 2))
	m.Lift = true
	if s := m.String(); s != "^Quad((1, 2), (1, 2), (1, 2))[vertex]" {
		t.Errorf("got %q", s)
	}
	if s := CubicKind.String(); s != "cubic" {
		t.Errorf("got %q, want %q", s, "cubic")
	}
}
