package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"honnef.co/go/morph"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func assertColor(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d, %d): got %v, want %v", x, y, got, want)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill(morph.Rect{X0: 5, Y0: 5, X1: 15, Y1: 15}.Path(), red)
	assertColor(t, c.Image(), 10, 10, red)
	assertColor(t, c.Image(), 2, 2, white)
	assertColor(t, c.Image(), 17, 10, white)

	// The transform applies to subsequent operations.
	c.SetTransform(morph.Translate(morph.Vec(-5, -5)))
	c.Fill(morph.Rect{X0: 5, Y0: 5, X1: 8, Y1: 8}.Path(), blue)
	assertColor(t, c.Image(), 1, 1, blue)
	assertColor(t, c.Image(), 10, 10, red)
}

func TestCanvasStroke(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	p := morph.Path{morph.Line{P0: morph.Pt(2, 10), P1: morph.Pt(18, 10)}.Cmd()}
	c.Stroke(p, 4, red)
	assertColor(t, c.Image(), 10, 10, red)
	assertColor(t, c.Image(), 10, 9, red)
	assertColor(t, c.Image(), 10, 3, white)
	// Round caps extend past the endpoints.
	assertColor(t, c.Image(), 1, 10, red)
}

func TestCanvasStrokeCurve(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(white)
	// The joint between the two quarter circles must not leave a hole.
	p := morph.Circle{Center: morph.Pt(20, 20), Radius: 10}.Arc(0, 3.14159, 2)
	c.Stroke(p, 4, red)
	assertColor(t, c.Image(), 20, 30, red)
	assertColor(t, c.Image(), 30, 20, red)
	assertColor(t, c.Image(), 20, 20, white)
}

func TestCanvasStrokePartial(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	s := morph.NewSplitter(morph.Path{morph.Line{P0: morph.Pt(0, 10), P1: morph.Pt(20, 10)}.Cmd()})
	c.StrokePartial(s, 8, 4, red)
	assertColor(t, c.Image(), 4, 10, red)
	assertColor(t, c.Image(), 15, 10, white)
}

func TestCanvasStrokePartialPieceBoundary(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	p := morph.Path{
		morph.Line{P0: morph.Pt(0, 2), P1: morph.Pt(10, 2)}.Cmd(),
		morph.Line{P0: morph.Pt(15, 8), P1: morph.Pt(15, 18)}.Cmd(),
	}
	s := morph.NewSplitter(p)
	// Ends exactly at the end of the first piece.
	c.StrokePartial(s, 10, 4, red)
	assertColor(t, c.Image(), 5, 2, red)
	assertColor(t, c.Image(), 15, 8, white)
	assertColor(t, c.Image(), 15, 12, white)
}

func TestDropTrailingDots(t *testing.T) {
	a := morph.Line{P0: morph.Pt(0, 0), P1: morph.Pt(3, 0)}.Cmd()
	b := morph.Line{P0: morph.Pt(3, 0), P1: morph.Pt(3, 2)}.Cmd()
	dot := morph.Line{P0: morph.Pt(0, 5), P1: morph.Pt(0, 5)}.Cmd()
	dot.Lift = true
	next := morph.Line{P0: morph.Pt(0, 5), P1: morph.Pt(0, 6)}.Cmd()
	next.Lift = true

	tests := []struct {
		in   morph.Path
		want morph.Path
	}{
		{morph.Path{a, dot}, morph.Path{a}},
		{morph.Path{a, b, dot}, morph.Path{a, b}},
		{morph.Path{a, next}, morph.Path{a, next}},
		// A lone dot is what a zero-length range looks like and is kept.
		{morph.Path{dot}, morph.Path{dot}},
		{nil, nil},
	}
	for _, tt := range tests {
		diff(t, tt.want, dropTrailingDots(tt.in))
	}
}

func TestCanvasStrokeColors(t *testing.T) {
	c := NewCanvas(30, 10)
	c.Clear(white)
	s := morph.NewSplitter(morph.Path{morph.Line{P0: morph.Pt(0, 5), P1: morph.Pt(30, 5)}.Cmd()})
	palette := []color.Color{red, blue}
	if err := c.StrokeColors(s, 4, palette, ColorOptions{SectionLength: 10}); err != nil {
		t.Fatal(err)
	}
	assertColor(t, c.Image(), 4, 5, red)
	assertColor(t, c.Image(), 15, 5, blue)
	assertColor(t, c.Image(), 25, 5, red)

	if err := c.StrokeColors(s, 4, palette, ColorOptions{SectionLength: 10, ColorCount: 2}); err == nil {
		t.Error("conflicting options were accepted")
	}
}

func TestCanvasEmptyPaths(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(white)
	before := bytes.Clone(c.Image().Pix)

	c.Fill(nil, red)
	c.Stroke(morph.Path{}, 3, red)
	s := morph.NewSplitter(nil)
	c.StrokePartial(s, 5, 3, red)
	if err := c.StrokeColors(s, 3, DefaultPalette, ColorOptions{}); err != nil {
		t.Errorf("got error %v for an empty path", err)
	}
	if !bytes.Equal(before, c.Image().Pix) {
		t.Error("empty paths drew something")
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Clear(red)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("got bounds %v, want 4x3", b)
	}
}
