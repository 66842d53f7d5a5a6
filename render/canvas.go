package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"honnef.co/go/morph"

	"golang.org/x/image/vector"
)

// DefaultTolerance is the default flattening tolerance for strokes, in
// device pixels.
const DefaultTolerance = 0.25

// Canvas is a raster surface that paths can be drawn onto. Paths are
// transformed from user space to device space by the canvas's transform,
// which defaults to the identity.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Tolerance is the flattening tolerance for strokes, in device pixels. The
	// zero value means DefaultTolerance.
	Tolerance float64

	img *image.RGBA
	ras *vector.Rasterizer
	tr  morph.Affine
}

// NewCanvas returns a transparent canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
		tr:  morph.Identity,
	}
}

func (c *Canvas) tolerance() float64 {
	if c.Tolerance <= 0 {
		return DefaultTolerance
	}
	return c.Tolerance
}

// Image returns the image that the canvas draws to. It is not a copy.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Transform returns the current user-to-device transform.
func (c *Canvas) Transform() morph.Affine { return c.tr }

// SetTransform sets the user-to-device transform for subsequent drawing
// operations.
func (c *Canvas) SetTransform(aff morph.Affine) { c.tr = aff }

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// EncodePNG writes the canvas's image to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) paint(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func pt32(pt morph.Point) (float32, float32) {
	return float32(pt.X), float32(pt.Y)
}

// addPath adds a device space path to the rasterizer. Every piece is closed
// implicitly.
func (c *Canvas) addPath(p morph.Path) {
	open := false
	for el := range p.Elements() {
		switch el.Kind {
		case morph.MoveToKind:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(pt32(el.P0))
			open = true
		case morph.LineToKind:
			c.ras.LineTo(pt32(el.P0))
		case morph.QuadToKind:
			x1, y1 := pt32(el.P0)
			x2, y2 := pt32(el.P1)
			c.ras.QuadTo(x1, y1, x2, y2)
		case morph.CubicToKind:
			x1, y1 := pt32(el.P0)
			x2, y2 := pt32(el.P1)
			x3, y3 := pt32(el.P2)
			c.ras.CubeTo(x1, y1, x2, y2, x3, y3)
		case morph.ClosePathKind:
			c.ras.ClosePath()
			open = false
		default:
			panic("unreachable")
		}
	}
	if open {
		c.ras.ClosePath()
	}
}

// Fill fills the interior of p with col. Open pieces are closed implicitly.
func (c *Canvas) Fill(p morph.Path, col color.Color) {
	if len(p) == 0 {
		return
	}
	c.reset()
	c.addPath(p.Transform(c.tr))
	c.paint(col)
}

// Stroke draws the outline of p with round joins and caps. The width is
// measured in device pixels.
func (c *Canvas) Stroke(p morph.Path, width float64, col color.Color) {
	if len(p) == 0 || width <= 0 {
		return
	}
	c.reset()
	c.addStroke(p.Transform(c.tr), width)
	c.paint(col)
}

// addStroke adds one quadrilateral per flattened segment and one disc per
// vertex. All shapes are wound counterclockwise so overlaps don't cancel out.
func (c *Canvas) addStroke(p morph.Path, width float64) {
	tol := c.tolerance()
	hw := width / 2
	for poly := range p.Flatten(tol) {
		for i, pt := range poly {
			c.addPath(morph.Circle{Center: pt, Radius: hw}.Path(tol))
			if i == 0 {
				continue
			}
			prev := poly[i-1]
			d := pt.Sub(prev)
			l := d.Hypot()
			if l == 0 {
				continue
			}
			n := d.Perp().Mul(hw / l)
			c.ras.MoveTo(pt32(prev.Translate(n.Negate())))
			c.ras.LineTo(pt32(pt.Translate(n.Negate())))
			c.ras.LineTo(pt32(pt.Translate(n)))
			c.ras.LineTo(pt32(prev.Translate(n)))
			c.ras.ClosePath()
		}
	}
}

// StrokePartial strokes the first length units of the path indexed by s.
// Nothing is drawn for non-positive lengths.
func (c *Canvas) StrokePartial(s *morph.Splitter, length, width float64, col color.Color) {
	if s.Len() == 0 || length <= 0 {
		return
	}
	c.Stroke(dropTrailingDots(s.Get(0, length)), width, col)
}

// dropTrailingDots removes zero-length pieces from the end of p. They appear
// when a range of a [morph.Splitter] ends exactly where a piece ends, and
// would otherwise be stroked as round dots at the start of the next piece.
func dropTrailingDots(p morph.Path) morph.Path {
	pieces := p.Pieces()
	n := len(p)
	for len(pieces) > 1 && pieces[len(pieces)-1].Length() == 0 {
		n -= len(pieces[len(pieces)-1])
		pieces = pieces[:len(pieces)-1]
	}
	return p[:n]
}

// StrokeColors strokes the path indexed by s, coloring sections of its
// length with colors from palette. See [Sections] for how the path is
// divided. Nothing is drawn for empty paths.
func (c *Canvas) StrokeColors(s *morph.Splitter, width float64, palette []color.Color, opts ColorOptions) error {
	if s.Len() == 0 || s.Length() == 0 {
		return nil
	}
	secs, err := Sections(s.Length(), len(palette), opts)
	if err != nil {
		return err
	}
	morph.Logger().Debug("stroking colored sections", "length", s.Length(), "sections", len(secs))
	for _, sec := range secs {
		c.Stroke(dropTrailingDots(s.Get(sec.From, sec.To)), width, palette[sec.Color])
	}
	return nil
}
