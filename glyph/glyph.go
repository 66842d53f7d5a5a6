// Package glyph converts font outlines into morph paths, so that text can be
// drawn, written out and morphed like any other shape.
//
// Outlines use a y-down coordinate system with the origin on the baseline.
// Cubic outlines, as found in CFF fonts, are approximated with quadratic
// Béziers.
package glyph

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"honnef.co/go/morph"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrMissingGlyph is returned for runes that the font has no glyph for.
var ErrMissingGlyph = errors.New("glyph: missing glyph")

// CubicAccuracy is the maximum distance between cubic outline segments and
// their quadratic approximations, in pixels.
const CubicAccuracy = 0.01

// Face is a font at a particular size. It is safe for concurrent use.
type Face struct {
	font *sfnt.Font
	size float64
	ppem fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse parses a TrueType or OpenType font and returns a face for it. The
// size is the number of pixels per em.
func Parse(data []byte, size float64) (*Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("glyph: invalid size %g", size)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return &Face{
		font: f,
		size: size,
		ppem: fixed.Int26_6(size * 64),
	}, nil
}

// Default returns a face for Go Regular.
func Default(size float64) (*Face, error) {
	return Parse(goregular.TTF, size)
}

// Size returns the number of pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics describes vertical font metrics, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64
	// Height is the recommended distance between consecutive baselines.
	Height float64
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() (Metrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("glyph: %w", err)
	}
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}, nil
}

// Glyph returns the outline of r with its origin at (0, 0), and the distance
// to advance the pen by. Each contour of the outline is a separate, closed
// piece. Whitespace has an empty outline but a non-zero advance.
func (f *Face) Glyph(r rune) (morph.Path, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.index(r)
	if err != nil {
		return nil, 0, err
	}
	return f.glyph(idx)
}

func (f *Face) index(r rune) (sfnt.GlyphIndex, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph: %w", err)
	}
	if idx == 0 {
		return 0, fmt.Errorf("%w for %q", ErrMissingGlyph, r)
	}
	return idx, nil
}

func (f *Face) glyph(idx sfnt.GlyphIndex) (morph.Path, float64, error) {
	segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("glyph: loading glyph %d: %w", idx, err)
	}
	p := outline(segs)
	adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("glyph: advance of glyph %d: %w", idx, err)
	}
	return p, fromFixed(adv), nil
}

// Text lays out s on a single line starting at the origin, applying kerning,
// and returns the combined outline of all glyphs. Newlines start a new line.
func (f *Face) Text(s string) (morph.Path, error) {
	m, err := f.Metrics()
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var pieces []morph.Path
	var x, y float64
	var prev sfnt.GlyphIndex
	for _, r := range s {
		if r == '\n' {
			x = 0
			y += m.Height
			prev = 0
			continue
		}
		idx, err := f.index(r)
		if err != nil {
			return nil, err
		}
		if prev != 0 {
			k, err := f.font.Kern(&f.buf, prev, idx, f.ppem, font.HintingNone)
			switch {
			case err == nil:
				x += fromFixed(k)
			case errors.Is(err, sfnt.ErrNotFound):
			default:
				return nil, fmt.Errorf("glyph: kerning: %w", err)
			}
		}
		p, adv, err := f.glyph(idx)
		if err != nil {
			return nil, err
		}
		if len(p) > 0 {
			pieces = append(pieces, p.Translate(morph.Vec(x, y)))
		}
		x += adv
		prev = idx
	}
	return morph.Join(pieces...), nil
}

// outline converts sfnt segments to a path. Every contour is closed.
func outline(segs []sfnt.Segment) morph.Path {
	els := make([]morph.PathElement, 0, len(segs)+8)
	open := false
	var last morph.Point
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				els = append(els, morph.ClosePath())
			}
			last = fromFixedPoint(seg.Args[0])
			els = append(els, morph.MoveTo(last))
			open = true
		case sfnt.SegmentOpLineTo:
			last = fromFixedPoint(seg.Args[0])
			els = append(els, morph.LineTo(last))
		case sfnt.SegmentOpQuadTo:
			last = fromFixedPoint(seg.Args[1])
			els = append(els, morph.QuadTo(fromFixedPoint(seg.Args[0]), last))
		case sfnt.SegmentOpCubeTo:
			c := morph.CubicBez{
				P0: last,
				P1: fromFixedPoint(seg.Args[0]),
				P2: fromFixedPoint(seg.Args[1]),
				P3: fromFixedPoint(seg.Args[2]),
			}
			last = c.P3
			spline, ok := c.ApproxQuadSpline(CubicAccuracy)
			if !ok {
				morph.Logger().Warn("couldn't approximate cubic outline segment", "segment", c)
				els = append(els, morph.LineTo(last))
				continue
			}
			for q := range spline.Quads() {
				els = append(els, morph.QuadTo(q.P1, q.P2))
			}
		}
	}
	if open {
		els = append(els, morph.ClosePath())
	}
	return morph.FromElements(slices.Values(els))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func fromFixedPoint(pt fixed.Point26_6) morph.Point {
	return morph.Pt(fromFixed(pt.X), fromFixed(pt.Y))
}
