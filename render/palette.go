package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// DefaultPalette is the palette used for colored strokes when none is
// configured.
var DefaultPalette = []color.Color{
	colornames.Crimson,
	colornames.Darkorange,
	colornames.Gold,
	colornames.Seagreen,
	colornames.Royalblue,
	colornames.Mediumpurple,
}

// ParseColor parses a color given as a hexadecimal "#rgb" or "#rrggbb"
// string or as an SVG color name, such as "steelblue".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c.Clamped(), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// ParsePalette parses a list of colors with [ParseColor].
func ParsePalette(names []string) ([]color.Color, error) {
	out := make([]color.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Blend interpolates between two colors in the CIE L*a*b* color space. The
// alpha channel is interpolated linearly.
func Blend(a, b color.Color, t float64) color.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	mixed := ca.BlendLab(cb, t).Clamped()
	r, g, bl := mixed.RGB255()
	_, _, _, aa := a.RGBA()
	_, _, _, ab := b.RGBA()
	alpha := float64(aa)*(1-t) + float64(ab)*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha/0xffff*0xff + 0.5)}
}

// opaque returns c without its alpha channel.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return color.NRGBA{A: 0xff}
	}
	n.A = 0xff
	return n
}

// BlendPalette blends two palettes entry by entry. The shorter palette is
// repeated to the length of the longer one.
func BlendPalette(a, b []color.Color, t float64) []color.Color {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	n := max(len(a), len(b))
	out := make([]color.Color, n)
	for i := range n {
		out[i] = Blend(a[i%len(a)], b[i%len(b)], t)
	}
	return out
}
