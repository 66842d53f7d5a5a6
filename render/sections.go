package render

import (
	"math"

	"honnef.co/go/morph"
)

// ColorOptions controls how [Sections] divides a path into colored
// sections.
//
// At most one of SectionLength, RepeatCount and ColorCount may be set. If none
// is set, every palette color is used exactly once. At most one of Offset and
// RelativeOffset may be set.
type ColorOptions struct {
	// Offset shifts the sections along the path by an absolute arc length.
	Offset float64
	// RelativeOffset shifts the sections along the path by a fraction of the
	// section length.
	RelativeOffset float64

	// SectionLength is the arc length of each section.
	SectionLength float64
	// RepeatCount is the number of times the whole palette is repeated along
	// the path.
	RepeatCount int
	// ColorCount is the total number of sections along the path.
	ColorCount int
}

// Section is a range of arc length drawn in a single color.
type Section struct {
	// From and To delimit the half-open range [From, To). The last section
	// of a path includes its end.
	From, To float64
	// Color is an index into the palette.
	Color int
}

func (opts ColorOptions) validate(paletteLen int) error {
	if paletteLen <= 0 {
		return morph.Invariantf("empty palette")
	}
	if opts.Offset != 0 && opts.RelativeOffset != 0 {
		return morph.Invariantf("Offset and RelativeOffset are mutually exclusive")
	}
	n := 0
	if opts.SectionLength != 0 {
		n++
	}
	if opts.RepeatCount != 0 {
		n++
	}
	if opts.ColorCount != 0 {
		n++
	}
	if n > 1 {
		return morph.Invariantf("SectionLength, RepeatCount and ColorCount are mutually exclusive")
	}
	if opts.SectionLength < 0 || opts.RepeatCount < 0 || opts.ColorCount < 0 {
		return morph.Invariantf("negative section configuration")
	}
	if math.IsNaN(opts.Offset) || math.IsNaN(opts.RelativeOffset) || math.IsNaN(opts.SectionLength) {
		return morph.Invariantf("NaN in section configuration")
	}
	return nil
}

// Sections divides the arc length range [0, total] into consecutive sections
// and assigns them palette indices in rotation. The sections are aligned so
// that a section of color 0 starts at the offset.
//
// Sections returns nil for a non-positive total.
func Sections(total float64, paletteLen int, opts ColorOptions) ([]Section, error) {
	if err := opts.validate(paletteLen); err != nil {
		return nil, err
	}
	if !(total > 0) {
		return nil, nil
	}

	var l float64
	switch {
	case opts.SectionLength > 0:
		l = opts.SectionLength
	case opts.RepeatCount > 0:
		l = total / float64(opts.RepeatCount*paletteLen)
	case opts.ColorCount > 0:
		l = total / float64(opts.ColorCount)
	default:
		l = total / float64(paletteLen)
	}
	offset := opts.Offset
	if opts.RelativeOffset != 0 {
		offset = opts.RelativeOffset * l
	}

	// Index of the section containing 0.
	k := int(math.Floor(-offset / l))
	// Sections shorter than this are merged into their neighbors.
	eps := l * 1e-9
	var out []Section
	from := 0.0
	for from < total {
		to := offset + float64(k+1)*l
		if total-to <= eps {
			to = total
		}
		if to-from <= eps && to != total {
			// Merge slivers at the start into the next section.
			k++
			continue
		}
		out = append(out, Section{From: from, To: to, Color: mod(k, paletteLen)})
		from = to
		k++
	}
	return out, nil
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
