package morph

import (
	"math"
)

// DefaultCornerThreshold is the default minimum change in direction, in
// radians, that counts as a corner. It is half a degree.
const DefaultCornerThreshold = 0.5 * math.Pi / 180

// CornerOptions specifies optional settings for [TagCorners].
type CornerOptions struct {
	// Threshold is the minimum absolute change in direction, in radians,
	// between two connected commands for the joint to count as a corner. The
	// zero value means [DefaultCornerThreshold].
	Threshold float64
}

func (opts *CornerOptions) threshold() float64 {
	if opts == nil || opts.Threshold <= 0 {
		return DefaultCornerThreshold
	}
	return opts.Threshold
}

// angleDiff returns b - a normalized to (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// CornerAngle returns the change in direction when moving from prev to next,
// in radians. It is NaN if either command has no direction at the joint.
func CornerAngle(prev, next Command) float64 {
	return angleDiff(prev.OutgoingAngle(), next.IncomingAngle())
}

// TagCorners returns a copy of p in which every sharp joint between two
// connected commands is marked by a [VertexMarker]. Joints whose change in
// direction is undefined, such as those involving zero-length commands, are
// never marked. Joints between pieces, including the one between the end and
// the start of a closed piece, are not marked either.
//
// A command that ends up between two markers is bisected, so that no two
// markers are separated by only a single command.
func TagCorners(p Path, opts *CornerOptions) Path {
	if len(p) == 0 {
		return nil
	}
	threshold := opts.threshold()

	out := make(Path, 0, len(p))
	out = append(out, p[0])
	for i := 1; i < len(p); i++ {
		prev, next := p[i-1], p[i]
		if connected(prev, next) && !prev.Vertex && !next.Vertex {
			d := CornerAngle(prev, next)
			if !math.IsNaN(d) && math.Abs(d) >= threshold {
				out = append(out, VertexMarker(prev.End()))
			}
		}
		out = append(out, next)
	}

	var n int
	for i := 1; i+1 < len(out); i++ {
		if out[i-1].Vertex && out[i+1].Vertex && !out[i].Vertex {
			n++
		}
	}
	if n == 0 {
		return out
	}

	split := make(Path, 0, len(out)+n)
	for i, cmd := range out {
		if i > 0 && i+1 < len(out) && out[i-1].Vertex && out[i+1].Vertex && !cmd.Vertex {
			halves := cmd.SplitN(2)
			split = append(split, halves...)
			continue
		}
		split = append(split, cmd)
	}
	Logger().Debug("bisected commands between corners", "count", n)
	return split
}
