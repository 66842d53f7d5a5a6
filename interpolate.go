package morph

import "math"

// Interpolator blends between two matched paths. It is immutable and safe for
// concurrent use; At may be called with progress values in any order.
type Interpolator struct {
	from, to   Path
	fromQ, toQ Path
}

// NewInterpolator validates a pair of matched paths, as returned by [Match],
// and returns an interpolator between them. The paths must have the same
// number of commands and consist only of lines and quadratics.
func NewInterpolator(from, to Path) (*Interpolator, error) {
	if len(from) != len(to) {
		return nil, Invariantf("can't interpolate between paths with %d and %d commands", len(from), len(to))
	}
	fromQ, err := liftPath(from)
	if err != nil {
		return nil, err
	}
	toQ, err := liftPath(to)
	if err != nil {
		return nil, err
	}
	return &Interpolator{
		from:  from.Clone(),
		to:    to.Clone(),
		fromQ: fromQ,
		toQ:   toQ,
	}, nil
}

// From returns a copy of the path at progress 0.
func (ip *Interpolator) From() Path { return ip.from.Clone() }

// To returns a copy of the path at progress 1.
func (ip *Interpolator) To() Path { return ip.to.Clone() }

// At returns the path at progress p. For p <= 0 it returns the first path and
// for p >= 1 the second, exactly as they were passed to [NewInterpolator].
// NaN is treated as 0.
//
// In between, corner markers of either side are rounded off before control
// points are interpolated linearly. The rounding of a side's corners grows
// as the side fades out: the first path's corners are rounded by min(p, 0.5)
// and the second path's by min(1-p, 0.5), measured as the fraction of arc
// length removed from each adjacent command. This makes corners that exist on
// only one side appear and disappear smoothly.
func (ip *Interpolator) At(p float64) Path {
	if p <= 0 || math.IsNaN(p) {
		return ip.from.Clone()
	}
	if p >= 1 {
		return ip.to.Clone()
	}
	a := roundCorners(ip.fromQ, min(p, 0.5))
	b := roundCorners(ip.toQ, min(1-p, 0.5))
	out := make(Path, len(a))
	for i := range a {
		out[i] = lerpCommand(a[i], b[i], p)
	}
	return out
}

// Interpolate interpolates between two single commands, lifting lines to
// quadratics. For p <= 0 and p >= 1 it returns a and b unmodified. NaN is
// treated as 0.
func Interpolate(a, b Command, p float64) (Command, error) {
	qa, err := a.Lifted()
	if err != nil {
		return Command{}, err
	}
	qb, err := b.Lifted()
	if err != nil {
		return Command{}, err
	}
	if p <= 0 || math.IsNaN(p) {
		return a, nil
	}
	if p >= 1 {
		return b, nil
	}
	return lerpCommand(qa, qb, p), nil
}

// lerpCommand interpolates the control points of two quadratic commands.
func lerpCommand(a, b Command, p float64) Command {
	out := a.quad().Lerp(b.quad(), p).Cmd()
	out.Lift = a.Lift || b.Lift
	return out
}

// roundCorners replaces every corner marker of p, which must consist of
// quadratics, by a short quadratic that connects the neighboring commands.
// Each neighbor is shortened by the fraction f of its arc length. A neighbor
// that belongs to another piece or is a marker itself is left alone, and the
// rounding starts or ends at the corner instead.
func roundCorners(p Path, f float64) Path {
	if f <= 0 {
		return p
	}
	// Fractions of arc length to remove from the start and end of each
	// command.
	var trimStart, trimEnd []float64
	hasCorner := false
	for i, cmd := range p {
		if !cmd.Vertex {
			continue
		}
		if !hasCorner {
			hasCorner = true
			trimStart = make([]float64, len(p))
			trimEnd = make([]float64, len(p))
		}
		if i > 0 && !p[i-1].Vertex && connected(p[i-1], cmd) {
			trimEnd[i-1] = f
		}
		if i+1 < len(p) && !p[i+1].Vertex && connected(cmd, p[i+1]) {
			trimStart[i+1] = f
		}
	}
	if !hasCorner {
		return p
	}

	out := make(Path, len(p))
	for i, cmd := range p {
		if cmd.Vertex || (trimStart[i] == 0 && trimEnd[i] == 0) {
			out[i] = cmd
			continue
		}
		l := cmd.Length()
		t0 := 0.0
		if trimStart[i] > 0 {
			t0 = cmd.SolveForArclen(l*trimStart[i], DefaultAccuracy)
		}
		t1 := 1.0
		if trimEnd[i] > 0 {
			t1 = cmd.SolveForArclen(l*(1-trimEnd[i]), DefaultAccuracy)
		}
		trimmed := cmd.Split(t0, t1)
		trimmed.Lift = cmd.Lift
		out[i] = trimmed
	}
	for i, cmd := range p {
		if !cmd.Vertex {
			continue
		}
		corner := cmd.P0
		start, end := corner, corner
		if i > 0 && trimEnd[i-1] > 0 {
			start = out[i-1].End()
		}
		if i+1 < len(p) && trimStart[i+1] > 0 {
			end = out[i+1].Start()
		}
		round := QuadBez{start, corner, end}.Cmd()
		round.Lift = cmd.Lift
		out[i] = round
	}
	return out
}
