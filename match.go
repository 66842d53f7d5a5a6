package morph

import (
	"log/slog"
	"math"
	"slices"
)

// DefaultCornerWeight is the default factor applied to the length of commands
// next to a corner when choosing which command to subdivide.
const DefaultCornerWeight = 0.1

// ReorientPolicy controls whether [Match] may reverse pieces of its second
// argument so that they run in the same direction as their counterparts.
type ReorientPolicy int

const (
	// ReorientNever keeps all pieces in their original direction. The
	// comparison of both orientations is still computed and logged.
	ReorientNever ReorientPolicy = iota
	// ReorientNearest reverses a piece of the second path if that reduces
	// the summed distance between corresponding start and end points.
	ReorientNearest
)

func (pol ReorientPolicy) String() string {
	switch pol {
	case ReorientNever:
		return "never"
	case ReorientNearest:
		return "nearest"
	default:
		return "ReorientPolicy(invalid)"
	}
}

// MatchOptions specifies optional settings for [Match].
type MatchOptions struct {
	// CornerWeight scales the length of commands adjacent to a corner marker
	// when distributing subdivisions, biasing new breakpoints away from
	// corners. The zero value means [DefaultCornerWeight].
	CornerWeight float64
	// Reorient controls whether pieces may be reversed.
	Reorient ReorientPolicy
	// Logger receives debug output about balancing decisions. If nil, the
	// package logger is used.
	Logger *slog.Logger
}

func (opts *MatchOptions) cornerWeight() float64 {
	if opts == nil || opts.CornerWeight <= 0 {
		return DefaultCornerWeight
	}
	return opts.CornerWeight
}

func (opts *MatchOptions) reorient() ReorientPolicy {
	if opts == nil {
		return ReorientNever
	}
	return opts.Reorient
}

func (opts *MatchOptions) logger() *slog.Logger {
	if opts == nil || opts.Logger == nil {
		return Logger()
	}
	return opts.Logger
}

// Match restructures two paths so that they can be interpolated command by
// command. The results have the same number of pieces, corresponding pieces
// have the same number of commands, and all commands are quadratics. Corner
// markers that end up at the same index in both results are removed.
//
// Match only supports lines and quadratics. Cubics result in an
// [UnsupportedCommandKindError]. Matching two empty paths returns two empty
// paths; matching an empty path against a non-empty one fails with
// [ErrInvariantViolation].
func Match(a, b Path, opts *MatchOptions) (Path, Path, error) {
	for _, p := range [2]Path{a, b} {
		for _, cmd := range p {
			if cmd.Kind != LineKind && cmd.Kind != QuadKind {
				return nil, nil, &UnsupportedCommandKindError{Op: "match", Kind: cmd.Kind}
			}
		}
	}
	switch {
	case len(a) == 0 && len(b) == 0:
		return nil, nil, nil
	case len(a) == 0 || len(b) == 0:
		return nil, nil, Invariantf("can't match an empty path against one with %d commands", max(len(a), len(b)))
	}

	log := opts.logger()
	weight := opts.cornerWeight()

	pa := a.Pieces()
	pb := b.Pieces()
	switch {
	case len(pa) < len(pb):
		log.Debug("balancing pieces", "side", "a", "have", len(pa), "want", len(pb))
		pa = splitPieces(pa, len(pb), weight, log)
	case len(pb) < len(pa):
		log.Debug("balancing pieces", "side", "b", "have", len(pb), "want", len(pa))
		pb = splitPieces(pb, len(pa), weight, log)
	}
	if len(pa) != len(pb) {
		return nil, nil, Invariantf("piece counts differ after balancing: %d != %d", len(pa), len(pb))
	}

	outA := make([]Path, 0, len(pa))
	outB := make([]Path, 0, len(pb))
	for i := range pa {
		ap, bp := pa[i], pb[i]

		fwd, rev := orientationCosts(ap, bp)
		reverse := rev < fwd && opts.reorient() == ReorientNearest
		log.Debug("piece orientation", "piece", i, "forward", fwd, "reversed", rev, "reversing", reverse)
		if reverse {
			bp = bp.Reverse()
		}

		switch {
		case len(ap) < len(bp):
			ap = growCommands(ap, len(bp), weight)
		case len(bp) < len(ap):
			bp = growCommands(bp, len(ap), weight)
		}
		if len(ap) != len(bp) {
			return nil, nil, Invariantf("piece %d: command counts differ after balancing: %d != %d", i, len(ap), len(bp))
		}

		ap, err := liftPath(ap)
		if err != nil {
			return nil, nil, err
		}
		bp, err = liftPath(bp)
		if err != nil {
			return nil, nil, err
		}

		for j := len(ap) - 1; j >= 0; j-- {
			if ap[j].Vertex && bp[j].Vertex {
				ap = slices.Delete(ap, j, j+1)
				bp = slices.Delete(bp, j, j+1)
			}
		}
		if len(ap) == 0 {
			// Both pieces consisted of nothing but shared corners.
			continue
		}
		outA = append(outA, ap)
		outB = append(outB, bp)
	}
	return Join(outA...), Join(outB...), nil
}

// orientationCosts returns the summed distance between corresponding
// endpoints of a and b, once with b in its original direction and once with b
// reversed.
func orientationCosts(a, b Path) (fwd, rev float64) {
	aS, aE := a.Start(), a.End()
	bS, bE := b.Start(), b.End()
	fwd = aS.Distance(bS) + aE.Distance(bE)
	rev = aS.Distance(bE) + aE.Distance(bS)
	return fwd, rev
}

// liftPath returns a copy of p in which every command is a quadratic.
func liftPath(p Path) (Path, error) {
	out := make(Path, len(p))
	for i, cmd := range p {
		q, err := cmd.Lifted()
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// breakableCorner returns the index of the last marker in piece that has at
// least one command on either side, or -1.
func breakableCorner(piece Path) int {
	for k := len(piece) - 2; k > 0; k-- {
		if piece[k].Vertex {
			return k
		}
	}
	return -1
}

// splitPieces divides pieces into n pieces. It first breaks pieces at
// corners, then distributes the remaining breaks proportionally to arc length.
func splitPieces(pieces []Path, n int, cornerWeight float64, log *slog.Logger) []Path {
	pieces = slices.Clone(pieces)

	for len(pieces) < n {
		best := -1
		bestLen := math.Inf(-1)
		for i, piece := range pieces {
			if breakableCorner(piece) < 0 {
				continue
			}
			if l := piece.Length(); l > bestLen {
				best, bestLen = i, l
			}
		}
		if best < 0 {
			break
		}
		piece := pieces[best]
		k := breakableCorner(piece)
		log.Debug("breaking piece at corner", "piece", best, "command", k)
		before := piece[:k:k]
		after := piece[k+1:]
		pieces = slices.Replace(pieces, best, best+1, before, after)
	}

	extra := n - len(pieces)
	if extra <= 0 {
		return pieces
	}
	weights := make([]float64, len(pieces))
	for i, piece := range pieces {
		weights[i] = piece.Length()
	}
	counts := allocate(weights, nil, extra)
	out := make([]Path, 0, n)
	for i, piece := range pieces {
		if counts[i] > 1 {
			log.Debug("dividing piece", "piece", i, "parts", counts[i])
		}
		out = append(out, dividePiece(piece, counts[i], cornerWeight)...)
	}
	return out
}

// dividePiece divides piece into n non-empty pieces. Breaks are placed at the
// command boundaries closest to even arc length intervals. If piece has fewer
// than n commands, commands are subdivided first.
func dividePiece(piece Path, n int, cornerWeight float64) []Path {
	if n <= 1 {
		return []Path{piece}
	}
	if len(piece) <= n {
		piece = growCommands(piece, n, cornerWeight)
		out := make([]Path, len(piece))
		for i := range piece {
			out[i] = piece[i : i+1 : i+1]
		}
		return out
	}

	s := NewSplitter(piece)
	total := s.Length()
	out := make([]Path, 0, n)
	prev := 0
	for k := 1; k < n; k++ {
		target := total * float64(k) / float64(n)
		// Leave room for the remaining n-k pieces.
		lo, hi := prev+1, len(piece)-(n-k)
		cut := lo
		bestDist := math.Inf(1)
		for c := lo; c <= hi; c++ {
			if d := math.Abs(s.Entry(c).Start - target); d < bestDist {
				cut, bestDist = c, d
			}
		}
		out = append(out, piece[prev:cut:cut])
		prev = cut
	}
	out = append(out, piece[prev:])
	return out
}

// growCommands subdivides commands of piece until it has n commands.
// Subdivisions are distributed by arc length, with commands next to corner
// markers weighted by cornerWeight. Markers themselves are only subdivided if
// the piece has no other commands.
func growCommands(piece Path, n int, cornerWeight float64) Path {
	extra := n - len(piece)
	if extra <= 0 {
		return piece
	}
	weights := make([]float64, len(piece))
	markers := make([]bool, len(piece))
	for i, cmd := range piece {
		markers[i] = cmd.Vertex
		w := cmd.Length()
		if (i > 0 && piece[i-1].Vertex) || (i+1 < len(piece) && piece[i+1].Vertex) {
			w *= cornerWeight
		}
		weights[i] = w
	}
	counts := allocate(weights, markers, extra)
	out := make(Path, 0, n)
	for i, cmd := range piece {
		if counts[i] == 1 {
			out = append(out, cmd)
			continue
		}
		parts := cmd.SplitN(counts[i])
		parts[0].Vertex = cmd.Vertex
		out = append(out, parts...)
	}
	return out
}
