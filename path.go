package morph

// ConnectTolerance is the absolute distance within which the end of one
// command and the start of the next are considered to coincide.
const ConnectTolerance = 1e-9

// Path is an ordered sequence of commands. It may consist of several pieces:
// a new piece starts wherever a command doesn't begin where the previous one
// ended, or where a command has its Lift flag set. There is no explicit move
// operation.
//
// The empty path is valid and has zero length.
type Path []Command

// connected reports whether next continues the piece that prev belongs to.
func connected(prev, next Command) bool {
	return !next.Lift && prev.End().Near(next.Start(), ConnectTolerance)
}

// Length returns the sum of the arc lengths of all commands.
func (p Path) Length() float64 {
	var sum float64
	for _, cmd := range p {
		sum += cmd.Length()
	}
	return sum
}

// Start returns the start point of the first command, or the zero point for
// an empty path.
func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0].Start()
}

// End returns the end point of the last command, or the zero point for an
// empty path.
func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].End()
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Pieces partitions the path into maximal runs of connected commands. The
// returned paths share storage with p.
func (p Path) Pieces() []Path {
	if len(p) == 0 {
		return nil
	}
	var out []Path
	start := 0
	for i := 1; i < len(p); i++ {
		if !connected(p[i-1], p[i]) {
			out = append(out, p[start:i:i])
			start = i
		}
	}
	out = append(out, p[start:len(p):len(p)])
	return out
}

// NumPieces returns len(p.Pieces()) without allocating.
func (p Path) NumPieces() int {
	if len(p) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(p); i++ {
		if !connected(p[i-1], p[i]) {
			n++
		}
	}
	return n
}

// Join concatenates pieces into a single path. The first command of every
// piece but the first is marked with Lift, so that the result has exactly
// len(pieces) pieces, provided no piece is empty and every piece is itself
// connected.
func Join(pieces ...Path) Path {
	var n int
	for _, piece := range pieces {
		n += len(piece)
	}
	out := make(Path, 0, n)
	for _, piece := range pieces {
		if len(piece) == 0 {
			continue
		}
		start := len(out)
		out = append(out, piece...)
		out[start].Lift = start > 0
	}
	return out
}

// Reverse returns the path traversed backwards. The order of commands is
// reversed and each command is flipped. Piece boundaries are preserved.
func (p Path) Reverse() Path {
	if len(p) == 0 {
		return nil
	}
	pieces := p.Pieces()
	out := make(Path, 0, len(p))
	for i := len(pieces) - 1; i >= 0; i-- {
		piece := pieces[i]
		start := len(out)
		for j := len(piece) - 1; j >= 0; j-- {
			out = append(out, piece[j].Reverse())
		}
		if i < len(pieces)-1 {
			// The boundary between pieces i and i+1 is now in front of
			// piece i.
			out[start].Lift = pieces[i+1][0].Lift
		}
	}
	return out
}

// Transform returns the path with every command transformed by aff.
func (p Path) Transform(aff Affine) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, cmd := range p {
		out[i] = cmd.Transform(aff)
	}
	return out
}

func (p Path) Translate(v Vec2) Path {
	return p.Transform(Translate(v))
}

// BoundingBox returns the smallest rectangle containing all points, including
// control points, of all commands. It returns the zero rectangle for an empty
// path.
func (p Path) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{X0: p[0].P0.X, Y0: p[0].P0.Y, X1: p[0].P0.X, Y1: p[0].P0.Y}
	for _, cmd := range p {
		r = r.UnionPoint(cmd.P0).UnionPoint(cmd.P1)
		switch cmd.Kind {
		case QuadKind:
			r = r.UnionPoint(cmd.P2)
		case CubicKind:
			r = r.UnionPoint(cmd.P2).UnionPoint(cmd.P3)
		}
	}
	return r
}

// NumVertices returns the number of corner markers in the path.
func (p Path) NumVertices() int {
	var n int
	for _, cmd := range p {
		if cmd.Vertex {
			n++
		}
	}
	return n
}
