package morph

import (
	"fmt"
	"math"
)

type CommandKind int

const (
	// A line segment.
	LineKind CommandKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k CommandKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quadratic"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a directed curve segment with explicit start point. It acts as a
// tagged union of [Line], [QuadBez] and [CubicBez]: lines use P0 and P1,
// quadratics P0 through P2 and cubics P0 through P3.
//
// Commands are values. Every operation returns a new command.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point

	// Vertex marks a zero-length command that was inserted at a sharp corner.
	// See [TagCorners].
	Vertex bool
	// Lift marks a command that starts a new piece even if it begins where
	// the previous command ended, as if the pen was lifted and put down again.
	Lift bool
}

// VertexMarker returns a zero-length quadratic at pt that is tagged as a
// corner.
func VertexMarker(pt Point) Command {
	return Command{Kind: QuadKind, P0: pt, P1: pt, P2: pt, Vertex: true}
}

func (cmd Command) line() Line      { return Line{cmd.P0, cmd.P1} }
func (cmd Command) quad() QuadBez   { return QuadBez{cmd.P0, cmd.P1, cmd.P2} }
func (cmd Command) cubic() CubicBez { return CubicBez{cmd.P0, cmd.P1, cmd.P2, cmd.P3} }

func (cmd Command) String() string {
	var s string
	switch cmd.Kind {
	case LineKind:
		s = fmt.Sprintf("Line(%s, %s)", cmd.P0, cmd.P1)
	case QuadKind:
		s = fmt.Sprintf("Quad(%s, %s, %s)", cmd.P0, cmd.P1, cmd.P2)
	case CubicKind:
		s = fmt.Sprintf("Cubic(%s, %s, %s, %s)", cmd.P0, cmd.P1, cmd.P2, cmd.P3)
	default:
		s = "InvalidCommand"
	}
	if cmd.Vertex {
		s += "[vertex]"
	}
	if cmd.Lift {
		s = "^" + s
	}
	return s
}

func (cmd Command) Start() Point {
	return cmd.P0
}

func (cmd Command) End() Point {
	switch cmd.Kind {
	case LineKind:
		return cmd.P1
	case QuadKind:
		return cmd.P2
	case CubicKind:
		return cmd.P3
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// Length returns the arc length of the command.
func (cmd Command) Length() float64 {
	return cmd.Arclen(DefaultAccuracy)
}

func (cmd Command) Arclen(accuracy float64) float64 {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().Length()
	case QuadKind:
		if cmd.IsZeroLength() {
			return 0
		}
		return cmd.quad().Arclen(accuracy)
	case CubicKind:
		if cmd.IsZeroLength() {
			return 0
		}
		return cmd.cubic().Arclen(accuracy)
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// At returns the point at parameter t, which is usually in [0, 1].
func (cmd Command) At(t float64) Point {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().Eval(t)
	case QuadKind:
		return cmd.quad().Eval(t)
	case CubicKind:
		return cmd.cubic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// Split returns the part of the command between parameters t0 and t1. An
// empty range yields a zero-length command. The result carries no flags.
func (cmd Command) Split(t0, t1 float64) Command {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().Subsegment(t0, t1).Cmd()
	case QuadKind:
		return cmd.quad().Subsegment(t0, t1).Cmd()
	case CubicKind:
		return cmd.cubic().Subsegment(t0, t1).Cmd()
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// SolveForArclen returns the parameter at which the arc length measured from
// the start of the command equals arclen. The result is clamped to [0, 1].
func (cmd Command) SolveForArclen(arclen float64, accuracy float64) float64 {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().SolveForArclen(arclen, accuracy)
	case QuadKind:
		if cmd.IsZeroLength() {
			return 0
		}
		return solveForArclen(cmd.quad(), arclen, accuracy)
	case CubicKind:
		if cmd.IsZeroLength() {
			return 0
		}
		return solveForArclen(cmd.cubic(), arclen, accuracy)
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// SplitN splits the command into n parts of equal arc length. The first part
// keeps the command's Lift flag. n less than 1 is treated as 1.
func (cmd Command) SplitN(n int) []Command {
	if n <= 1 {
		return []Command{cmd}
	}
	total := cmd.Length()
	out := make([]Command, n)
	t0 := 0.0
	for i := range n {
		t1 := 1.0
		if i < n-1 {
			t1 = cmd.SolveForArclen(total*float64(i+1)/float64(n), DefaultAccuracy)
		}
		out[i] = cmd.Split(t0, t1)
		t0 = t1
	}
	out[0].Lift = cmd.Lift
	return out
}

// Tangents returns the tangent vectors at the start and end of the command.
// Both are zero for a zero-length command.
func (cmd Command) Tangents() (Vec2, Vec2) {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().Tangents()
	case QuadKind:
		return cmd.quad().Tangents()
	case CubicKind:
		return cmd.cubic().Tangents()
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// IncomingAngle returns the direction, in radians, in which the command
// leaves its start point. It is NaN if the command has no direction.
func (cmd Command) IncomingAngle() float64 {
	d, _ := cmd.Tangents()
	return tangentAngle(d)
}

// OutgoingAngle returns the direction, in radians, in which the command
// arrives at its end point. It is NaN if the command has no direction.
func (cmd Command) OutgoingAngle() float64 {
	_, d := cmd.Tangents()
	return tangentAngle(d)
}

func tangentAngle(d Vec2) float64 {
	if d.Hypot2() == 0 {
		return math.NaN()
	}
	return d.Angle()
}

// IsZeroLength reports whether all of the command's points coincide.
func (cmd Command) IsZeroLength() bool {
	switch cmd.Kind {
	case LineKind:
		return cmd.P0 == cmd.P1
	case QuadKind:
		return cmd.P0 == cmd.P1 && cmd.P1 == cmd.P2
	case CubicKind:
		return cmd.P0 == cmd.P1 && cmd.P1 == cmd.P2 && cmd.P2 == cmd.P3
	default:
		return false
	}
}

// ToQuad returns the command as a quadratic Bézier. Lines are lifted to
// quadratics whose control point equals their start point. Cubics can't be
// represented and result in an [UnsupportedCommandKindError].
func (cmd Command) ToQuad() (QuadBez, error) {
	switch cmd.Kind {
	case LineKind:
		return cmd.line().Quad(), nil
	case QuadKind:
		return cmd.quad(), nil
	default:
		return QuadBez{}, &UnsupportedCommandKindError{Op: "lift to quadratic", Kind: cmd.Kind}
	}
}

// Lifted returns the command converted to a quadratic command, keeping its
// flags.
func (cmd Command) Lifted() (Command, error) {
	q, err := cmd.ToQuad()
	if err != nil {
		return Command{}, err
	}
	out := q.Cmd()
	out.Vertex = cmd.Vertex
	out.Lift = cmd.Lift
	return out, nil
}

// Reverse returns the command traversed in the opposite direction. The Vertex
// flag is kept, Lift is not.
func (cmd Command) Reverse() Command {
	var out Command
	switch cmd.Kind {
	case LineKind:
		out = cmd.line().Reverse().Cmd()
	case QuadKind:
		out = cmd.quad().Reverse().Cmd()
	case CubicKind:
		out = cmd.cubic().Reverse().Cmd()
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
	out.Vertex = cmd.Vertex
	return out
}

func (cmd Command) Transform(aff Affine) Command {
	cmd.P0 = cmd.P0.Transform(aff)
	cmd.P1 = cmd.P1.Transform(aff)
	switch cmd.Kind {
	case QuadKind:
		cmd.P2 = cmd.P2.Transform(aff)
	case CubicKind:
		cmd.P2 = cmd.P2.Transform(aff)
		cmd.P3 = cmd.P3.Transform(aff)
	}
	return cmd
}

func (cmd Command) Translate(v Vec2) Command {
	return cmd.Transform(Translate(v))
}

func (cmd Command) IsNaN() bool {
	return cmd.P0.IsNaN() || cmd.P1.IsNaN() || cmd.P2.IsNaN() || cmd.P3.IsNaN()
}
