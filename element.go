package morph

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// piece.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the current piece.
	ClosePathKind
)

// PathElement is a drawing instruction in the style of PostScript. Unlike
// commands, elements don't carry their start point; it is implied by the
// preceding element.
//
// A valid sequence of elements has a MoveTo at the beginning of each piece.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// element returns the element corresponding to the command, discarding the
// command's start point.
func (cmd Command) element() PathElement {
	switch cmd.Kind {
	case LineKind:
		return LineTo(cmd.P1)
	case QuadKind:
		return QuadTo(cmd.P1, cmd.P2)
	case CubicKind:
		return CubicTo(cmd.P1, cmd.P2, cmd.P3)
	default:
		panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
	}
}

// Elements returns the path as a sequence of elements. Every piece starts
// with a MoveTo.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, cmd := range p {
			if i == 0 || !connected(p[i-1], cmd) {
				if !yield(MoveTo(cmd.Start())) {
					return
				}
			}
			if !yield(cmd.element()) {
				return
			}
		}
	}
}

// FromElements builds a path from a sequence of elements. ClosePath adds a
// line back to the start of the piece unless the current point is already
// there. A MoveTo that doesn't change the current point still starts a new
// piece.
//
// Drawing elements without a preceding MoveTo start at the origin.
func FromElements(seq iter.Seq[PathElement]) Path {
	var out Path
	var start, last Point
	lift := false
	emit := func(cmd Command) {
		cmd.Lift = lift && len(out) > 0
		lift = false
		out = append(out, cmd)
	}
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			start = el.P0
			last = el.P0
			lift = true
		case LineToKind:
			emit(Line{last, el.P0}.Cmd())
			last = el.P0
		case QuadToKind:
			emit(QuadBez{last, el.P0, el.P1}.Cmd())
			last = el.P1
		case CubicToKind:
			emit(CubicBez{last, el.P0, el.P1, el.P2}.Cmd())
			last = el.P2
		case ClosePathKind:
			if last != start {
				emit(Line{last, start}.Cmd())
				last = start
			}
			// Drawing after ClosePath continues from the start point in a
			// new piece.
			lift = true
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return out
}
