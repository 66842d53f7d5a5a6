package morph

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the path to a string of SVG path commands and writes it
// to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	first := true
	for el := range p.Elements() {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}

// SVGSyntaxError describes malformed SVG path data.
type SVGSyntaxError struct {
	// Offset is the byte offset at which the error was detected.
	Offset int
	Msg    string
}

func (err *SVGSyntaxError) Error() string {
	return fmt.Sprintf("morph: bad SVG path data at offset %d: %s", err.Offset, err.Msg)
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == ',' || data[i] == '\n' || data[i] == '\r' || data[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParseSVG parses SVG path data. It supports the M, L, H, V, Q, T, C, S and Z
// commands in their absolute and relative forms. Elliptical arcs are not
// supported.
func ParseSVG(s string) (Path, error) {
	argCounts := map[byte]int{
		'M': 2,
		'Z': 0,
		'L': 2,
		'H': 1,
		'V': 1,
		'C': 6,
		'S': 4,
		'Q': 4,
		'T': 2,
	}

	data := []byte(s)
	var els []PathElement
	var f [6]float64
	// cur is the current point, start the start of the current piece, and
	// ctrl the last control point, used for the smooth variants.
	var cur, start, ctrl Point
	prevCmd := byte(0)

	i := skipCommaWhitespace(data)
	if i < len(data) && isNumberStart(data[i]) {
		return nil, &SVGSyntaxError{i, "path data must start with a command"}
	}
	for {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		cmd := prevCmd
		if cmd == 0 || cmd == 'z' || cmd == 'Z' || !isNumberStart(data[i]) {
			cmd = data[i]
			i++
			i += skipCommaWhitespace(data[i:])
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := argCounts[upper]
		if !ok {
			return nil, &SVGSyntaxError{i - 1, fmt.Sprintf("unsupported command %q", cmd)}
		}
		for j := range n {
			num, m := pstrconv.ParseFloat(data[i:])
			if m == 0 {
				return nil, &SVGSyntaxError{i, fmt.Sprintf("command %q needs %d numbers", cmd, n)}
			}
			f[j] = num
			i += m
			i += skipCommaWhitespace(data[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}
		smooth := func(kinds string) Point {
			if prevCmd != 0 && strings.IndexByte(kinds, prevCmd) >= 0 {
				return cur.Translate(cur.Sub(ctrl))
			}
			return cur
		}

		next := cmd
		switch upper {
		case 'M':
			cur = abs(f[0], f[1])
			start = cur
			ctrl = cur
			els = append(els, MoveTo(cur))
			// Further coordinate pairs are implicit line commands.
			if rel {
				next = 'l'
			} else {
				next = 'L'
			}
		case 'Z':
			els = append(els, ClosePath())
			cur = start
			ctrl = cur
		case 'L':
			cur = abs(f[0], f[1])
			ctrl = cur
			els = append(els, LineTo(cur))
		case 'H':
			if rel {
				cur.X += f[0]
			} else {
				cur.X = f[0]
			}
			ctrl = cur
			els = append(els, LineTo(cur))
		case 'V':
			if rel {
				cur.Y += f[0]
			} else {
				cur.Y = f[0]
			}
			ctrl = cur
			els = append(els, LineTo(cur))
		case 'Q':
			cp := abs(f[0], f[1])
			end := abs(f[2], f[3])
			els = append(els, QuadTo(cp, end))
			ctrl, cur = cp, end
		case 'T':
			cp := smooth("QqTt")
			end := abs(f[0], f[1])
			els = append(els, QuadTo(cp, end))
			ctrl, cur = cp, end
		case 'C':
			cp1 := abs(f[0], f[1])
			cp2 := abs(f[2], f[3])
			end := abs(f[4], f[5])
			els = append(els, CubicTo(cp1, cp2, end))
			ctrl, cur = cp2, end
		case 'S':
			cp1 := smooth("CcSs")
			cp2 := abs(f[0], f[1])
			end := abs(f[2], f[3])
			els = append(els, CubicTo(cp1, cp2, end))
			ctrl, cur = cp2, end
		}
		prevCmd = next
	}

	return FromElements(slices.Values(els)), nil
}

// MustParseSVG is like [ParseSVG] but panics on error.
func MustParseSVG(s string) Path {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}
