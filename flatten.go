package morph

import (
	"iter"
	"math"
)

// Flatten approximates the path with polylines, one per piece. Each polyline
// starts with the piece's start point and ends with its end point.
//
// The tolerance value controls the maximum distance between the curved input
// segments and their polyline approximations. (In technical terms, this is the
// [Hausdorff distance]). The algorithm attempts to bound this distance
// by tolerance but this is not absolutely guaranteed. The appropriate value
// depends on the use, but for antialiased rendering, a value of 0.25 has been
// determined to give good results. The number of segments tends to scale as the
// inverse square root of tolerance.
//
// This algorithm is based on the blog post [Flattening quadratic Béziers].
// Cubic Béziers are first subdivided into quadratics, and the subdivision of
// the cubic is distributed over the quadratics fractionally.
//
// The polylines passed to the iterator are only valid until the next
// iteration.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
// [Hausdorff distance]: https://en.wikipedia.org/wiki/Hausdorff_distance
func (p Path) Flatten(tolerance float64) iter.Seq[[]Point] {
	return func(yield func([]Point) bool) {
		var buf []Point
		for i, cmd := range p {
			if i == 0 || !connected(p[i-1], cmd) {
				if i > 0 {
					if !yield(buf) {
						return
					}
				}
				buf = append(buf[:0], cmd.Start())
			}
			buf = flattenCommand(buf, cmd, tolerance)
		}
		if len(p) > 0 {
			yield(buf)
		}
	}
}

// flattenCommand appends the polyline approximation of cmd to dst, excluding
// the start point.
func flattenCommand(dst []Point, cmd Command, tolerance float64) []Point {
	// Proportion of tolerance budget that goes to cubic to quadratic conversion.
	const toQuadTol = 0.1

	sqrtTol := math.Sqrt(tolerance)
	switch cmd.Kind {
	case LineKind:
		return append(dst, cmd.P1)
	case QuadKind:
		q := cmd.quad()
		if cmd.IsZeroLength() {
			return append(dst, q.P2)
		}
		params := q.estimateSubdiv(sqrtTol)
		if math.IsNaN(params.val) || math.IsInf(params.val, 0) {
			// Collinear control points, such as lines lifted to quadratics.
			return append(dst, q.P2)
		}
		n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
		step := 1.0 / float64(n)
		for i := 1; i < n; i++ {
			u := float64(i) * step
			t := q.determineSubdivT(&params, u)
			dst = append(dst, q.Eval(t))
		}
		return append(dst, q.P2)
	case CubicKind:
		c := cmd.cubic()
		if cmd.IsZeroLength() {
			return append(dst, c.P3)
		}

		// Subdivide into quadratics, and estimate the number of
		// subdivisions required for each, summing to arrive at an
		// estimate for the number of subdivisions for the cubic.
		type quadParams struct {
			q      QuadBez
			params flattenParams
		}
		var quads []quadParams
		sqrtRemainTol := sqrtTol * math.Sqrt(1.0-toQuadTol)
		sum := 0.0
		for q := range c.quadratics(tolerance * toQuadTol) {
			params := q.estimateSubdiv(sqrtRemainTol)
			if math.IsNaN(params.val) || math.IsInf(params.val, 0) {
				continue
			}
			sum += params.val
			quads = append(quads, quadParams{q, params})
		}
		if sum == 0 {
			return append(dst, c.P3)
		}
		n := max(int(math.Ceil(0.5*sum/sqrtRemainTol)), 1)

		// Iterate through the quadratics, outputting the points of
		// subdivisions that fall within that quadratic.
		step := sum / float64(n)
		i := 1
		valSum := 0.0
	outer:
		for _, qp := range quads {
			target := float64(i) * step
			recipVal := 1.0 / qp.params.val
			for target < valSum+qp.params.val {
				u := (target - valSum) * recipVal
				t := qp.q.determineSubdivT(&qp.params, u)
				dst = append(dst, qp.q.Eval(t))
				i++
				if i == n {
					break outer
				}
				target = float64(i) * step
			}
			valSum += qp.params.val
		}
		return append(dst, c.P3)
	default:
		panic("unreachable")
	}
}
