package morph

import (
	"iter"
	"math"
)

const maxSplineSplit = 100

// CubicBez is a cubic Bézier segment. Cubics can be measured, split and drawn,
// but matching and interpolation only accept lines and quadratics; use
// [CubicBez.ApproxQuadSpline] to convert.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Arclen returns the arc length of the cubic, subdividing until an estimate
// of the Gauss-Legendre quadrature error is below accuracy.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// Derivatives at t=0.5, without the factor 3 of the first derivative.
	// dm2 is half the third derivative.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5))
	dm1 := dd2.Add(dd1).Mul(0.5)
	dm2 := dd2.Sub(dd1).Mul(0.25)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// Cusp.
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

// Eval returns the point at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide splits the cubic at t=0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// Cmd returns the cubic as a [Command].
func (c CubicBez) Cmd() Command {
	return Command{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// quadratics yields at least one quadratic approximating an even split of the
// cubic in t. Neighbors don't share tangents, so this is only good enough for
// flattening.
func (c CubicBez) quadratics(accuracy float64) iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		// (36/√3)², from the midpoint approximation error bound.
		maxHypot2 := 432.0 * accuracy * accuracy
		p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
		p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
		err := p2x2.Sub(p1x2).Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)

		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			p1x2 := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
			p2x2 := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
			if !yield(QuadBez{seg.P0, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), seg.P3}) {
				return
			}
		}
	}
}

// ApproxQuadSpline returns a quadratic B-spline that stays within accuracy of
// the cubic and has the same tangents at the endpoints. It tries splines of up
// to maxSplineSplit quadratics and reports false if none of them fits.
func (c CubicBez) ApproxQuadSpline(accuracy float64) (QuadBSpline, bool) {
	for n := 1; n <= maxSplineSplit; n++ {
		if spline, ok := c.approxQuadSplineN(n, accuracy); ok {
			return spline, true
		}
	}
	return nil, false
}

// approxQuadSplineN fits a spline of n quadratics, one per cubic of an even
// split in t. Each quadratic control point is interpolated between the
// tangent extensions of its cubic; on-curve points are the midpoints of
// neighboring control points.
func (c CubicBez) approxQuadSplineN(n int, accuracy float64) (QuadBSpline, bool) {
	if n == 1 {
		q, ok := c.tryApproxQuadratic(accuracy)
		if !ok {
			return nil, false
		}
		return QuadBSpline{q.P0, q.P1, q.P2}, true
	}

	parts := make([]CubicBez, n)
	ctrl := make([]Point, n)
	for i := range n {
		parts[i] = c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
		ctrl[i] = parts[i].approxQuadControl(float64(i) / float64(n-1))
	}

	var prevErr Vec2
	q2 := c.P0
	for i, part := range parts {
		q0, q1 := q2, ctrl[i]
		if i+1 < n {
			q2 = q1.Midpoint(ctrl[i+1])
		} else {
			q2 = part.P3
		}
		endErr := q2.Sub(part.P3)
		if endErr.Hypot() > accuracy {
			return nil, false
		}
		// The difference between the quadratic, elevated to a cubic, and
		// the cubic part.
		d := CubicBez{
			Point(prevErr),
			Point(q0.Lerp(q1, 2.0/3.0).Sub(part.P1)),
			Point(q2.Lerp(q1, 2.0/3.0).Sub(part.P2)),
			Point(endErr),
		}
		if !d.fitsInside(accuracy) {
			return nil, false
		}
		prevErr = endErr
	}

	spline := make(QuadBSpline, 0, n+2)
	spline = append(spline, c.P0)
	spline = append(spline, ctrl...)
	spline = append(spline, c.P3)
	return spline, true
}

// fitsInside reports whether the curve stays within distance of the origin.
func (c CubicBez) fitsInside(distance float64) bool {
	if Vec2(c.P2).Hypot() <= distance && Vec2(c.P1).Hypot() <= distance {
		return true
	}
	mid := Vec2(c.P0).Add(Vec2(c.P1).Add(Vec2(c.P2)).Mul(3)).Add(Vec2(c.P3)).Mul(0.125)
	if mid.Hypot() > distance {
		return false
	}
	left, right := c.Subdivide()
	return left.fitsInside(distance) && right.fitsInside(distance)
}

// approxQuadControl interpolates between the points where the start and end
// tangents of the cubic would put the control point of a single quadratic.
func (c CubicBez) approxQuadControl(t float64) Point {
	p1 := c.P0.Translate(c.P1.Sub(c.P0).Mul(1.5))
	p2 := c.P3.Translate(c.P2.Sub(c.P3).Mul(1.5))
	return p1.Lerp(p2, t)
}

// tryApproxQuadratic approximates a cubic with a single quadratic that keeps
// the endpoint tangents, if that is within accuracy.
func (c CubicBez) tryApproxQuadratic(accuracy float64) (QuadBez, bool) {
	q1, ok := Line{c.P0, c.P1}.CrossingPoint(Line{c.P2, c.P3})
	if !ok {
		return QuadBez{}, false
	}
	d := CubicBez{
		Point{},
		Point(c.P0.Lerp(q1, 2.0/3.0).Sub(c.P1)),
		Point(c.P3.Lerp(q1, 2.0/3.0).Sub(c.P2)),
		Point{},
	}
	if !d.fitsInside(accuracy) {
		return QuadBez{}, false
	}
	return QuadBez{c.P0, q1, c.P3}, true
}
