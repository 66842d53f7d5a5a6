package morph

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center) < c.Radius*c.Radius
}

// Path returns a closed path of quadratic Béziers approximating the circle
// within tolerance. The path starts at the rightmost point and runs in the
// direction of positive angles. It consists of at least four commands.
func (c Circle) Path(tolerance float64) Path {
	r := math.Abs(c.Radius)
	if r == 0 {
		return Path{QuadBez{c.Center, c.Center, c.Center}.Cmd()}
	}
	// The midpoint of a quadratic arc spanning th radians is off by about
	// r·th⁴/128.
	n := 4
	if tolerance > 0 {
		n = max(n, int(math.Ceil(2*math.Pi*math.Pow(r/(128*tolerance), 0.25))))
	}
	return c.Arc(0, 2*math.Pi, n)
}

// Arc returns n quadratic Béziers approximating the arc from startAngle,
// sweeping sweepAngle radians. Each quadratic's control point is the
// intersection of the tangents at its endpoints, so n should be large enough
// that no quadratic spans more than a quarter turn.
func (c Circle) Arc(startAngle, sweepAngle float64, n int) Path {
	n = max(n, 1)
	step := sweepAngle / float64(n)
	k := 1 / math.Cos(step/2)
	out := make(Path, n)
	p0 := pointOnCircle(c.Center, c.Radius, startAngle)
	for i := range n {
		th0 := startAngle + step*float64(i)
		var p2 Point
		if i == n-1 && math.Abs(sweepAngle) == 2*math.Pi {
			p2 = out[0].P0
		} else {
			p2 = pointOnCircle(c.Center, c.Radius, th0+step)
		}
		p1 := pointOnCircle(c.Center, c.Radius*k, th0+step/2)
		out[i] = QuadBez{p0, p1, p2}.Cmd()
		p0 = p2
	}
	return out
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{c.Center.Translate(v), c.Radius}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{c.Center.X - r, c.Center.Y - r, c.Center.X + r, c.Center.Y + r}
}

// Perimeter returns the circumference of the circle.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}
