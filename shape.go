package polybool

import "math"

// Shape is the geometric primitive an Edge owns: a straight segment or a
// circular arc. It is modeled as a small tagged capability set rather than
// a class hierarchy, since only these two kinds exist and they differ in
// only a handful of operations.
type Shape interface {
	Start() Point
	End() Point
	Length() float64
	Box() Rect
	// Split divides the shape at pt, returning (before, after). Either
	// half is nil when pt coincides with the corresponding endpoint
	// under the oracle's tolerance.
	Split(pt Point, o PrimitiveOracle) (Shape, Shape)
	// Intersect returns every point where the receiver crosses other,
	// including the (at most two) endpoints of a collinear overlap.
	Intersect(other Shape, o PrimitiveOracle) []Point
	Reverse() Shape
}

// LineShape is a straight segment from P0 to P1.
type LineShape struct {
	P0, P1 Point
}

func (s LineShape) Start() Point { return s.P0 }
func (s LineShape) End() Point   { return s.P1 }
func (s LineShape) Length() float64 {
	return s.P0.Dist(s.P1)
}

func (s LineShape) Box() Rect {
	return RectFromPoints(s.P0, s.P1)
}

func (s LineShape) Reverse() Shape {
	return LineShape{s.P1, s.P0}
}

// paramOf returns the parametric position of pt along s, assuming pt lies
// on the (infinite extension of the) segment.
func (s LineShape) paramOf(pt Point) float64 {
	d := s.P1.Sub(s.P0)
	len2 := d.Dot(d)
	if len2 == 0 {
		return 0
	}
	return pt.Sub(s.P0).Dot(d) / len2
}

func (s LineShape) Split(pt Point, o PrimitiveOracle) (Shape, Shape) {
	t := s.paramOf(pt)
	if o.EQ(t, 0) || o.PointEqual(pt, s.P0) {
		return nil, s
	}
	if o.EQ(t, 1) || o.PointEqual(pt, s.P1) {
		return s, nil
	}
	return LineShape{s.P0, pt}, LineShape{pt, s.P1}
}

func (s LineShape) Intersect(other Shape, o PrimitiveOracle) []Point {
	switch q := other.(type) {
	case LineShape:
		return lineLineIntersect(s.P0, s.P1, q.P0, q.P1, o)
	case ArcShape:
		return q.Intersect(s, o)
	default:
		return nil
	}
}

// lineLineIntersect returns the crossing point of two segments, or (for
// collinear overlapping segments) the up-to-two endpoints bounding their
// shared sub-segment. Grounded on the ray/segment intersection style of
// LineLine in the teacher's path_intersection.go, generalized to also
// report collinear overlap instead of treating it as "no intersection".
func lineLineIntersect(a0, a1, b0, b1 Point, o PrimitiveOracle) []Point {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.PerpDot(d2)
	if !o.EQ(denom, 0) {
		diff := b0.Sub(a0)
		t := diff.PerpDot(d2) / denom
		u := diff.PerpDot(d1) / denom
		if t >= -1e-9 && t <= 1+1e-9 && u >= -1e-9 && u <= 1+1e-9 {
			return []Point{a0.Interpolate(a1, clamp01(t))}
		}
		return nil
	}
	// Parallel: collinear only if b0-a0 is parallel to d1 too.
	if !o.EQ(b0.Sub(a0).PerpDot(d1), 0) {
		return nil
	}
	len2 := d1.Dot(d1)
	if len2 == 0 {
		return nil
	}
	t0 := b0.Sub(a0).Dot(d1) / len2
	t1 := b1.Sub(a0).Dot(d1) / len2
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	lo := math.Max(0, t0)
	hi := math.Min(1, t1)
	if lo > hi+1e-9 {
		return nil
	}
	lo, hi = clamp01(lo), clamp01(hi)
	pts := []Point{a0.Interpolate(a1, lo)}
	if !o.EQ(lo, hi) {
		pts = append(pts, a0.Interpolate(a1, hi))
	}
	return pts
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ArcShape is a circular arc centered at Center with the given Radius,
// running from angle Theta0 to Theta1. CCW records the sweep direction so
// that Start/End and Length agree regardless of how Theta0/Theta1 compare
// numerically.
type ArcShape struct {
	Center       Point
	Radius       float64
	Theta0, Theta1 float64
	CCW          bool
}

func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// sweep returns the non-negative angular span traveled from Theta0 to
// Theta1 in the arc's direction.
func (s ArcShape) sweep() float64 {
	t0, t1 := angleNorm(s.Theta0), angleNorm(s.Theta1)
	// Distinct angles a whole turn apart (e.g. 0 and 2*Pi) describe a full
	// circle, which would otherwise normalize to a zero span.
	if s.Theta0 != s.Theta1 && equal(t0, t1, 1e-9) {
		return 2 * math.Pi
	}
	if s.CCW {
		d := t1 - t0
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}
	d := t0 - t1
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

func (s ArcShape) pointAt(theta float64) Point {
	return Point{s.Center.X + s.Radius*math.Cos(theta), s.Center.Y + s.Radius*math.Sin(theta)}
}

func (s ArcShape) Start() Point { return s.pointAt(s.Theta0) }
func (s ArcShape) End() Point   { return s.pointAt(s.Theta1) }
func (s ArcShape) Length() float64 {
	return s.Radius * s.sweep()
}

func (s ArcShape) Box() Rect {
	pts := []Point{s.Start(), s.End()}
	for _, axis := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if s.angleInRange(axis) {
			pts = append(pts, s.pointAt(axis))
		}
	}
	return RectFromPoints(pts...)
}

// angleInRange reports whether theta lies within the arc's angular span,
// traveled in the arc's direction from Theta0.
func (s ArcShape) angleInRange(theta float64) bool {
	t0 := angleNorm(s.Theta0)
	theta = angleNorm(theta)
	span := s.sweep()
	var d float64
	if s.CCW {
		d = theta - t0
	} else {
		d = t0 - theta
	}
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= span+1e-9
}

// angleParam returns the fraction [0,1] of the arc's sweep at which theta
// occurs, assuming angleInRange(theta).
func (s ArcShape) angleParam(theta float64) float64 {
	span := s.sweep()
	if span == 0 {
		return 0
	}
	t0 := angleNorm(s.Theta0)
	theta = angleNorm(theta)
	var d float64
	if s.CCW {
		d = theta - t0
	} else {
		d = t0 - theta
	}
	if d < 0 {
		d += 2 * math.Pi
	}
	return d / span
}

func (s ArcShape) thetaAt(t float64) float64 {
	span := s.sweep()
	if s.CCW {
		return s.Theta0 + span*t
	}
	return s.Theta0 - span*t
}

func (s ArcShape) Reverse() Shape {
	return ArcShape{s.Center, s.Radius, s.Theta1, s.Theta0, !s.CCW}
}

func (s ArcShape) Split(pt Point, o PrimitiveOracle) (Shape, Shape) {
	if o.PointEqual(pt, s.Start()) {
		return nil, s
	}
	if o.PointEqual(pt, s.End()) {
		return s, nil
	}
	theta := math.Atan2(pt.Y-s.Center.Y, pt.X-s.Center.X)
	t := s.angleParam(theta)
	mid := s.thetaAt(t)
	return ArcShape{s.Center, s.Radius, s.Theta0, mid, s.CCW}, ArcShape{s.Center, s.Radius, mid, s.Theta1, s.CCW}
}

func (s ArcShape) Intersect(other Shape, o PrimitiveOracle) []Point {
	switch q := other.(type) {
	case LineShape:
		p0, p1, ok := intersectionRayCircle(q.P0, q.P1, s.Center, s.Radius)
		if !ok {
			return nil
		}
		return filterOnBoth(s, LineShape{q.P0, q.P1}, []Point{p0, p1}, o)
	case ArcShape:
		p0, p1, ok := intersectionCircleCircle(s.Center, s.Radius, q.Center, q.Radius)
		if !ok {
			return nil
		}
		return filterOnBoth(s, q, []Point{p0, p1}, o)
	default:
		return nil
	}
}

func onShape(s Shape, pt Point, o PrimitiveOracle) bool {
	switch v := s.(type) {
	case LineShape:
		t := v.paramOf(pt)
		if t < -1e-9 || t > 1+1e-9 {
			return false
		}
		closest := v.P0.Interpolate(v.P1, clamp01(t))
		return o.PointEqual(closest, pt)
	case ArcShape:
		if !o.EQ(pt.Dist(v.Center), v.Radius) {
			return false
		}
		theta := math.Atan2(pt.Y-v.Center.Y, pt.X-v.Center.X)
		return v.angleInRange(theta)
	default:
		return false
	}
}

func filterOnBoth(a, b Shape, candidates []Point, o PrimitiveOracle) []Point {
	var pts []Point
	for _, pt := range candidates {
		if onShape(a, pt, o) && onShape(b, pt, o) {
			pts = append(pts, pt)
		}
	}
	return dedupePoints(pts, o)
}

func dedupePoints(pts []Point, o PrimitiveOracle) []Point {
	var out []Point
	for _, pt := range pts {
		dup := false
		for _, q := range out {
			if o.PointEqual(pt, q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pt)
		}
	}
	return out
}

// intersectionRayCircle finds where the infinite line through l0,l1
// crosses the circle centered at c with radius r. Grounded on the
// teacher's path_intersection.go intersectionRayCircle.
func intersectionRayCircle(l0, l1, c Point, r float64) (Point, Point, bool) {
	d := l1.Sub(l0).Norm(1.0)
	D := l0.Sub(c).PerpDot(d)
	discriminant := r*r - D*D
	if discriminant < 0 {
		return Point{}, Point{}, false
	}
	discriminant = math.Sqrt(discriminant)

	ax := D * d.Y
	bx := d.X * discriminant
	if d.Y < 0.0 {
		bx = -bx
	}
	ay := -D * d.X
	by := math.Abs(d.Y) * discriminant
	return c.Add(Point{ax + bx, ay + by}), c.Add(Point{ax - bx, ay - by}), true
}

// intersectionCircleCircle finds the (up to two) points where two circles
// cross. Grounded on the teacher's path_intersection.go
// intersectionCircleCircle.
func intersectionCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) (Point, Point, bool) {
	R := c0.Sub(c1).Length()
	if R == 0 || R < math.Abs(r0-r1) || r0+r1 < R {
		return Point{}, Point{}, false
	}
	R2 := R * R

	k := r0*r0 - r1*r1
	a := 0.5
	b := 0.5 * k / R2
	c := 0.5 * math.Sqrt(2.0*(r0*r0+r1*r1)/R2-k*k/(R2*R2)-1.0)

	i0 := c0.Add(c1).Mul(a)
	i1 := c1.Sub(c0).Mul(b)
	i2 := Point{c1.Y - c0.Y, c0.X - c1.X}.Mul(c)
	return i0.Add(i1).Add(i2), i0.Add(i1).Sub(i2), true
}
