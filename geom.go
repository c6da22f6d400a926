package polybool

import "math"

// Epsilon is the default tolerance set by NewOracle (and so by
// NewPolygon(nil)). A zero-value Oracle has a tolerance of 0.
const Epsilon = 1e-9

func equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Point is a point or vector in the plane.
type Point struct {
	X, Y float64
}

func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot is the z-component of the 3D cross product of p and q.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Length()
}

func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Norm returns p scaled to the given length, or the zero point if p is
// itself the zero vector.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if d == 0.0 {
		return Point{}
	}
	return p.Mul(length / d)
}

func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, W, H float64
}

func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func (r Rect) Add(s Rect) Rect {
	if r.W == 0 && r.H == 0 {
		return s
	}
	if s.W == 0 && s.H == 0 {
		return r
	}
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.X+r.W, s.X+s.W)
	y1 := math.Max(r.Y+r.H, s.Y+s.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Expand grows the rect by margin on every side; useful for epsilon-tolerant
// spatial-index queries.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.X - margin, r.Y - margin, r.W + 2*margin, r.H + 2*margin}
}

func (r Rect) Overlaps(s Rect) bool {
	return r.X <= s.X+s.W && s.X <= r.X+r.W && r.Y <= s.Y+s.H && s.Y <= r.Y+r.H
}
