package polybool

import "math"

// PrimitiveOracle is the epsilon-tolerant scalar/point comparator the
// engine consumes. Shape.Intersect and Shape.Split take an oracle
// explicitly rather than reading a package-level tolerance, so an engine
// embedded in a server can run several Boolean calls concurrently with
// different tolerances.
type PrimitiveOracle interface {
	EQ(a, b float64) bool
	LT(a, b float64) bool
	GT(a, b float64) bool
	PointEqual(a, b Point) bool
}

// Oracle is the concrete PrimitiveOracle used throughout this repository.
// The pipeline's arc-length and point comparisons go through it; the
// parameter range checks inside shape.go's segment and arc tests use a
// fixed 1e-9 slack instead.
type Oracle struct {
	Eps float64
}

// NewOracle returns an Oracle with the package default tolerance.
func NewOracle() *Oracle {
	return &Oracle{Eps: Epsilon}
}

func (o *Oracle) EQ(a, b float64) bool {
	return math.Abs(a-b) <= o.Eps
}

func (o *Oracle) LT(a, b float64) bool {
	return a < b-o.Eps
}

func (o *Oracle) GT(a, b float64) bool {
	return a > b+o.Eps
}

func (o *Oracle) PointEqual(a, b Point) bool {
	return a.Dist(b) <= o.Eps
}
