package polybool

import (
	"context"
	"log/slog"
)

// BooleanOp selects which set operation BooleanDriver runs.
type BooleanOp int

const (
	BooleanUnion     BooleanOp = 1
	BooleanIntersect BooleanOp = 2
	BooleanSubtract  BooleanOp = 3
)

func (op BooleanOp) String() string {
	switch op {
	case BooleanUnion:
		return "union"
	case BooleanIntersect:
		return "intersect"
	case BooleanSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// Unify returns the set union of A and B. Both inputs are cloned; A and
// B are left untouched.
func Unify(ctx context.Context, A, B *Polygon) (*Polygon, error) {
	return booleanOp(ctx, A, B, BooleanUnion)
}

// Intersect returns the set intersection of A and B.
func Intersect(ctx context.Context, A, B *Polygon) (*Polygon, error) {
	return booleanOp(ctx, A, B, BooleanIntersect)
}

// Subtract returns A minus B.
func Subtract(ctx context.Context, A, B *Polygon) (*Polygon, error) {
	return booleanOp(ctx, A, B, BooleanSubtract)
}

func booleanOp(ctx context.Context, A, B *Polygon, op BooleanOp) (*Polygon, error) {
	o := A.Oracle()
	diag := &Diagnostics{}
	a := A.Clone()
	b := B.Clone()
	if op == BooleanSubtract {
		b.Reverse()
	}

	cr, err := runToClassify(ctx, a, b, o, diag)
	if err != nil {
		return nil, err
	}
	ExciseChains(a, op, cr.SortedP, cr.P, true, o)
	ExciseChains(b, op, cr.SortedQ, cr.Q, false, o)
	if err := Restitch(a, b, cr, o); err != nil {
		return nil, err
	}
	slog.Debug("polybool: boolean op complete", "op", op, "droppedCrossings", diag.DroppedCrossings, "overlapConflicts", diag.OverlapConflicts)
	return a, nil
}

// InnerClip returns the boundary of A∩B, split by which operand each
// piece came from, without restitching into new faces.
func InnerClip(ctx context.Context, A, B *Polygon) ([]Shape, []Shape, error) {
	o := A.Oracle()
	diag := &Diagnostics{}
	a := A.Clone()
	b := B.Clone()

	cr, err := runToClassify(ctx, a, b, o, diag)
	if err != nil {
		return nil, nil, err
	}
	ExciseChains(a, BooleanIntersect, cr.SortedP, cr.P, true, o)
	ExciseChains(b, BooleanIntersect, cr.SortedQ, cr.Q, false, o)
	return survivingShapes(a), survivingShapes(b), nil
}

// OuterClip returns the boundary of A\B, taken from A only.
func OuterClip(ctx context.Context, A, B *Polygon) ([]Shape, error) {
	o := A.Oracle()
	diag := &Diagnostics{}
	a := A.Clone()
	b := B.Clone()
	b.Reverse()

	cr, err := runToClassify(ctx, a, b, o, diag)
	if err != nil {
		return nil, err
	}
	ExciseChains(a, BooleanSubtract, cr.SortedP, cr.P, true, o)
	ExciseChains(b, BooleanSubtract, cr.SortedQ, cr.Q, false, o)
	return survivingShapes(a), nil
}

// CalculateIntersections returns the ordered boundary-crossing points of
// A and B, stopping after DuplicateFilter.
func CalculateIntersections(ctx context.Context, A, B *Polygon) ([]Point, []Point, error) {
	o := A.Oracle()
	diag := &Diagnostics{}
	a := A.Clone()
	b := B.Clone()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	SplitEdges(a, cr.SortedP, cr.P, o)
	SplitEdges(b, cr.SortedQ, cr.Q, o)
	if FilterDuplicates(cr, o) {
		SortCrossings(cr, o)
	}

	pPts := make([]Point, len(cr.SortedP))
	for i, idx := range cr.SortedP {
		pPts[i] = cr.P[idx].Pt
	}
	qPts := make([]Point, len(cr.SortedQ))
	for i, idx := range cr.SortedQ {
		qPts[i] = cr.Q[idx].Pt
	}
	return pPts, qPts, nil
}

// runToClassify drives Collect through Classify: the shared prefix of
// every entry point except CalculateIntersections, which stops earlier.
// It checks ctx between phases so a caller with a deadline gets a
// prompt return; no phase itself is interruptible mid-flight.
func runToClassify(ctx context.Context, a, b *Polygon, o PrimitiveOracle, diag *Diagnostics) (*Crossings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	SplitEdges(a, cr.SortedP, cr.P, o)
	SplitEdges(b, cr.SortedQ, cr.Q, o)
	if FilterDuplicates(cr, o) {
		SortCrossings(cr, o)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	Classify(a, b, cr, diag)
	return cr, nil
}

// survivingShapes reads the clipped boundary straight off a polygon that
// has been excised but never restitched. RemoveChain only tombstones the
// edges it excises — it does not relink next/prev around the gap, since
// that relinking is Restitch's job — so FaceEdges still walks the entire
// original ring. InnerClip/OuterClip skip Restitch by design, so the
// removed edges must be filtered out here instead.
func survivingShapes(p *Polygon) []Shape {
	var shapes []Shape
	for _, f := range p.Faces() {
		for _, id := range p.FaceEdges(f) {
			if p.EdgeRemoved(id) {
				continue
			}
			shapes = append(shapes, p.EdgeShape(id))
		}
	}
	return shapes
}
