package polybool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestClassifyOverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	o := a.Oracle()
	diag := &Diagnostics{}

	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)
	SplitEdges(a, cr.SortedP, cr.P, o)
	SplitEdges(b, cr.SortedQ, cr.Q, o)
	Classify(a, b, cr, diag)

	// cr.P[0] bounds the crossing at (10,5): the edge before it (the
	// lower part of A's right edge) runs outside B, the edge after it
	// (the part of A's right edge nearest the shared corner) runs inside B.
	test.T(t, a.EdgeBV(cr.P[0].EdgeBefore), Outside)
	test.T(t, a.EdgeBV(cr.P[0].EdgeAfter), Inside)

	// cr.P[1] bounds the crossing at (5,10) on A's top edge: the part
	// closest to the shared corner is inside B, the far part is outside.
	test.T(t, a.EdgeBV(cr.P[1].EdgeBefore), Inside)
	test.T(t, a.EdgeBV(cr.P[1].EdgeAfter), Outside)

	test.T(t, diag.OverlapConflicts, 0)
}

func TestClassifyNonIntersectedFace(t *testing.T) {
	outer := NewPolygon(nil)
	fo := outer.NewRing(square(-10, -10, 30))
	inner := NewPolygon(nil)
	fi := inner.NewRing(square(0, 0, 5))
	diag := &Diagnostics{}

	cr := &Crossings{}
	Classify(outer, inner, cr, diag)

	// outer is much larger than inner, so none of its vertices lie
	// inside inner: every edge classifies as Outside relative to it.
	for _, id := range outer.FaceEdges(fo) {
		test.T(t, outer.EdgeBV(id), Outside)
	}
	// inner sits entirely within outer: every edge classifies as Inside.
	for _, id := range inner.FaceEdges(fi) {
		test.T(t, inner.EdgeBV(id), Inside)
	}
}
