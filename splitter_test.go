package polybool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSplitEdgesOverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	o := a.Oracle()
	diag := &Diagnostics{}
	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)

	fa := a.Faces()[0]
	before := len(a.FaceEdges(fa))
	test.T(t, before, 4)

	SplitEdges(a, cr.SortedP, cr.P, o)

	after := len(a.FaceEdges(fa))
	test.T(t, after, 6)

	for i := range cr.P {
		test.That(t, cr.P[i].EdgeBefore != NoEdge)
		test.That(t, cr.P[i].EdgeAfter != NoEdge)
		test.T(t, a.EdgeShape(cr.P[i].EdgeBefore).End(), cr.P[i].Pt)
		test.T(t, a.EdgeShape(cr.P[i].EdgeAfter).Start(), cr.P[i].Pt)
	}
}

func TestSplitEdgesBothSides(t *testing.T) {
	a, b := overlappingSquares()
	o := a.Oracle()
	diag := &Diagnostics{}
	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)
	SplitEdges(a, cr.SortedP, cr.P, o)
	SplitEdges(b, cr.SortedQ, cr.Q, o)

	fb := b.Faces()[0]
	test.T(t, len(b.FaceEdges(fb)), 6)
}
