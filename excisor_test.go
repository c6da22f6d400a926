package polybool

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestShouldDeleteChain(t *testing.T) {
	tests := []struct {
		op      BooleanOp
		isRes   bool
		from    BV
		to      BV
		overlap Overlap
		want    bool
	}{
		{BooleanUnion, true, Inside, Inside, OverlapNone, true},
		{BooleanUnion, true, Outside, Outside, OverlapNone, false},
		{BooleanUnion, true, Inside, Outside, OverlapNone, false},
		{BooleanIntersect, true, Outside, Outside, OverlapNone, true},
		{BooleanIntersect, true, Inside, Inside, OverlapNone, false},
		{BooleanSubtract, true, Inside, Inside, OverlapNone, true},
		{BooleanSubtract, false, Outside, Outside, OverlapNone, true},
		{BooleanSubtract, true, Outside, Outside, OverlapNone, false},
		{BooleanUnion, true, Boundary, Boundary, OverlapSame, true},
		{BooleanUnion, false, Boundary, Boundary, OverlapSame, false},
		{BooleanUnion, true, Boundary, Boundary, OverlapOpposite, true},
		{BooleanUnion, false, Boundary, Boundary, OverlapOpposite, true},
		{BooleanUnion, true, Boundary, Boundary, OverlapNone, false},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := shouldDeleteChain(tt.op, tt.isRes, tt.from, tt.to, tt.overlap)
			test.T(t, got, tt.want)
		})
	}
}

func TestBuildPulls(t *testing.T) {
	o := NewOracle()
	recs := []Crossing{
		{EdgeBefore: 1, EdgeAfter: 2, Pt: Point{0, 0}},
		{EdgeBefore: 1, EdgeAfter: 2, Pt: Point{0, 0}},
		{EdgeBefore: 3, EdgeAfter: 4, Pt: Point{1, 1}},
	}
	pulls := buildPulls([]int{0, 1, 2}, recs, o)
	test.T(t, len(pulls), 2)
	test.T(t, len(pulls[0]), 2)
	test.T(t, len(pulls[1]), 1)
}

func TestExciseChainsUnion(t *testing.T) {
	a, b := overlappingSquares()
	o := a.Oracle()
	diag := &Diagnostics{}

	cr := CollectIntersections(a, b, o, diag)
	SortCrossings(cr, o)
	SplitEdges(a, cr.SortedP, cr.P, o)
	SplitEdges(b, cr.SortedQ, cr.Q, o)
	Classify(a, b, cr, diag)

	ExciseChains(a, BooleanUnion, cr.SortedP, cr.P, true, o)
	ExciseChains(b, BooleanUnion, cr.SortedQ, cr.Q, false, o)

	// Union deletes A's and B's inside-inside chains (the parts of each
	// boundary enclosed by the other); RemoveChain only tombstones, the
	// ring itself is relinked later by Restitch, so check surviving
	// (non-removed) edges directly rather than walking the stale ring.
	sawRemovedA := false
	for _, e := range a.edges {
		if e.removed {
			sawRemovedA = true
			continue
		}
		test.That(t, e.bv != Inside)
	}
	test.That(t, sawRemovedA)

	sawRemovedB := false
	for _, e := range b.edges {
		if e.removed {
			sawRemovedB = true
			continue
		}
		test.That(t, e.bv != Inside)
	}
	test.That(t, sawRemovedB)
}
