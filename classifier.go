package polybool

// Classify is the InclusionClassifier stage. It requires cr to already
// be sorted (SortCrossings), and a and b to have already been split
// (SplitEdges on both sides).
func Classify(a, b *Polygon, cr *Crossings, diag *Diagnostics) {
	classifyNonIntersectedFaces(a, b, cr.P)
	classifyNonIntersectedFaces(b, a, cr.Q)
	classifyCrossingEdges(a, b, cr.P)
	classifyCrossingEdges(b, a, cr.Q)
	classifyOverlaps(a, b, cr, diag)
}

func facesWithCrossings(recs []Crossing) map[FaceID]bool {
	m := make(map[FaceID]bool, len(recs))
	for _, r := range recs {
		m[r.Face] = true
	}
	return m
}

// classifyNonIntersectedFaces is step 1: faces untouched by any
// crossing get one inside/outside verdict shared by every edge (I4).
func classifyNonIntersectedFaces(x, other *Polygon, recs []Crossing) {
	crossed := facesWithCrossings(recs)
	for _, f := range x.Faces() {
		if crossed[f] {
			continue
		}
		x.SetFaceInclusion(f, other)
	}
}

// classifyCrossingEdges is step 2: every edge incident to a crossing is
// reclassified, with its boundary-adjacent endpoint forced to Boundary
// before the midpoint ray test runs.
func classifyCrossingEdges(x, other *Polygon, recs []Crossing) {
	for _, r := range recs {
		if r.EdgeBefore != NoEdge {
			x.ClearClassification(r.EdgeBefore)
		}
		if r.EdgeAfter != NoEdge {
			x.ClearClassification(r.EdgeAfter)
		}
	}
	for _, r := range recs {
		if r.EdgeBefore != NoEdge {
			x.SetEdgeBVEnd(r.EdgeBefore, Boundary)
			x.SetInclusion(r.EdgeBefore, other)
		}
		if r.EdgeAfter != NoEdge {
			x.SetEdgeBVStart(r.EdgeAfter, Boundary)
			x.SetInclusion(r.EdgeAfter, other)
		}
	}
}

// classifyOverlaps is step 3: adjacent crossing pairs bounding exactly
// one edge on A are matched against their counterpart chain on B (in
// either id order, since B's ring may run the opposite way at that
// point) and, when both sides agree on a single coincident edge, the
// pair is tagged Same or Opposite direction.
//
// SortedP is already grouped contiguously by FaceSeq (the sort key is
// (FaceSeq, ArcLength)), so each face's crossings form one contiguous
// run; "next on the same face" is simply the next entry in that run,
// wrapping to the run's start.
func classifyOverlaps(a, b *Polygon, cr *Crossings, diag *Diagnostics) {
	n := len(cr.SortedP)
	for i := 0; i < n; {
		faceSeq := cr.P[cr.SortedP[i]].FaceSeq
		j := i
		for j < n && cr.P[cr.SortedP[j]].FaceSeq == faceSeq {
			j++
		}
		group := cr.SortedP[i:j]
		for k, idx := range group {
			nextIdx := group[(k+1)%len(group)]
			if idx == nextIdx {
				continue
			}
			matchOverlapPair(a, b, cr, idx, nextIdx, diag)
		}
		i = j
	}
}

func matchOverlapPair(a, b *Polygon, cr *Crossings, curIdx, nextIdx int, diag *Diagnostics) {
	cur, next := cr.P[curIdx], cr.P[nextIdx]
	if cur.EdgeAfter == NoEdge || next.EdgeBefore == NoEdge || cur.EdgeAfter != next.EdgeBefore {
		return
	}
	edgeA := cur.EdgeAfter
	if a.EdgeBV(edgeA) != Boundary {
		return
	}

	qCur, qNext := cr.Q[cur.ID], cr.Q[next.ID]
	var edgeB EdgeID
	switch {
	case qCur.EdgeAfter != NoEdge && qCur.EdgeAfter == qNext.EdgeBefore && b.EdgeBV(qCur.EdgeAfter) == Boundary:
		edgeB = qCur.EdgeAfter
	case qNext.EdgeAfter != NoEdge && qNext.EdgeAfter == qCur.EdgeBefore && b.EdgeBV(qNext.EdgeAfter) == Boundary:
		edgeB = qNext.EdgeAfter
	default:
		diag.noteOverlapConflict()
		return
	}

	overlap := OverlapOpposite
	if directionsSame(a.EdgeShape(edgeA), b.EdgeShape(edgeB)) {
		overlap = OverlapSame
	}
	a.SetEdgeOverlap(edgeA, overlap)
	b.SetEdgeOverlap(edgeB, overlap)
}
