package polybool

// ExciseChains is the ChainExcisor stage for one polygon x. recs is
// x's crossing list (P for x==a, Q for x==b) and sorted its current
// sort permutation; isRes marks whether x is the pipeline's result
// carrier (true for A, false for B; InnerClip and OuterClip pass the
// same values as the full Boolean operations).
func ExciseChains(x *Polygon, op BooleanOp, sorted []int, recs []Crossing, isRes bool, o PrimitiveOracle) {
	n := len(sorted)
	for i := 0; i < n; {
		faceSeq := recs[sorted[i]].FaceSeq
		j := i
		for j < n && recs[sorted[j]].FaceSeq == faceSeq {
			j++
		}
		exciseFaceGroup(x, op, sorted[i:j], recs, isRes, o)
		i = j
	}
	deleteIrrelevantFaces(x, op, recs, isRes)
}

// samePull reports whether two crossings belong to the same maximal run
// of duplicated records at one geometric point.
func samePull(a, b Crossing, o PrimitiveOracle) bool {
	return a.EdgeBefore == b.EdgeBefore && a.EdgeAfter == b.EdgeAfter && o.PointEqual(a.Pt, b.Pt)
}

func buildPulls(group []int, recs []Crossing, o PrimitiveOracle) [][]int {
	var pulls [][]int
	i := 0
	for i < len(group) {
		j := i + 1
		for j < len(group) && samePull(recs[group[j]], recs[group[i]], o) {
			j++
		}
		pulls = append(pulls, group[i:j])
		i = j
	}
	return pulls
}

func exciseFaceGroup(x *Polygon, op BooleanOp, group []int, recs []Crossing, isRes bool, o PrimitiveOracle) {
	pulls := buildPulls(group, recs, o)
	for pi, pull := range pulls {
		next := pulls[(pi+1)%len(pulls)]
		edgeFrom := recs[pull[0]].EdgeAfter
		edgeTo := recs[next[0]].EdgeBefore
		if edgeFrom == NoEdge || edgeTo == NoEdge {
			continue // already excised from this side by a touching-point or prior pass
		}
		fromBV, toBV := x.EdgeBV(edgeFrom), x.EdgeBV(edgeTo)
		var overlap Overlap
		if edgeFrom == edgeTo {
			overlap = x.EdgeOverlap(edgeFrom)
		}
		if !shouldDeleteChain(op, isRes, fromBV, toBV, overlap) {
			continue
		}
		x.RemoveChain(edgeFrom, edgeTo)
		for _, idx := range pull {
			recs[idx].EdgeAfter = NoEdge
		}
		for _, idx := range next {
			recs[idx].EdgeBefore = NoEdge
		}
	}
}

// shouldDeleteChain implements the deletion rules a chain excision
// decides by.
//
// The OverlapSame case is asymmetric by design, not oversight: a
// coincident boundary edge running the same direction on both operands
// is deleted on the isRes side (A) and kept on the other (B), so the
// restitched result carries exactly one copy of a shared
// edge rather than two overlapping copies or none. OverlapOpposite
// coincident edges (e.g. A's outer boundary coinciding with B's hole
// boundary) are deleted on both sides unconditionally, since neither
// contributes to the result's exterior.
func shouldDeleteChain(op BooleanOp, isRes bool, fromBV, toBV BV, overlap Overlap) bool {
	if fromBV == Boundary && toBV == Boundary {
		switch overlap {
		case OverlapOpposite:
			return true
		case OverlapSame:
			return isRes
		default:
			return false
		}
	}
	switch op {
	case BooleanUnion:
		return fromBV == Inside && toBV == Inside
	case BooleanIntersect:
		return fromBV == Outside && toBV == Outside
	case BooleanSubtract:
		if isRes {
			return fromBV == Inside || toBV == Inside
		}
		return fromBV == Outside || toBV == Outside
	}
	return false
}

// deleteIrrelevantFaces removes whole faces that were never crossed and
// whose shared bv (I4) makes them irrelevant to op's result.
func deleteIrrelevantFaces(x *Polygon, op BooleanOp, recs []Crossing, isRes bool) {
	crossed := facesWithCrossings(recs)
	for _, f := range x.Faces() {
		if crossed[f] {
			continue
		}
		ids := x.FaceEdges(f)
		if len(ids) == 0 {
			continue
		}
		bv := x.EdgeBV(ids[0])
		del := false
		switch {
		case op == BooleanUnion && bv == Inside:
			del = true
		case op == BooleanIntersect && bv == Outside:
			del = true
		case op == BooleanSubtract && isRes && bv == Inside:
			del = true
		case op == BooleanSubtract && !isRes && bv == Outside:
			del = true
		}
		if del {
			x.DeleteFace(f)
		}
	}
}
