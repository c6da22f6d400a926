package polybool

// FilterDuplicates removes crossing records that describe the same
// polygon vertex reported twice (once per incident edge). It requires
// cr to already be sorted (SortCrossings). If it returns true, the
// caller must re-run SortCrossings: ids have been re-densified and
// squeeze clears the stale sorted views rather than patching them, per
// the rebuild-from-scratch reading of the source's dead re-sort path.
func FilterDuplicates(cr *Crossings, o PrimitiveOracle) bool {
	markedP := sweepSide(cr.P, cr.SortedP, cr.Q, o)
	markedQ := sweepSide(cr.Q, cr.SortedQ, cr.P, o)
	if markedP || markedQ {
		cr.squeeze()
		return true
	}
	return false
}

// sweepSide walks one sorted side, comparing each record against a
// rolling reference at the same arc position; a run that shares its
// counterpart's (edge_before, edge_after) with the reference's
// counterpart is a duplicate and both halves are marked for removal.
func sweepSide(recs []Crossing, sorted []int, counterpart []Crossing, o PrimitiveOracle) bool {
	marked := false
	ref := -1
	for _, idx := range sorted {
		if recs[idx].ID < 0 {
			continue // excluded by an earlier sweep on the other side
		}
		if ref < 0 {
			ref = idx
			continue
		}
		if !o.EQ(recs[idx].ArcLength, recs[ref].ArcLength) {
			ref = idx
			continue
		}
		curCp, refCp := counterpart[idx], counterpart[ref]
		if curCp.EdgeBefore == refCp.EdgeBefore && curCp.EdgeAfter == refCp.EdgeAfter {
			recs[idx].ID = -1
			counterpart[idx].ID = -1
			marked = true
			continue
		}
		ref = idx
	}
	return marked
}
