package polybool

// Restitch is the Restitcher stage: it merges B's surviving edges into
// A's arena, cross-links the two boundaries at every surviving
// crossing, and walks the resulting cycles into fresh faces. cr.Q is
// overwritten in place with handles translated into A's arena, since B
// ceases to be an independent polygon once this returns.
//
// A SAME-overlap boundary chain (A and B sharing an edge in the same
// direction) only ever keeps B's copy; see shouldDeleteChain. Restitch
// itself doesn't special-case this — by the time a chain reaches here,
// ExciseChains has already removed A's duplicate, so the merged result
// naturally carries one edge instead of two coincident ones.
func Restitch(a, b *Polygon, cr *Crossings, o PrimitiveOracle) error {
	edgeMap, faceMap := a.MergeFrom(b)
	translated := make([]Crossing, len(cr.Q))
	for i, q := range cr.Q {
		t := q
		if q.EdgeBefore != NoEdge {
			t.EdgeBefore = edgeMap[q.EdgeBefore]
		}
		if q.EdgeAfter != NoEdge {
			t.EdgeAfter = edgeMap[q.EdgeAfter]
		}
		if q.Face != NoFace {
			t.Face = faceMap[q.Face]
		}
		translated[i] = t
	}

	for i := range cr.P {
		swapLinks(a, &cr.P[i], &translated[i])
	}
	if err := resolveTouchingPoints(a, cr.P, o); err != nil {
		return err
	}
	if err := resolveTouchingPoints(a, translated, o); err != nil {
		return err
	}

	discardOldFaces(a, cr.P, translated)
	restoreFaces(a, cr.P)
	restoreFaces(a, translated)

	copy(cr.Q, translated)
	return nil
}

// swapLinks implements §4.7 step 2 for one paired crossing: whichever
// side's continuation survived excision gets spliced across to replace
// the side whose continuation was cut away.
func swapLinks(a *Polygon, p, q *Crossing) {
	switch {
	case p.EdgeBefore != NoEdge && p.EdgeAfter == NoEdge && q.EdgeBefore == NoEdge && q.EdgeAfter != NoEdge:
		a.SetEdgeNext(p.EdgeBefore, q.EdgeAfter)
		a.SetEdgePrev(q.EdgeAfter, p.EdgeBefore)
		p.EdgeAfter = q.EdgeAfter
		q.EdgeBefore = p.EdgeBefore
	case q.EdgeBefore != NoEdge && q.EdgeAfter == NoEdge && p.EdgeBefore == NoEdge && p.EdgeAfter != NoEdge:
		a.SetEdgeNext(q.EdgeBefore, p.EdgeAfter)
		a.SetEdgePrev(p.EdgeAfter, q.EdgeBefore)
		q.EdgeAfter = p.EdgeAfter
		p.EdgeBefore = q.EdgeBefore
	}
}

// resolveTouchingPoints handles the case where, even after swapLinks,
// a crossing's continuation still lives on the SAME polygon at another
// record sharing its point (a touching point rather than a transversal
// crossing). It returns an UnresolvedTouching *Error if no continuation
// can be found, per §7.
func resolveTouchingPoints(a *Polygon, recs []Crossing, o PrimitiveOracle) error {
	for i := range recs {
		if recs[i].EdgeBefore == NoEdge || recs[i].EdgeAfter != NoEdge {
			continue
		}
		if !spliceTouching(a, recs, i, o) {
			return newError(UnresolvedTouching, "crossing at %v has no continuation", recs[i].Pt)
		}
	}
	return nil
}

func spliceTouching(a *Polygon, recs []Crossing, i int, o PrimitiveOracle) bool {
	for j := range recs {
		if j == i || recs[j].EdgeBefore != NoEdge || recs[j].EdgeAfter == NoEdge {
			continue
		}
		if !o.PointEqual(recs[i].Pt, recs[j].Pt) {
			continue
		}
		a.SetEdgeNext(recs[i].EdgeBefore, recs[j].EdgeAfter)
		a.SetEdgePrev(recs[j].EdgeAfter, recs[i].EdgeBefore)
		recs[i].EdgeAfter = recs[j].EdgeAfter
		recs[j].EdgeBefore = recs[i].EdgeBefore
		return true
	}
	return false
}

// discardOldFaces implements §4.7 step 3: every face referenced by any
// crossing is retired, and the crossing's own surrounding edges have
// their stale face handle cleared so restoreFaces can tell they still
// need a new ring.
func discardOldFaces(a *Polygon, p, q []Crossing) {
	seen := make(map[FaceID]bool)
	for _, r := range p {
		if r.Face != NoFace {
			seen[r.Face] = true
		}
	}
	for _, r := range q {
		if r.Face != NoFace {
			seen[r.Face] = true
		}
	}
	for f := range seen {
		a.MarkFaceStale(f)
	}
	clearSurroundingFace := func(recs []Crossing) {
		for _, r := range recs {
			if r.EdgeBefore != NoEdge {
				a.SetEdgeFace(r.EdgeBefore, NoFace)
			}
			if r.EdgeAfter != NoEdge {
				a.SetEdgeFace(r.EdgeAfter, NoFace)
			}
		}
	}
	clearSurroundingFace(p)
	clearSurroundingFace(q)
}

// restoreFaces implements §4.7 step 4. Checking the edge's live face
// handle (rather than a separate per-record flag) is equivalent to the
// spec's "mark every crossing whose surrounding edges now point to this
// new face": once AddFace walks a ring, every edge in it (including
// other crossings' edge_after) already carries the new handle, so a
// later record referencing the same ring is skipped naturally.
func restoreFaces(a *Polygon, recs []Crossing) {
	for _, r := range recs {
		if r.EdgeBefore == NoEdge || r.EdgeAfter == NoEdge {
			continue
		}
		if a.EdgeFace(r.EdgeAfter) != NoFace {
			continue
		}
		a.AddFace(r.EdgeAfter, r.EdgeBefore)
	}
}
