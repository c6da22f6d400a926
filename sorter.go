package polybool

import "sort"

// SortCrossings assigns a dense per-list FaceSeq to each crossing (in
// first-seen order) and stable-sorts each list by (FaceSeq, ArcLength)
// under the oracle's epsilon comparisons. The canonical P/Q slices are
// left untouched; SortedP/SortedQ hold the resulting permutations.
func SortCrossings(cr *Crossings, o PrimitiveOracle) {
	cr.SortedP = sortOneSide(cr.P, o)
	cr.SortedQ = sortOneSide(cr.Q, o)
}

func sortOneSide(recs []Crossing, o PrimitiveOracle) []int {
	seq := make(map[FaceID]int)
	order := make([]int, len(recs))
	for i := range recs {
		order[i] = i
		if _, ok := seq[recs[i].Face]; !ok {
			seq[recs[i].Face] = len(seq)
		}
		recs[i].FaceSeq = seq[recs[i].Face]
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := recs[order[i]], recs[order[j]]
		if a.FaceSeq != b.FaceSeq {
			return a.FaceSeq < b.FaceSeq
		}
		return o.LT(a.ArcLength, b.ArcLength)
	})
	return order
}
