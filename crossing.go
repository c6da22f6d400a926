package polybool

// VertexFlag marks whether a crossing point coincides with one of its
// edge's own endpoints.
type VertexFlag int

const (
	NotVertex  VertexFlag = 0
	StartVertex VertexFlag = 1 << 0
	EndVertex   VertexFlag = 1 << 1
)

// Crossing is one polygon's half of a paired boundary intersection
// record. P[i] and Q[i] in a Crossings value describe the same
// geometric point from polygon A's and polygon B's perspective
// respectively.
type Crossing struct {
	ID         int
	Pt         Point
	EdgeBefore EdgeID // NoEdge once excised from this side
	EdgeAfter  EdgeID // NoEdge once excised from this side
	Face       FaceID
	ArcLength  float64
	IsVertex   VertexFlag
	FaceSeq    int // dense per-list face ordinal, assigned by the sorter
}

// Crossings is the engine's structure-of-arrays pairing of A's and B's
// crossing records, indexed identically by id. SortedP/SortedQ hold
// permutations of ids (not copies of the records), so re-densifying ids
// after a squeeze never desynchronizes a "sorted view" from the
// canonical one.
type Crossings struct {
	P, Q           []Crossing
	SortedP, SortedQ []int
}

func (c *Crossings) Len() int { return len(c.P) }

// squeeze drops every record whose ID was set to -1 by DuplicateFilter,
// re-densifies the remaining ids, and clears the sorted views (callers
// must re-sort afterward).
func (c *Crossings) squeeze() {
	newP := c.P[:0]
	newQ := c.Q[:0]
	for i := range c.P {
		if c.P[i].ID < 0 {
			continue
		}
		newP = append(newP, c.P[i])
		newQ = append(newQ, c.Q[i])
	}
	for i := range newP {
		newP[i].ID = i
		newQ[i].ID = i
	}
	c.P = newP
	c.Q = newQ
	c.SortedP = nil
	c.SortedQ = nil
}
