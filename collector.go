package polybool

// CollectIntersections walks every edge of a against b's spatial index
// and emits paired crossing records into a fresh Crossings value. It is
// the first stage of the pipeline (IntersectionCollector).
func CollectIntersections(a, b *Polygon, o PrimitiveOracle, diag *Diagnostics) *Crossings {
	cr := &Crossings{}
	for _, fa := range a.Faces() {
		for _, e1 := range a.FaceEdges(fa) {
			s1 := a.EdgeShape(e1)
			candidates := b.Search(s1.Box())
			for _, e2 := range candidates {
				s2 := b.EdgeShape(e2)
				pts := s1.Intersect(s2, o)
				for _, pt := range pts {
					recA, okA := buildRecord(a, e1, fa, pt, o, diag)
					if !okA {
						continue
					}
					recB, okB := buildRecord(b, e2, b.EdgeFace(e2), pt, o, diag)
					if !okB {
						continue
					}
					id := len(cr.P)
					recA.ID = id
					recB.ID = id
					cr.P = append(cr.P, recA)
					cr.Q = append(cr.Q, recB)
				}
			}
		}
	}
	return cr
}

// buildRecord computes is_vertex and arc_length for one side of a
// crossing, per §4.1, including the face-wrap tie-break from §3.
func buildRecord(poly *Polygon, e EdgeID, face FaceID, pt Point, o PrimitiveOracle, diag *Diagnostics) (Crossing, bool) {
	s := poly.EdgeShape(e)
	before, after := s.Split(pt, o)
	if before == nil && after == nil {
		diag.noteDropped()
		return Crossing{}, false
	}

	var length float64
	var vertex VertexFlag
	switch {
	case before == nil:
		length = 0
		vertex = StartVertex
	case after == nil:
		length = s.Length()
		vertex = EndVertex
	default:
		length = before.Length()
	}
	if o.EQ(length, 0) {
		vertex |= StartVertex
	}
	if o.EQ(length, s.Length()) {
		vertex |= EndVertex
	}

	arcLength := poly.EdgeArcLength(e) + length
	next := poly.EdgeNext(e)
	if next != NoEdge && o.PointEqual(pt, poly.EdgeShape(next).Start()) && o.EQ(poly.EdgeArcLength(next), 0) {
		arcLength = 0
	}

	return Crossing{
		Pt:         pt,
		EdgeBefore: e,
		EdgeAfter:  NoEdge,
		Face:       face,
		ArcLength:  arcLength,
		IsVertex:   vertex,
	}, true
}
