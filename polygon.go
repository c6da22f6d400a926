package polybool

import (
	"github.com/dhconnelly/rtreego"
)

// EdgeID and FaceID are arena handles into a Polygon. Using integer
// indices instead of heap pointers for prev/next/face avoids Go's
// cyclic-pointer ownership headaches and makes "swap links" during
// Restitch an O(1) index rewrite, per the engine's design notes.
type EdgeID int
type FaceID int

// NoEdge and NoFace mark an undefined handle, standing in for the
// spec's "undefined" link value.
const (
	NoEdge EdgeID = -1
	NoFace FaceID = -1
)

// BV is an edge's boundary classification relative to the other polygon
// in a Boolean call.
type BV int

const (
	BVUndefined BV = iota
	Inside
	Outside
	Boundary
)

func (v BV) String() string {
	switch v {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	default:
		return "undefined"
	}
}

// Overlap flags a Boundary edge as coincident with an edge of the other
// polygon, in the same or opposite direction.
type Overlap int

const (
	OverlapNone Overlap = iota
	OverlapSame
	OverlapOpposite
)

type edgeSlot struct {
	shape              Shape
	prev, next         EdgeID
	face               FaceID
	bv, bvStart, bvEnd BV
	overlap            Overlap
	arcLength          float64
	removed            bool
}

type faceSlot struct {
	first, last EdgeID
	removed     bool
}

// spatialMargin pads an edge's bounding box before it is handed to
// rtreego; a box with zero width or height is otherwise rejected, and
// the Collector's box queries need a small tolerance anyway so that
// near-miss crossings at shared endpoints are not lost to rounding.
const spatialMargin = 1e-7

type edgeSpatial struct {
	id  EdgeID
	box Rect
}

func (e *edgeSpatial) Bounds() rtreego.Rect {
	b := e.box.Expand(spatialMargin)
	r, err := rtreego.NewRect(rtreego.Point{b.X, b.Y}, []float64{maxf(b.W, spatialMargin), maxf(b.H, spatialMargin)})
	if err != nil {
		// A degenerate box (a single point) still needs a valid Rect;
		// fall back to a minimal square around it.
		r, _ = rtreego.NewRect(rtreego.Point{b.X, b.Y}, []float64{spatialMargin, spatialMargin})
	}
	return r
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Polygon is the arena-backed PolygonStore implementation consumed by
// the engine. It owns its Faces and Edges, and keeps an R-tree spatial
// index over edge bounding boxes so IntersectionCollector's box queries
// run in sublinear time.
type Polygon struct {
	edges   []edgeSlot
	faces   []faceSlot
	spatial map[EdgeID]*edgeSpatial
	index   *rtreego.Rtree
	oracle  *Oracle
}

// NewPolygon returns an empty polygon. A nil oracle falls back to the
// package default tolerance.
func NewPolygon(o *Oracle) *Polygon {
	if o == nil {
		o = NewOracle()
	}
	return &Polygon{
		index:   rtreego.NewTree(2, 4, 16),
		spatial: make(map[EdgeID]*edgeSpatial),
		oracle:  o,
	}
}

// NewRing builds a single closed face from an ordered list of vertices
// connected by straight LineShape edges, as used throughout the corpus's
// test fixtures and the polyclip CLI's input format.
func (p *Polygon) NewRing(pts []Point) FaceID {
	n := len(pts)
	if n < 3 {
		return NoFace
	}
	shapes := make([]Shape, n)
	for i := 0; i < n; i++ {
		shapes[i] = LineShape{pts[i], pts[(i+1)%n]}
	}
	return p.NewFace(shapes)
}

// NewFace builds a single closed face from an ordered, shape-agnostic
// edge list: shapes[i].End() must equal shapes[i+1].Start() (wrapping
// around), so a face can mix LineShape and ArcShape edges freely. This
// is the only constructor NewRing itself uses underneath; callers that
// need an arc edge in the boundary go through NewFace directly.
func (p *Polygon) NewFace(shapes []Shape) FaceID {
	n := len(shapes)
	if n < 3 {
		return NoFace
	}
	base := EdgeID(len(p.edges))
	for i := 0; i < n; i++ {
		p.edges = append(p.edges, edgeSlot{
			shape: shapes[i],
			prev:  base + EdgeID((i-1+n)%n),
			next:  base + EdgeID((i+1)%n),
			face:  NoFace,
		})
	}
	fid := FaceID(len(p.faces))
	p.faces = append(p.faces, faceSlot{first: base, last: base + EdgeID(n-1)})
	for i := 0; i < n; i++ {
		p.edges[base+EdgeID(i)].face = fid
	}
	p.recomputeArcLengths(fid)
	for i := 0; i < n; i++ {
		p.insertSpatial(base + EdgeID(i))
	}
	return fid
}

func (p *Polygon) insertSpatial(id EdgeID) {
	sp := &edgeSpatial{id: id, box: p.edges[id].shape.Box()}
	p.spatial[id] = sp
	p.index.Insert(sp)
}

func (p *Polygon) removeSpatial(id EdgeID) {
	if sp, ok := p.spatial[id]; ok {
		p.index.Delete(sp)
		delete(p.spatial, id)
	}
}

// Oracle returns the tolerance the polygon was built with.
func (p *Polygon) Oracle() *Oracle { return p.oracle }

// Faces lists every live (non-deleted) face handle.
func (p *Polygon) Faces() []FaceID {
	var ids []FaceID
	for i, f := range p.faces {
		if !f.removed {
			ids = append(ids, FaceID(i))
		}
	}
	return ids
}

func (p *Polygon) FaceFirst(f FaceID) EdgeID { return p.faces[f].first }
func (p *Polygon) FaceLast(f FaceID) EdgeID  { return p.faces[f].last }
func (p *Polygon) FaceIsEmpty(f FaceID) bool { return p.faces[f].removed || p.faces[f].first == NoEdge }

// FaceEdges walks a face's ring starting at its first edge.
func (p *Polygon) FaceEdges(f FaceID) []EdgeID {
	return p.faceEdgeIDs(f)
}

func (p *Polygon) faceEdgeIDs(f FaceID) []EdgeID {
	face := p.faces[f]
	if face.first == NoEdge {
		return nil
	}
	var ids []EdgeID
	e := face.first
	for {
		ids = append(ids, e)
		if e == face.last || p.edges[e].next == face.first {
			break
		}
		e = p.edges[e].next
	}
	return ids
}

// Vertices returns the face's boundary as an ordered point list (the
// start point of each edge), for reading back a result polygon.
func (p *Polygon) Vertices(f FaceID) []Point {
	ids := p.faceEdgeIDs(f)
	pts := make([]Point, 0, len(ids))
	for _, id := range ids {
		pts = append(pts, p.edges[id].shape.Start())
	}
	return pts
}

func (p *Polygon) EdgeShape(e EdgeID) Shape      { return p.edges[e].shape }
func (p *Polygon) EdgeNext(e EdgeID) EdgeID      { return p.edges[e].next }
func (p *Polygon) EdgePrev(e EdgeID) EdgeID      { return p.edges[e].prev }
func (p *Polygon) EdgeFace(e EdgeID) FaceID      { return p.edges[e].face }
func (p *Polygon) EdgeBV(e EdgeID) BV            { return p.edges[e].bv }
func (p *Polygon) EdgeBVStart(e EdgeID) BV       { return p.edges[e].bvStart }
func (p *Polygon) EdgeBVEnd(e EdgeID) BV         { return p.edges[e].bvEnd }
func (p *Polygon) EdgeOverlap(e EdgeID) Overlap  { return p.edges[e].overlap }
func (p *Polygon) EdgeArcLength(e EdgeID) float64 { return p.edges[e].arcLength }
func (p *Polygon) EdgeRemoved(e EdgeID) bool     { return p.edges[e].removed }

func (p *Polygon) SetEdgeNext(e, next EdgeID)  { p.edges[e].next = next }
func (p *Polygon) SetEdgePrev(e, prev EdgeID)  { p.edges[e].prev = prev }
func (p *Polygon) SetEdgeFace(e EdgeID, f FaceID) { p.edges[e].face = f }
func (p *Polygon) SetEdgeBV(e EdgeID, bv BV)       { p.edges[e].bv = bv }
func (p *Polygon) SetEdgeBVStart(e EdgeID, bv BV)  { p.edges[e].bvStart = bv }
func (p *Polygon) SetEdgeBVEnd(e EdgeID, bv BV)    { p.edges[e].bvEnd = bv }
func (p *Polygon) SetEdgeOverlap(e EdgeID, ov Overlap) { p.edges[e].overlap = ov }

// ClearClassification resets every classification field on e to its
// zero value, as InclusionClassifier does before recomputing bv.
func (p *Polygon) ClearClassification(e EdgeID) {
	p.edges[e].bv = BVUndefined
	p.edges[e].bvStart = BVUndefined
	p.edges[e].bvEnd = BVUndefined
	p.edges[e].overlap = OverlapNone
}

// Search returns every live edge whose bounding box overlaps box,
// backed by the R-tree index.
func (p *Polygon) Search(box Rect) []EdgeID {
	q := box.Expand(spatialMargin)
	rect, err := rtreego.NewRect(rtreego.Point{q.X, q.Y}, []float64{maxf(q.W, spatialMargin), maxf(q.H, spatialMargin)})
	if err != nil {
		return nil
	}
	results := p.index.SearchIntersect(rect)
	ids := make([]EdgeID, 0, len(results))
	for _, r := range results {
		sp := r.(*edgeSpatial)
		if !p.edges[sp.id].removed {
			ids = append(ids, sp.id)
		}
	}
	return ids
}

// AddVertex splits edge at pt, inserting a new edge for the second half
// immediately after it in the ring, and returns that new edge's handle.
// It is a no-op (returning edge unchanged) if pt coincides with one of
// edge's own endpoints; callers (EdgeSplitter) are expected to have
// already routed that case without calling AddVertex.
func (p *Polygon) AddVertex(edge EdgeID, pt Point) EdgeID {
	s := p.edges[edge].shape
	before, after := s.Split(pt, p.oracle)
	if before == nil || after == nil {
		return edge
	}
	p.removeSpatial(edge)
	p.edges[edge].shape = before

	newID := EdgeID(len(p.edges))
	face := p.edges[edge].face
	next := p.edges[edge].next
	p.edges = append(p.edges, edgeSlot{
		shape: after,
		prev:  edge,
		next:  next,
		face:  face,
	})
	p.edges[edge].next = newID
	if next != NoEdge {
		p.edges[next].prev = newID
	}
	p.edges[newID].arcLength = p.edges[edge].arcLength + before.Length()

	if face != NoFace && p.faces[face].last == edge {
		p.faces[face].last = newID
	}
	p.insertSpatial(edge)
	p.insertSpatial(newID)
	return newID
}

// RemoveChain tombstones every edge from `from` through `to` inclusive,
// following next links. The crossing records bounding the chain are
// updated by the caller (ChainExcisor); RemoveChain only retires edges.
func (p *Polygon) RemoveChain(from, to EdgeID) {
	e := from
	for {
		next := p.edges[e].next
		p.removeSpatial(e)
		p.edges[e].removed = true
		if e == to {
			break
		}
		e = next
	}
}

// MarkFaceStale retires a face record without touching its edges. Used
// by Restitch to discard the old pre-crossing faces once their edges
// have been relinked into new rings; the edges themselves get a fresh
// face assignment from AddFace shortly after.
func (p *Polygon) MarkFaceStale(f FaceID) {
	p.faces[f].removed = true
}

// DeleteFace tombstones every edge of f and the face itself.
func (p *Polygon) DeleteFace(f FaceID) {
	for _, id := range p.faceEdgeIDs(f) {
		p.removeSpatial(id)
		p.edges[id].removed = true
	}
	p.faces[f].removed = true
}

// AddFace closes a new ring from first to last (which must already be
// linked first -> ... -> last -> first via next pointers) and assigns
// every edge's face field to the new handle.
func (p *Polygon) AddFace(first, last EdgeID) FaceID {
	id := FaceID(len(p.faces))
	p.faces = append(p.faces, faceSlot{first: first, last: last})
	e := first
	for {
		p.edges[e].face = id
		if e == last {
			break
		}
		e = p.edges[e].next
	}
	p.recomputeArcLengths(id)
	return id
}

func (p *Polygon) recomputeArcLengths(f FaceID) {
	al := 0.0
	for _, id := range p.faceEdgeIDs(f) {
		p.edges[id].arcLength = al
		al += p.edges[id].shape.Length()
	}
}

// Clone deep-copies the polygon, including a fresh spatial index, so the
// driver can hand the engine disposable working copies.
func (p *Polygon) Clone() *Polygon {
	np := NewPolygon(p.oracle)
	np.edges = make([]edgeSlot, len(p.edges))
	copy(np.edges, p.edges)
	np.faces = make([]faceSlot, len(p.faces))
	copy(np.faces, p.faces)
	for i, e := range np.edges {
		if !e.removed {
			np.insertSpatial(EdgeID(i))
		}
	}
	return np
}

// Reverse flips the orientation of every live face: each edge's shape is
// reversed and the ring direction inverted. The driver reverses a clone
// of the second operand before Subtract enters the pipeline.
func (p *Polygon) Reverse() {
	for fid, f := range p.faces {
		if f.removed {
			continue
		}
		ids := p.faceEdgeIDs(FaceID(fid))
		n := len(ids)
		for _, id := range ids {
			p.edges[id].shape = p.edges[id].shape.Reverse()
		}
		for i := 0; i < n; i++ {
			id := ids[i]
			p.edges[id].next = ids[(i-1+n)%n]
			p.edges[id].prev = ids[(i+1)%n]
		}
		p.faces[fid].first = ids[n-1]
		p.faces[fid].last = ids[0]
		p.recomputeArcLengths(FaceID(fid))
		for _, id := range ids {
			p.removeSpatial(id)
			p.insertSpatial(id)
		}
	}
}

// MergeFrom appends every edge and face of other into p's arena,
// rewriting prev/next/face links by a constant index offset, and
// returns the old->new handle maps so the caller (Restitcher) can
// translate crossing records that referred to other's handles.
func (p *Polygon) MergeFrom(other *Polygon) (edgeMap map[EdgeID]EdgeID, faceMap map[FaceID]FaceID) {
	edgeMap = make(map[EdgeID]EdgeID, len(other.edges))
	faceMap = make(map[FaceID]FaceID, len(other.faces))
	edgeBase := EdgeID(len(p.edges))
	faceBase := FaceID(len(p.faces))

	for i, e := range other.edges {
		ne := e
		if e.prev != NoEdge {
			ne.prev = e.prev + edgeBase
		}
		if e.next != NoEdge {
			ne.next = e.next + edgeBase
		}
		if e.face != NoFace {
			ne.face = e.face + faceBase
		}
		p.edges = append(p.edges, ne)
		edgeMap[EdgeID(i)] = EdgeID(i) + edgeBase
	}
	for i, f := range other.faces {
		nf := f
		if f.first != NoEdge {
			nf.first = f.first + edgeBase
		}
		if f.last != NoEdge {
			nf.last = f.last + edgeBase
		}
		p.faces = append(p.faces, nf)
		faceMap[FaceID(i)] = FaceID(i) + faceBase
	}
	for i := range other.edges {
		id := edgeMap[EdgeID(i)]
		if !p.edges[id].removed {
			p.insertSpatial(id)
		}
	}
	return edgeMap, faceMap
}

// Contains reports whether pt lies inside the polygon under an
// even-odd ray-casting rule, counting crossings against the chord of
// every edge (arcs are ray-tested against their chord, a tolerable
// approximation for the midpoint tests SetInclusion performs since the
// sampled point is never exactly on an arc's own boundary).
func (p *Polygon) Contains(pt Point) bool {
	count := 0
	for fid, f := range p.faces {
		if f.removed {
			continue
		}
		for _, id := range p.faceEdgeIDs(FaceID(fid)) {
			s := p.edges[id].shape
			if rayCrossesEdge(pt, s.Start(), s.End()) {
				count++
			}
		}
	}
	return count%2 == 1
}

func rayCrossesEdge(pt, a, b Point) bool {
	if (a.Y > pt.Y) == (b.Y > pt.Y) {
		return false
	}
	xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return pt.X < xCross
}

// SetInclusion classifies a single edge's bv by ray-casting its
// midpoint against other. Edges already flanked by Boundary endpoints
// keep bvStart/bvEnd as set by the classifier; only bv itself is
// (re)computed here. A midpoint that itself lies on other's boundary
// (a coincident/overlapping edge) classifies as Boundary rather than
// Inside or Outside.
func (p *Polygon) SetInclusion(e EdgeID, other *Polygon) {
	s := p.edges[e].shape
	mid := s.Start().Interpolate(s.End(), 0.5)
	switch {
	case other.OnBoundary(mid):
		p.edges[e].bv = Boundary
	case other.Contains(mid):
		p.edges[e].bv = Inside
	default:
		p.edges[e].bv = Outside
	}
}

// OnBoundary reports whether pt lies on any live edge of the polygon,
// under the polygon's own oracle tolerance.
func (p *Polygon) OnBoundary(pt Point) bool {
	for fid, f := range p.faces {
		if f.removed {
			continue
		}
		for _, id := range p.faceEdgeIDs(FaceID(fid)) {
			if onShape(p.edges[id].shape, pt, p.oracle) {
				return true
			}
		}
	}
	return false
}

// SetFaceInclusion classifies every edge of a non-intersected face
// identically (I4), using one representative point (an edge's start
// vertex, which cannot itself be a crossing point since the face was
// never crossed).
func (p *Polygon) SetFaceInclusion(f FaceID, other *Polygon) {
	ids := p.faceEdgeIDs(f)
	if len(ids) == 0 {
		return
	}
	p.edges[ids[0]].bv = BVUndefined
	pt := p.edges[ids[0]].shape.Start()
	bv := Outside
	if other.Contains(pt) {
		bv = Inside
	}
	for _, id := range ids {
		p.edges[id].bv = bv
	}
}

// directionsSame reports whether two shapes' start->end vectors point
// the same way, used by the classifier to assign OverlapSame/Opposite
// to a pair of coincident boundary edges.
func directionsSame(a, b Shape) bool {
	da := a.End().Sub(a.Start())
	db := b.End().Sub(b.Start())
	return da.Dot(db) > 0
}
