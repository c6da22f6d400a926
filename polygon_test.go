package polybool

import (
	"testing"

	"github.com/tdewolff/test"
)

func square(x, y, w float64) []Point {
	return []Point{
		{x, y},
		{x + w, y},
		{x + w, y + w},
		{x, y + w},
	}
}

func TestPolygonNewRingVertices(t *testing.T) {
	p := NewPolygon(nil)
	f := p.NewRing(square(0, 0, 10))
	test.T(t, len(p.Vertices(f)), 4)
	test.T(t, p.Vertices(f)[0], Point{0, 0})
}

func TestPolygonContains(t *testing.T) {
	p := NewPolygon(nil)
	p.NewRing(square(0, 0, 10))
	test.T(t, p.Contains(Point{5, 5}), true)
	test.T(t, p.Contains(Point{15, 5}), false)
}

func TestPolygonOnBoundary(t *testing.T) {
	p := NewPolygon(nil)
	p.NewRing(square(0, 0, 10))
	test.T(t, p.OnBoundary(Point{5, 0}), true)
	test.T(t, p.OnBoundary(Point{5, 5}), false)
}

func TestPolygonAddVertex(t *testing.T) {
	p := NewPolygon(nil)
	f := p.NewRing(square(0, 0, 10))
	first := p.FaceFirst(f)
	newID := p.AddVertex(first, Point{5, 0})
	test.T(t, p.EdgeShape(first), Shape(LineShape{Point{0, 0}, Point{5, 0}}))
	test.T(t, p.EdgeShape(newID), Shape(LineShape{Point{5, 0}, Point{10, 0}}))
	test.T(t, p.EdgeNext(first), newID)
	test.T(t, len(p.FaceEdges(f)), 5)
}

func TestPolygonRemoveChain(t *testing.T) {
	p := NewPolygon(nil)
	f := p.NewRing(square(0, 0, 10))
	ids := p.FaceEdges(f)
	p.RemoveChain(ids[1], ids[1])
	test.T(t, p.EdgeRemoved(ids[1]), true)
	test.T(t, p.EdgeRemoved(ids[0]), false)
}

func TestPolygonReverse(t *testing.T) {
	p := NewPolygon(nil)
	f := p.NewRing(square(0, 0, 10))
	before := p.Vertices(f)
	p.Reverse()
	after := p.Vertices(f)
	test.T(t, len(after), len(before))
	// a reversed square still contains its own center
	test.T(t, p.Contains(Point{5, 5}), true)
}

func TestPolygonClone(t *testing.T) {
	p := NewPolygon(nil)
	f := p.NewRing(square(0, 0, 10))
	c := p.Clone()
	ids := c.FaceEdges(f)
	c.RemoveChain(ids[0], ids[0])
	test.T(t, c.EdgeRemoved(ids[0]), true)
	test.T(t, p.EdgeRemoved(ids[0]), false)
}

func TestPolygonMergeFrom(t *testing.T) {
	a := NewPolygon(nil)
	a.NewRing(square(0, 0, 10))
	b := NewPolygon(nil)
	fb := b.NewRing(square(20, 20, 10))

	edgeMap, faceMap := a.MergeFrom(b)
	newFace, ok := faceMap[fb]
	test.That(t, ok)
	test.T(t, len(a.Faces()), 2)
	for oldID, newID := range edgeMap {
		test.T(t, a.EdgeFace(newID), newFace)
		test.T(t, a.EdgeShape(newID), b.EdgeShape(oldID))
	}
}

func TestPolygonSetFaceInclusion(t *testing.T) {
	outer := NewPolygon(nil)
	outer.NewRing(square(-10, -10, 30))
	inner := NewPolygon(nil)
	fi := inner.NewRing(square(0, 0, 5))

	inner.SetFaceInclusion(fi, outer)
	for _, id := range inner.FaceEdges(fi) {
		test.T(t, inner.EdgeBV(id), Inside)
	}
}
