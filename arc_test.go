package polybool

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// halfDisk builds an upper half-disk face (centered at the origin) out
// of two quarter ArcShape edges and one LineShape diameter, exercising
// NewFace's shape-agnostic edge list rather than NewRing's straight-only
// rings.
func halfDisk(radius float64) *Polygon {
	p := NewPolygon(nil)
	p.NewFace([]Shape{
		ArcShape{Center: Point{0, 0}, Radius: radius, Theta0: 0, Theta1: math.Pi / 2, CCW: true},
		ArcShape{Center: Point{0, 0}, Radius: radius, Theta0: math.Pi / 2, Theta1: math.Pi, CCW: true},
		LineShape{P0: Point{-radius, 0}, P1: Point{radius, 0}},
	})
	return p
}

func hasVertexNear(pts []Point, want Point) bool {
	for _, p := range pts {
		if math.Abs(p.X-want.X) < 1e-6 && math.Abs(p.Y-want.Y) < 1e-6 {
			return true
		}
	}
	return false
}

func requireVertexNear(t *testing.T, pts []Point, want Point) {
	t.Helper()
	if !hasVertexNear(pts, want) {
		test.Fail(t, fmt.Sprintf("expected a vertex near %v, got %v", want, pts))
	}
}

func TestNewFaceBuildsArcEdges(t *testing.T) {
	p := halfDisk(5)
	faces := p.Faces()
	test.T(t, len(faces), 1)

	ids := p.FaceEdges(faces[0])
	test.T(t, len(ids), 3)

	arcCount, lineCount := 0, 0
	for _, id := range ids {
		switch p.EdgeShape(id).(type) {
		case ArcShape:
			arcCount++
		case LineShape:
			lineCount++
		}
	}
	test.T(t, arcCount, 2)
	test.T(t, lineCount, 1)
}

// TestIntersectHalfDiskThroughArcPipeline runs a real ArcShape edge
// through the full Collect -> Sort -> Split -> Dedupe -> Classify ->
// Excise -> Restitch pipeline: a half-disk of radius 5 intersected with
// a horizontal band above y=3 clips the disk's arc at x=+-4 (3-4-5
// right triangles, so the crossings land on exact coordinates), leaving
// a circular-segment face bounded by two arc edges and one line edge.
func TestIntersectHalfDiskThroughArcPipeline(t *testing.T) {
	a := halfDisk(5)
	b := NewPolygon(a.Oracle())
	b.NewRing([]Point{{-10, 3}, {10, 3}, {10, 10}, {-10, 10}})

	r, err := Intersect(context.Background(), a, b)
	test.Error(t, err)

	faces := r.Faces()
	test.T(t, len(faces), 1)

	ids := r.FaceEdges(faces[0])
	test.T(t, len(ids), 3)

	arcCount, lineCount := 0, 0
	var verts []Point
	for _, id := range ids {
		s := r.EdgeShape(id)
		switch s.(type) {
		case ArcShape:
			arcCount++
		case LineShape:
			lineCount++
		}
		verts = append(verts, s.Start(), s.End())
	}
	test.T(t, arcCount, 2)
	test.T(t, lineCount, 1)

	requireVertexNear(t, verts, Point{4, 3})
	requireVertexNear(t, verts, Point{-4, 3})
	requireVertexNear(t, verts, Point{0, 5})
}

func TestUnifyHalfDiskThroughArcPipeline(t *testing.T) {
	a := halfDisk(5)
	b := NewPolygon(a.Oracle())
	b.NewRing([]Point{{-1, 1}, {1, 1}, {1, 2}, {-1, 2}})

	// B sits entirely inside A (well within radius 5 and above the
	// diameter, so it never touches A's boundary), so the union is just
	// A back out unchanged: B contributes nothing to the result boundary.
	r, err := Unify(context.Background(), a, b)
	test.Error(t, err)

	faces := r.Faces()
	test.T(t, len(faces), 1)

	arcCount := 0
	for _, id := range r.FaceEdges(faces[0]) {
		if _, ok := r.EdgeShape(id).(ArcShape); ok {
			arcCount++
		}
	}
	test.T(t, arcCount, 2)
}
