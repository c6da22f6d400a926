// Package orbconv converts between github.com/paulmach/orb geometries and
// polybool's arena-based Polygon, so that callers at the process boundary
// (the polyclip command, GeoJSON I/O) never need to touch EdgeID/FaceID
// handles directly. The engine package itself never imports orb.
package orbconv

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/geo2d/polybool"
)

// FromOrb builds a Polygon from an orb.Polygon, one face per ring. Rings
// are expected closed (first point equals last); the closing point is
// dropped since NewRing re-closes implicitly.
func FromOrb(o orb.Polygon, oracle *polybool.Oracle) *polybool.Polygon {
	p := polybool.NewPolygon(oracle)
	for _, ring := range o {
		pts := ringPoints(ring)
		if len(pts) < 3 {
			continue
		}
		p.NewRing(pts)
	}
	return p
}

func ringPoints(ring orb.Ring) []polybool.Point {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	pts := make([]polybool.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = polybool.Point{X: ring[i][0], Y: ring[i][1]}
	}
	return pts
}

// ToOrb walks every live face of p into a closed orb.Ring, returning an
// orb.Polygon with one ring per face.
func ToOrb(p *polybool.Polygon) orb.Polygon {
	var result orb.Polygon
	for _, f := range p.Faces() {
		verts := p.Vertices(f)
		if len(verts) < 3 {
			continue
		}
		ring := make(orb.Ring, 0, len(verts)+1)
		for _, v := range verts {
			ring = append(ring, orb.Point{v.X, v.Y})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		result = append(result, ring)
	}
	return result
}

// ShapesToRing stitches a run of Shapes into a single orb.Ring by
// sampling each shape's start point, plus the last shape's end point. It
// returns an error if the run is not contiguous (each shape's End must
// equal the next shape's Start); it does not check that the last shape's
// End meets the first shape's Start.
func ShapesToRing(shapes []polybool.Shape) (orb.Ring, error) {
	if len(shapes) == 0 {
		return nil, nil
	}
	ring := make(orb.Ring, 0, len(shapes)+1)
	for i, s := range shapes {
		start := s.Start()
		if i > 0 {
			prevEnd := shapes[i-1].End()
			if prevEnd.Dist(start) > polybool.Epsilon {
				return nil, fmt.Errorf("orbconv: shape chain not contiguous at index %d", i)
			}
		}
		ring = append(ring, orb.Point{start.X, start.Y})
	}
	last := shapes[len(shapes)-1].End()
	ring = append(ring, orb.Point{last.X, last.Y})
	return ring, nil
}
