// Command polyclip runs a boolean operation on two GeoJSON polygons read
// from disk and writes the result as GeoJSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"

	"github.com/geo2d/polybool"
	"github.com/geo2d/polybool/internal/orbconv"
)

type Root struct {
	Op     string `short:"p" default:"union" desc:"union, intersect, subtract, innerclip, outerclip, or intersections"`
	Output string `short:"o" desc:"Output GeoJSON file (default stdout)"`
	A      string `index:"0" desc:"First polygon GeoJSON file"`
	B      string `index:"1" desc:"Second polygon GeoJSON file"`
}

func main() {
	cmd := &Root{}
	root := argp.NewCmd(cmd, "Boolean operations on 2D polygons")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Root) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	a, err := readPolygon(cmd.A)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.A, err)
	}
	b, err := readPolygon(cmd.B)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.B, err)
	}

	oracle := polybool.NewOracle()
	pa := orbconv.FromOrb(a, oracle)
	pb := orbconv.FromOrb(b, oracle)

	ctx := context.Background()
	var out orb.Geometry
	switch cmd.Op {
	case "union":
		r, err := polybool.Unify(ctx, pa, pb)
		if err != nil {
			return err
		}
		out = orbconv.ToOrb(r)
	case "intersect":
		r, err := polybool.Intersect(ctx, pa, pb)
		if err != nil {
			return err
		}
		out = orbconv.ToOrb(r)
	case "subtract":
		r, err := polybool.Subtract(ctx, pa, pb)
		if err != nil {
			return err
		}
		out = orbconv.ToOrb(r)
	case "innerclip":
		pShapes, qShapes, err := polybool.InnerClip(ctx, pa, pb)
		if err != nil {
			return err
		}
		ring, err := orbconv.ShapesToRing(append(pShapes, qShapes...))
		if err != nil {
			return fmt.Errorf("stitching innerclip boundary: %w", err)
		}
		out = closeRing(ring)
	case "outerclip":
		shapes, err := polybool.OuterClip(ctx, pa, pb)
		if err != nil {
			return err
		}
		ring, err := orbconv.ShapesToRing(shapes)
		if err != nil {
			return fmt.Errorf("stitching outerclip boundary: %w", err)
		}
		out = closeRing(ring)
	case "intersections":
		pPts, qPts, err := polybool.CalculateIntersections(ctx, pa, pb)
		if err != nil {
			return err
		}
		mp := make(orb.MultiPoint, 0, len(pPts)+len(qPts))
		for _, p := range pPts {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
		for _, p := range qPts {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
		out = mp
	default:
		return fmt.Errorf("unknown operation %q", cmd.Op)
	}

	return writeGeometry(cmd.Output, out)
}

// closeRing wraps a single stitched ring as a one-ring orb.Polygon,
// closing it if ShapesToRing didn't already land back on its start point.
func closeRing(ring orb.Ring) orb.Polygon {
	if len(ring) == 0 {
		return orb.Polygon{}
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

func readPolygon(path string) (orb.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	poly, ok := g.Geometry().(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("%s does not contain a Polygon geometry", path)
	}
	return poly, nil
}

func writeGeometry(path string, geom orb.Geometry) error {
	data, err := geojson.NewGeometry(geom).MarshalJSON()
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
