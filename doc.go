// Package polybool implements boolean set operations (union, intersection,
// difference) on planar polygons made of straight and circular-arc edges.
//
// Polygons are stored in an arena: edges and faces are referenced by
// integer EdgeID/FaceID handles rather than pointers, which keeps the
// structure free of reference cycles and cheap to clone. A boolean
// operation runs a fixed pipeline over two input polygons: it collects
// every crossing between their boundaries, sorts each boundary's
// crossings into arc-length order, splits edges at each crossing,
// deduplicates records that refer to the same geometric event, classifies
// every edge as inside, outside, or on the boundary of the other polygon,
// excises the chains the requested operation doesn't need, and restitches
// what's left into the result's faces.
package polybool
