package raster

import "github.com/pathkit/raster2d/geom"

// Contour is a polyline produced by flattening one subpath. It carries
// no closed flag: a subpath ended by Close gets its closing segment
// stored explicitly at flatten time, and neither the rasterizer nor
// the stroker adds a segment from the last point back to the first.
type Contour []geom.Vec2

// ContourSet is an ordered sequence of contours, one per subpath.
type ContourSet []Contour

// Segments iterates the adjacent-point pairs of c, (c[i], c[i+1]) for
// i in [0, len(c)-1). It does NOT wrap around to pair the last point
// back to the first — closing a contour is Close's job at flatten
// time, not this iterator's.
func (c Contour) Segments(yield func(at, to geom.Vec2)) {
	for i := 0; i+1 < len(c); i++ {
		yield(c[i], c[i+1])
	}
}

// Bounds returns the axis-aligned bounding rectangle of every contour
// in the set.
func (cs ContourSet) Bounds() []geom.Rect {
	bounds := make([]geom.Rect, len(cs))
	for i, c := range cs {
		bounds[i] = geom.BoundsOf(c)
	}
	return bounds
}
