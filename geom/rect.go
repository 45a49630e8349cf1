package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle given by an origin and a size.
type Rect struct {
	XY Vec2
	WH Vec2
}

// BoundsOf returns the smallest Rect (with integer-aligned origin and
// size, matching the flatten/rasterize boundary contract) containing
// every point in pts. Callers with an empty pts slice get the zero Rect.
func BoundsOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = Min(minX, p.X)
		minY = Min(minY, p.Y)
		maxX = Max(maxX, p.X)
		maxY = Max(maxY, p.Y)
	}
	minX, minY = math32.Floor(minX), math32.Floor(minY)
	maxX, maxY = math32.Ceil(maxX), math32.Ceil(maxY)
	return Rect{XY: Vec2{minX, minY}, WH: Vec2{maxX - minX, maxY - minY}}
}

// IntersectsRow reports whether the rectangle contains the horizontal
// line y = row. A row is rejected only by strict comparisons against
// the float bounds, so rows equal to the top or bottom edge count as
// intersecting, matching the reference rasterizer's row-culling test.
func (r Rect) IntersectsRow(row float32) bool {
	if r.XY.Y > row || r.XY.Y+r.WH.Y < row {
		return false
	}
	return true
}
