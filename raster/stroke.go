package raster

import "github.com/pathkit/raster2d/geom"

// StrokeOptions configures Stroke. WidthRight and WidthLeft default to
// Width/2 when left at zero, matching a symmetric stroke centered on
// the path.
type StrokeOptions struct {
	Width      float32
	WidthRight float32
	WidthLeft  float32
}

func (o StrokeOptions) widths() (right, left float32) {
	right, left = o.WidthRight, o.WidthLeft
	if right == 0 {
		right = o.Width / 2
	}
	if left == 0 {
		left = o.Width / 2
	}
	return right, left
}

// Stroke expands each contour into a filled outline polygon of the
// given width. It emits no caps. At each join the two offset lines are
// intersected as infinite lines and the corner becomes their crossing
// point, with no miter limit; only parallel consecutive offset
// segments, which never cross, keep both endpoints and leave a
// visible notch. Open paths end with butt-like terminations where the
// forward and reverse passes meet.
func Stroke(contours ContourSet, opts StrokeOptions) ContourSet {
	wr, wl := opts.widths()
	out := make(ContourSet, 0, len(contours))
	for _, c := range contours {
		outline := strokeContour(c, wr, wl)
		if outline != nil {
			out = append(out, outline)
		}
	}
	return out
}

func strokeContour(c Contour, wr, wl float32) Contour {
	if len(c) < 2 {
		return nil
	}
	right := offsetSide(c, wr, false)
	left := offsetSide(c, wl, true)

	outline := make(Contour, 0, len(right)+len(left)+1)
	outline = append(outline, right...)
	for i := len(left) - 1; i >= 0; i-- {
		outline = append(outline, left[i])
	}
	if len(outline) > 0 {
		outline = append(outline, outline[0])
	}
	return outline
}

// offsetSide walks c's segments and offsets each by width along its
// normal (negated when invert is true, giving the opposite side).
// Where the lines through consecutive offset segments cross (even
// beyond either segment's endpoints), the shared corner point is
// replaced by the crossing point; when they are parallel both segment
// endpoints are kept, producing the notch documented on Stroke.
func offsetSide(c Contour, width float32, invert bool) []geom.Vec2 {
	var pts []geom.Vec2
	var prevSeg geom.Segment
	havePrev := false

	for i := 0; i+1 < len(c); i++ {
		at, to := c[i], c[i+1]
		tangent := at.Sub(to).Normalize()
		if tangent.Equal(geom.Vec2{}) {
			continue
		}
		normal := tangent.Perp()
		if invert {
			normal = normal.Scale(-1)
		}
		offset := normal.Scale(width)
		seg := geom.Segment{At: at.Add(offset), To: to.Add(offset)}

		if !havePrev {
			pts = append(pts, seg.At)
		} else {
			var xy geom.Vec2
			if prevSeg.Intersects(seg, &xy) {
				pts[len(pts)-1] = xy
			} else {
				pts = append(pts, seg.At)
			}
		}
		pts = append(pts, seg.To)
		prevSeg = seg
		havePrev = true
	}
	return pts
}
