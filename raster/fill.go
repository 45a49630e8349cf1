package raster

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/pathkit/raster2d/geom"
)

// DefaultQuality is the supersample count Fill uses when
// FillOptions.Quality is left at zero.
const DefaultQuality = 4

// scanEpsilon nudges each supersample's scan line off the pixel grid
// so a contour vertex never lands exactly on it.
const scanEpsilon = 0.0001 * math32.Pi

// FillOptions configures Fill.
type FillOptions struct {
	Color   ColorRGBA
	Winding WindingRule
	Mixer   Mixer
	Quality int
}

type scanHit struct {
	x       float32
	winding bool
}

// Fill rasterizes contours into img using analytic, supersampled
// scanline coverage. size gives the logical canvas extent that row
// hits are clamped against; it is ordinarily equal to img's pixel
// dimensions.
func Fill(img Image, size geom.Vec2, contours ContourSet, opts FillOptions) {
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	mixer := opts.Mixer
	if mixer == nil {
		mixer = func(_, src ColorRGBA) ColorRGBA { return src }
	}

	bounds := contours.Bounds()
	width, height := img.Width(), img.Height()
	alphas := make([]float32, width)
	var hits []scanHit

	for y := 0; y < height; y++ {
		for i := range alphas {
			alphas[i] = 0
		}

		for m := 0; m < quality; m++ {
			yLine := float32(y) + scanEpsilon + float32(m)/float32(quality)
			hits = hits[:0]

			for ci, c := range contours {
				if !bounds[ci].IntersectsRow(float32(y)) {
					continue
				}
				c.Segments(func(at, to geom.Vec2) {
					if at.Y == to.Y {
						return
					}
					t := (yLine - at.Y) / (to.Y - at.Y)
					if t < 0 || t >= 1 {
						return
					}
					x := at.X + t*(to.X-at.X)
					x = geom.Clamp(x, 0, size.X)
					hits = append(hits, scanHit{x: x, winding: at.Y > to.Y})
				})
			}
			sort.Slice(hits, func(i, j int) bool { return hits[i].x < hits[j].x })

			penFill := 0
			hitIdx := 0
			for x := 0; x < width; x++ {
				var penEdge float32
				if opts.Winding == EvenOdd {
					if penFill%2 != 0 {
						penEdge = 1
					}
				} else {
					penEdge = float32(penFill)
				}
				for hitIdx < len(hits) && int(hits[hitIdx].x) == x {
					h := hits[hitIdx]
					cover := h.x - float32(x)
					if !h.winding {
						penEdge += 1 - cover
						penFill++
					} else {
						penEdge -= 1 - cover
						penFill--
					}
					hitIdx++
				}
				alphas[x] += penEdge
			}
		}

		for x := 0; x < width; x++ {
			a := geom.Clamp(math32.Abs(alphas[x])/float32(quality), 0, 1)
			if a <= 0 {
				continue
			}
			colorA := opts.Color
			colorA.A = uint8(math32.Round(a * 255))
			dst := img.GetPixel(x, y)
			img.SetPixel(x, y, mixer(dst, colorA))
		}
	}
}
