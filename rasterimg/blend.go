package rasterimg

import "github.com/pathkit/raster2d/raster"

// Normal blends src over dst using standard Porter-Duff source-over
// compositing on straight (non-premultiplied) alpha.
func Normal(dst, src raster.ColorRGBA) raster.ColorRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float32(src.A) / 255
	da := float32(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return raster.ColorRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		sc := float32(s) / 255
		dc := float32(d) / 255
		oc := (sc*sa + dc*da*(1-sa)) / oa
		return uint8(oc*255 + 0.5)
	}
	return raster.ColorRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(oa*255 + 0.5),
	}
}
