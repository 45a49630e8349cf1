package raster

// ColorRGBA is a straight-alpha sRGB color, the unit the rasterizer
// writes and the mixer blends.
type ColorRGBA struct {
	R, G, B, A uint8
}

// Image is the pixel surface the rasterizer writes into. Callers
// supply a concrete implementation (see package rasterimg for a
// ready-made one); the hot loop never calls GetPixel/SetPixel out of
// bounds, so implementations need not bounds-check.
type Image interface {
	Width() int
	Height() int
	GetPixel(x, y int) ColorRGBA
	SetPixel(x, y int, c ColorRGBA)
}

// Mixer combines a destination pixel with a source pixel into the new
// destination value, implementing one blend mode. Normal (Porter-Duff
// source-over, straight alpha) lives in package rasterimg alongside
// Image's default implementation.
type Mixer func(dst, src ColorRGBA) ColorRGBA
