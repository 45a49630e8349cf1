package raster

// WindingRule selects how the scanline rasterizer turns a signed
// winding count into inside/outside coverage.
type WindingRule uint8

const (
	NonZero WindingRule = iota
	EvenOdd
)
