// Package rasterimg provides default implementations of the
// collaborator interfaces package raster consumes: a pixel buffer
// satisfying raster.Image, and the Normal (Porter-Duff source-over)
// blend mixer. Neither is required by package raster itself — they
// exist so callers and tests have a ready-to-use surface instead of
// writing their own for every image file format or blend strategy.
package rasterimg

import "github.com/pathkit/raster2d/raster"

// Image is a row-major RGBA pixel buffer implementing raster.Image.
type Image struct {
	W, H   int
	Pixels []raster.ColorRGBA
}

// New allocates a transparent w×h Image.
func New(w, h int) *Image {
	return &Image{W: w, H: h, Pixels: make([]raster.ColorRGBA, w*h)}
}

func (im *Image) Width() int  { return im.W }
func (im *Image) Height() int { return im.H }

func (im *Image) GetPixel(x, y int) raster.ColorRGBA {
	return im.Pixels[y*im.W+x]
}

func (im *Image) SetPixel(x, y int, c raster.ColorRGBA) {
	im.Pixels[y*im.W+x] = c
}

// Fill sets every pixel to c.
func (im *Image) Fill(c raster.ColorRGBA) {
	for i := range im.Pixels {
		im.Pixels[i] = c
	}
}
