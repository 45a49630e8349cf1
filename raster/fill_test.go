package raster

import (
	"testing"

	"github.com/pathkit/raster2d/geom"
	"github.com/pathkit/raster2d/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testImage struct {
	w, h   int
	pixels []ColorRGBA
}

func newTestImage(w, h int) *testImage {
	return &testImage{w: w, h: h, pixels: make([]ColorRGBA, w*h)}
}

func (im *testImage) Width() int  { return im.w }
func (im *testImage) Height() int { return im.h }
func (im *testImage) GetPixel(x, y int) ColorRGBA {
	return im.pixels[y*im.w+x]
}
func (im *testImage) SetPixel(x, y int, c ColorRGBA) {
	im.pixels[y*im.w+x] = c
}

func normalMixer(_, src ColorRGBA) ColorRGBA { return src }

var black = ColorRGBA{A: 255}

func flattenOrFail(t *testing.T, d string) ContourSet {
	t.Helper()
	p, err := path.Parse(d)
	require.NoError(t, err)
	cs, err := Flatten(p.Commands)
	require.NoError(t, err)
	return cs
}

func TestFillAxisAlignedRectangle(t *testing.T) {
	cs := flattenOrFail(t, "M0 0 L10 0 L10 10 L0 10 Z")
	img := newTestImage(20, 20)
	Fill(img, geom.Vec2At(20, 20), cs, FillOptions{Color: black, Winding: NonZero, Mixer: normalMixer})

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x < 10 && y < 10
			got := img.GetPixel(x, y)
			if inside {
				assert.Equalf(t, uint8(255), got.A, "expected opaque at (%d,%d)", x, y)
			} else {
				assert.Equalf(t, uint8(0), got.A, "expected untouched at (%d,%d)", x, y)
			}
		}
	}
}

func TestFillEvenOddRing(t *testing.T) {
	cs := flattenOrFail(t, "M0 0 L10 0 L10 10 L0 10 Z M2 2 L8 2 L8 8 L2 8 Z")
	img := newTestImage(20, 20)
	Fill(img, geom.Vec2At(20, 20), cs, FillOptions{Color: black, Winding: EvenOdd, Mixer: normalMixer})

	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			assert.Equalf(t, uint8(0), img.GetPixel(x, y).A, "inner square should be untouched at (%d,%d)", x, y)
		}
	}
	assert.Equal(t, uint8(255), img.GetPixel(1, 1).A)
	assert.Equal(t, uint8(0), img.GetPixel(15, 15).A)
}

func TestFillEmptyPathTouchesNothing(t *testing.T) {
	img := newTestImage(5, 5)
	Fill(img, geom.Vec2At(5, 5), nil, FillOptions{Color: black, Mixer: normalMixer})
	for _, px := range img.pixels {
		assert.Equal(t, uint8(0), px.A)
	}
}

func TestFillOnePixelRect(t *testing.T) {
	cs := flattenOrFail(t, "M0 0 L1 0 L1 1 L0 1 Z")
	img := newTestImage(1, 1)
	Fill(img, geom.Vec2At(1, 1), cs, FillOptions{Color: black, Mixer: normalMixer})
	assert.Equal(t, uint8(255), img.GetPixel(0, 0).A)
}

func TestFillSupersamplingMonotonicity(t *testing.T) {
	cs := flattenOrFail(t, "M0 0 L10 0 L10 10 L0 10 Z")
	low := newTestImage(20, 20)
	Fill(low, geom.Vec2At(20, 20), cs, FillOptions{Color: black, Mixer: normalMixer, Quality: 1})
	high := newTestImage(20, 20)
	Fill(high, geom.Vec2At(20, 20), cs, FillOptions{Color: black, Mixer: normalMixer, Quality: 4})

	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			assert.Equal(t, uint8(255), low.GetPixel(x, y).A)
			assert.Equal(t, uint8(255), high.GetPixel(x, y).A)
		}
	}
	for y := 15; y < 20; y++ {
		for x := 15; x < 20; x++ {
			assert.Equal(t, uint8(0), low.GetPixel(x, y).A)
			assert.Equal(t, uint8(0), high.GetPixel(x, y).A)
		}
	}
}
