package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2At(1, 2)
	b := Vec2At(3, 4)

	assert.Equal(t, Vec2At(4, 6), a.Add(b))
	assert.Equal(t, Vec2At(-2, -2), a.Sub(b))
	assert.Equal(t, Vec2At(2, 4), a.Scale(2))
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(-2), a.Cross(b))
}

func TestVec2Perp(t *testing.T) {
	assert.Equal(t, Vec2At(0, 1), Vec2At(1, 0).Perp())
	assert.Equal(t, Vec2At(-1, 0), Vec2At(0, 1).Perp())
}

func TestVec2NormalizeZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestVec2NormalizeUnit(t *testing.T) {
	n := Vec2At(3, 4).Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
}

func TestLerp(t *testing.T) {
	a := Vec2At(0, 0)
	b := Vec2At(10, 20)
	assert.Equal(t, Vec2At(5, 10), Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
}
