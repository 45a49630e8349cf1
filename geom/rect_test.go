package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOfEmpty(t *testing.T) {
	assert.Equal(t, Rect{}, BoundsOf(nil))
}

func TestBoundsOfFloorsAndCeils(t *testing.T) {
	pts := []Vec2{Vec2At(1.2, 3.9), Vec2At(4.1, 0.2)}
	got := BoundsOf(pts)
	assert.Equal(t, Vec2At(1, 0), got.XY)
	assert.Equal(t, Vec2At(4, 4), got.WH)
}

func TestIntersectsRowStrictBounds(t *testing.T) {
	r := Rect{XY: Vec2At(0, 10), WH: Vec2At(5, 20)}
	assert.True(t, r.IntersectsRow(10))
	assert.True(t, r.IntersectsRow(30))
	assert.False(t, r.IntersectsRow(9.999))
	assert.False(t, r.IntersectsRow(30.001))
}
