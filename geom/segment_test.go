package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentIntersectsWithinBothSpans(t *testing.T) {
	s := Segment{At: Vec2At(0, 0), To: Vec2At(10, 0)}
	o := Segment{At: Vec2At(5, -5), To: Vec2At(5, 5)}
	var at Vec2
	assert.True(t, s.Intersects(o, &at))
	assert.Equal(t, Vec2At(5, 0), at)
}

func TestSegmentIntersectsBeyondEndpoints(t *testing.T) {
	// o's span does not reach s's line, but the infinite lines still cross.
	s := Segment{At: Vec2At(0, 0), To: Vec2At(10, 0)}
	o := Segment{At: Vec2At(5, 1), To: Vec2At(5, 2)}
	var at Vec2
	assert.True(t, s.Intersects(o, &at))
	assert.Equal(t, Vec2At(5, 0), at)
}

func TestSegmentParallelDoesNotIntersect(t *testing.T) {
	s := Segment{At: Vec2At(0, 0), To: Vec2At(10, 0)}
	o := Segment{At: Vec2At(0, 5), To: Vec2At(10, 5)}
	var at Vec2
	assert.False(t, s.Intersects(o, &at))
}
