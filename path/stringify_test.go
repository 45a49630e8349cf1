package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberIntegerHasNoDecimalPoint(t *testing.T) {
	assert.Equal(t, "10", formatNumber(10))
	assert.Equal(t, "-3", formatNumber(-3))
	assert.Equal(t, "0", formatNumber(0))
}

func TestFormatNumberFraction(t *testing.T) {
	assert.Equal(t, "1.5", formatNumber(1.5))
}

func TestPathStringRoundTrip(t *testing.T) {
	const src = "M0 0 L10 0 L10 10 L0 10 Z"
	p, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, src, p.String())
}

func TestPathStringNoTrailingSpace(t *testing.T) {
	p := &Path{Commands: []Command{{Kind: Move, Numbers: []float32{1, 2}}}}
	got := p.String()
	assert.Equal(t, "M1 2", got)
	assert.NotEqual(t, byte(' '), got[len(got)-1])
}
