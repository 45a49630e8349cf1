package path

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// formatNumber renders v the way the parser's inverse is defined:
// integers without a decimal point, other values with Go's shortest
// round-trip float32 representation.
func formatNumber(v float32) string {
	if v == math32.Trunc(v) {
		return strconv.FormatFloat(float64(v), 'f', 0, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// String renders c in SVG path-data syntax: its command letter
// immediately followed by its space-separated parameters (e.g. "M1 2").
func (c Command) String() string {
	if len(c.Numbers) == 0 {
		return string(c.Kind.Letter())
	}
	parts := make([]string, 0, len(c.Numbers))
	for _, v := range c.Numbers {
		parts = append(parts, formatNumber(v))
	}
	return string(c.Kind.Letter()) + strings.Join(parts, " ")
}

// String renders the full command sequence as SVG path data, the
// inverse of Parse. No trailing space is emitted between the last two
// tokens of the string (strings.Join never adds one).
func (p *Path) String() string {
	parts := make([]string, len(p.Commands))
	for i, c := range p.Commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
