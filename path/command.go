// Package path implements the SVG path-data parser, the programmatic
// path builder, and path-command stringification. It has no knowledge
// of pixels: it produces a typed command stream that package raster
// turns into polyline contours.
package path

import "github.com/pathkit/raster2d/geom"

// Kind is a tagged SVG path command, distinguishing absolute and
// relative forms (the relative form's letter is lowercase in SVG
// source text).
type Kind uint8

const (
	Close Kind = iota

	Move
	RMove

	Line
	RLine

	HLine
	RHLine

	VLine
	RVLine

	Cubic
	RCubic

	SCubic
	RSCubic

	Quad
	RQuad

	TQuad
	RTQuad

	Arc
	RArc
)

// arities gives the fixed number of float32 parameters each Kind
// consumes per invocation. One Command is one invocation; a command
// letter repeated with extra numbers in the source text expands to
// several Commands sharing this Kind.
var arities = [...]int{
	Close: 0,

	Move:  2,
	RMove: 2,

	Line:  2,
	RLine: 2,

	HLine:  1,
	RHLine: 1,

	VLine:  1,
	RVLine: 1,

	Cubic:  6,
	RCubic: 6,

	SCubic:  4,
	RSCubic: 4,

	Quad:  4,
	RQuad: 4,

	TQuad:  2,
	RTQuad: 2,

	Arc:  7,
	RArc: 7,
}

// Arity returns the fixed parameter count for k.
func (k Kind) Arity() int { return arities[k] }

// IsRelative reports whether k is the relative form of its command
// pair (e.g. RLine, not Line).
func (k Kind) IsRelative() bool {
	switch k {
	case RMove, RLine, RHLine, RVLine, RCubic, RSCubic, RQuad, RTQuad, RArc:
		return true
	default:
		return false
	}
}

// letters holds the canonical SVG command letter for each Kind, in absolute
// (uppercase) form; relative forms are its lowercase counterpart.
var letters = [...]byte{
	Close: 'Z',

	Move:  'M',
	RMove: 'M',

	Line:  'L',
	RLine: 'L',

	HLine:  'H',
	RHLine: 'H',

	VLine:  'V',
	RVLine: 'V',

	Cubic:  'C',
	RCubic: 'C',

	SCubic:  'S',
	RSCubic: 'S',

	Quad:  'Q',
	RQuad: 'Q',

	TQuad:  'T',
	RTQuad: 'T',

	Arc:  'A',
	RArc: 'A',
}

// Letter returns the SVG command letter for k, lowercased for
// relative forms.
func (k Kind) Letter() byte {
	l := letters[k]
	if k.IsRelative() {
		l += 'a' - 'A'
	}
	return l
}

// Command is one invocation of a path command: a Kind plus its
// arguments, in SVG source order. len(Numbers) always equals
// Kind.Arity().
type Command struct {
	Kind    Kind
	Numbers []float32
}

// Path is a mutable, ordered sequence of path commands together with
// the builder's current pen position. At is a property of the
// builder API only — the flattener (package raster) recomputes
// position from Commands and ignores it.
type Path struct {
	At       geom.Vec2
	Commands []Command
}
