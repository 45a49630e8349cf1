package path

import (
	"github.com/chewxy/math32"
	"github.com/pathkit/raster2d/geom"
)

// builderEpsilon is the tolerance used by the builder's degenerate-case
// tests (co-located points, collinear rays).
const builderEpsilon = 1e-6

func (p *Path) push(k Kind, numbers ...float32) {
	p.Commands = append(p.Commands, Command{Kind: k, Numbers: numbers})
}

// MoveTo emits an absolute Move to (x, y) and advances the pen.
func (p *Path) MoveTo(x, y float32) {
	p.push(Move, x, y)
	p.At = geom.Vec2At(x, y)
}

// LineTo emits an absolute Line to (x, y) and advances the pen.
func (p *Path) LineTo(x, y float32) {
	p.push(Line, x, y)
	p.At = geom.Vec2At(x, y)
}

// ClosePath emits Close. The builder's pen position is left untouched;
// the flattener (package raster), not the builder, is responsible for
// resetting the current point to the subpath start.
func (p *Path) ClosePath() {
	p.push(Close)
}

// BezierCurveTo emits an absolute Cubic to (x3, y3) with the given
// control points, and advances the pen.
func (p *Path) BezierCurveTo(x1, y1, x2, y2, x3, y3 float32) {
	p.push(Cubic, x1, y1, x2, y2, x3, y3)
	p.At = geom.Vec2At(x3, y3)
}

// Rect traces the rectangle at (x, y) with size (w, h) clockwise,
// emitting Move, Line, Line, Line, Line, Close — the fourth Line
// duplicates the Move's point before Close, which is what the
// reference implementation emits.
func (p *Path) Rect(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y)
	p.ClosePath()
}

// ArcTo emits a canvas-style circular arc of radius r, tangent to the
// ray from the current pen to (x1, y1) and the ray from (x1, y1) to
// (x2, y2), preceded by a LineTo the first tangent point when needed.
// The tangent-point construction follows the law-of-cosines method
// used by HTML canvas implementations (e.g. nanovgo's Context.ArcTo).
func (p *Path) ArcTo(x1, y1, x2, y2, r float32) {
	x0, y0 := p.At.X, p.At.Y

	if dist(x0, y0, x1, y1) < builderEpsilon {
		p.MoveTo(x1, y1)
		return
	}

	dx0, dy0, ok0 := normalize2(x0-x1, y0-y1)
	dx1, dy1, ok1 := normalize2(x2-x1, y2-y1)
	cross := dx0*dy1 - dy0*dx1
	if r == 0 || !ok0 || !ok1 || math32.Abs(cross) < builderEpsilon {
		p.LineTo(x1, y1)
		return
	}

	a := math32.Acos(geom.Clamp(dx0*dx1+dy0*dy1, -1, 1))
	d := r / math32.Tan(a/2)

	t1x, t1y := x1+dx0*d, y1+dy0*d
	t2x, t2y := x1+dx1*d, y1+dy1*d

	if dist(x0, y0, t1x, t1y) >= builderEpsilon {
		p.LineTo(t1x, t1y)
	}

	sweep := float32(0)
	if cross < 0 {
		sweep = 1
	}
	p.push(Arc, r, r, 0, 0, sweep, t2x, t2y)
	p.At = geom.Vec2At(t2x, t2y)
}

// AddPath appends other's commands to p.
func (p *Path) AddPath(other *Path) {
	p.Commands = append(p.Commands, other.Commands...)
	if len(other.Commands) > 0 {
		p.At = other.At
	}
}

// QuadraticCurveTo is documented but unimplemented upstream.
func (p *Path) QuadraticCurveTo(cx, cy, x, y float32) error {
	return errNotImplemented("quadraticCurveTo")
}

// Arc is documented but unimplemented upstream; not to be confused
// with the Arc path command, which the parser and ArcTo do support.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float32, ccw bool) error {
	return errNotImplemented("arc")
}

// Ellipse is documented but unimplemented upstream.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float32, ccw bool) error {
	return errNotImplemented("ellipse")
}

// Polygon is documented as "n-sided polygon at (x,y) with size" but
// the reference implementation ignores x, y and size, always drawing
// an 80-unit polygon centered at (100, 100) — a known bug preserved
// here rather than silently fixed.
func (p *Path) Polygon(x, y, size float32, sides int) {
	const (
		bugCenterX = 100
		bugCenterY = 100
		bugRadius  = 80
	)
	if sides < 3 {
		return
	}
	step := 2 * math32.Pi / float32(sides)
	for i := 0; i < sides; i++ {
		angle := step*float32(i) - math32.Pi/2
		vx := bugCenterX + bugRadius*math32.Cos(angle)
		vy := bugCenterY + bugRadius*math32.Sin(angle)
		if i == 0 {
			p.MoveTo(vx, vy)
		} else {
			p.LineTo(vx, vy)
		}
	}
	p.ClosePath()
}

func dist(x0, y0, x1, y1 float32) float32 {
	return math32.Hypot(x1-x0, y1-y0)
}

func normalize2(x, y float32) (nx, ny float32, ok bool) {
	l := math32.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}
