package raster

import (
	"github.com/chewxy/math32"
	"github.com/pathkit/raster2d/geom"
	"github.com/pathkit/raster2d/path"
)

// flattenTolerance is the maximum midpoint error, in pixels, that the
// adaptive cubic/arc subdivision will accept before splitting a step.
const flattenTolerance = 0.25

// maxSubdivisionDepth bounds the adaptive recursion so a degenerate
// curve (coincident control points feeding back a nonzero error)
// cannot recurse forever.
const maxSubdivisionDepth = 24

// flattenState carries everything Flatten threads across commands:
// the point under construction, the subpath start, the pen, and the
// last control points used by the smooth-curve reflection rules.
type flattenState struct {
	out  ContourSet
	cur  Contour
	at   geom.Vec2
	start geom.Vec2

	quadCtrl  geom.Vec2
	cubicCtrl geom.Vec2

	prevKind  path.Kind
	havePrev  bool
}

// emit appends the segment (a, b) to the polygon under construction,
// skipping zero-length segments and never duplicating the trailing
// point.
func (s *flattenState) emit(a, b geom.Vec2) {
	if a.Equal(b) {
		return
	}
	if len(s.cur) == 0 || !s.cur[len(s.cur)-1].Equal(a) {
		s.cur = append(s.cur, a)
	}
	s.cur = append(s.cur, b)
}

func quadAt(p0, p1, p2 geom.Vec2, t float32) geom.Vec2 {
	a := geom.Lerp(p0, p1, t)
	b := geom.Lerp(p1, p2, t)
	return geom.Lerp(a, b, t)
}

func cubicAt(p0, p1, p2, p3 geom.Vec2, t float32) geom.Vec2 {
	a := geom.Lerp(p0, p1, t)
	b := geom.Lerp(p1, p2, t)
	c := geom.Lerp(p2, p3, t)
	ab := geom.Lerp(a, b, t)
	bc := geom.Lerp(b, c, t)
	return geom.Lerp(ab, bc, t)
}

// flattenQuad emits the polyline approximation of the quadratic
// Bezier (p0, p1, p2) using uniform subdivision sized from the
// curve's squared second difference.
func (s *flattenState) flattenQuad(p0, p1, p2 geom.Vec2) {
	dx := p0.X - 2*p1.X + p2.X
	dy := p0.Y - 2*p1.Y + p2.Y
	d := dx*dx + dy*dy
	if d < 1.0/3.0 {
		s.emit(p0, p2)
		return
	}
	n := 1 + int(math32.Floor(math32.Sqrt(math32.Sqrt(3*d))))
	prev := p0
	for k := 1; k <= n; k++ {
		t := float32(k) / float32(n)
		pt := quadAt(p0, p1, p2, t)
		s.emit(prev, pt)
		prev = pt
	}
}

// flattenAdaptive emits the polyline approximation of eval over
// [tPrev, t], recursively bisecting whenever the midpoint of the
// chord deviates from the curve by more than flattenTolerance pixels.
func (s *flattenState) flattenAdaptive(eval func(t float32) geom.Vec2, tPrev, t float32, depth int) {
	a := eval(tPrev)
	b := eval(t)
	mid := (tPrev + t) / 2
	lineMid := geom.Lerp(a, b, 0.5)
	curveMid := eval(mid)
	errSq := lineMid.Sub(curveMid).LengthSquared()
	if errSq >= flattenTolerance*flattenTolerance && depth < maxSubdivisionDepth {
		s.flattenAdaptive(eval, tPrev, mid, depth+1)
		s.flattenAdaptive(eval, mid, t, depth+1)
		return
	}
	s.emit(a, b)
}

func (s *flattenState) flattenCubic(p0, p1, p2, p3 geom.Vec2) {
	s.flattenAdaptive(func(t float32) geom.Vec2 { return cubicAt(p0, p1, p2, p3, t) }, 0, 1, 0)
}

func isQuadForm(k path.Kind) bool {
	switch k {
	case path.Quad, path.RQuad, path.TQuad, path.RTQuad:
		return true
	default:
		return false
	}
}

func isCubicForm(k path.Kind) bool {
	switch k {
	case path.Cubic, path.RCubic, path.SCubic, path.RSCubic:
		return true
	default:
		return false
	}
}

func point2(x, y float32) geom.Vec2 { return geom.Vec2At(x, y) }

// Flatten converts a parsed command stream into a ContourSet,
// subdividing quadratic curves uniformly and cubic curves and arcs
// adaptively. It fails with
// UnsupportedCommand if cmds contains an absolute SCubic — only its
// relative form, RSCubic, is handled (only RSCubic reflects the prior
// control point; absolute SCubic has no defined predecessor to
// reflect from in the reference algorithm).
func Flatten(cmds []path.Command) (ContourSet, error) {
	s := &flattenState{}

	for _, cmd := range cmds {
		n := cmd.Numbers
		rel := cmd.Kind.IsRelative()

		switch cmd.Kind {
		case path.Move, path.RMove:
			var target geom.Vec2
			if rel {
				target = s.at.Add(point2(n[0], n[1]))
			} else {
				target = point2(n[0], n[1])
			}
			s.at = target
			s.start = target
			// Move/RMove never flush the polygon under construction;
			// only Close does.

		case path.Line, path.RLine:
			var target geom.Vec2
			if rel {
				target = s.at.Add(point2(n[0], n[1]))
			} else {
				target = point2(n[0], n[1])
			}
			s.emit(s.at, target)
			s.at = target

		case path.HLine, path.RHLine:
			var target geom.Vec2
			if rel {
				target = point2(s.at.X+n[0], s.at.Y)
			} else {
				target = point2(n[0], s.at.Y)
			}
			s.emit(s.at, target)
			s.at = target

		case path.VLine, path.RVLine:
			var target geom.Vec2
			if rel {
				target = point2(s.at.X, s.at.Y+n[0])
			} else {
				target = point2(s.at.X, n[0])
			}
			s.emit(s.at, target)
			s.at = target

		case path.Quad, path.RQuad:
			var ctrl, target geom.Vec2
			if rel {
				ctrl = s.at.Add(point2(n[0], n[1]))
				target = s.at.Add(point2(n[2], n[3]))
			} else {
				ctrl = point2(n[0], n[1])
				target = point2(n[2], n[3])
			}
			s.flattenQuad(s.at, ctrl, target)
			s.quadCtrl = ctrl
			s.at = target

		case path.TQuad, path.RTQuad:
			var ctrl geom.Vec2
			if s.havePrev && isQuadForm(s.prevKind) {
				ctrl = s.at.Scale(2).Sub(s.quadCtrl)
			} else {
				ctrl = s.at
			}
			var target geom.Vec2
			if rel {
				target = s.at.Add(point2(n[0], n[1]))
			} else {
				target = point2(n[0], n[1])
			}
			s.flattenQuad(s.at, ctrl, target)
			s.quadCtrl = ctrl
			s.at = target

		case path.Cubic, path.RCubic:
			var c1, c2, target geom.Vec2
			if rel {
				c1 = s.at.Add(point2(n[0], n[1]))
				c2 = s.at.Add(point2(n[2], n[3]))
				target = s.at.Add(point2(n[4], n[5]))
			} else {
				c1 = point2(n[0], n[1])
				c2 = point2(n[2], n[3])
				target = point2(n[4], n[5])
			}
			s.flattenCubic(s.at, c1, c2, target)
			s.cubicCtrl = c2
			s.at = target

		case path.SCubic:
			return nil, path.ErrUnsupportedCommand(cmd.Kind)

		case path.RSCubic:
			var c1 geom.Vec2
			if s.havePrev && isCubicForm(s.prevKind) {
				c1 = s.at.Scale(2).Sub(s.cubicCtrl)
			} else {
				c1 = s.at
			}
			c2 := s.at.Add(point2(n[0], n[1]))
			target := s.at.Add(point2(n[2], n[3]))
			s.flattenCubic(s.at, c1, c2, target)
			s.cubicCtrl = c2
			s.at = target

		case path.Arc, path.RArc:
			var target geom.Vec2
			if rel {
				target = s.at.Add(point2(n[5], n[6]))
			} else {
				target = point2(n[5], n[6])
			}
			s.flattenArc(n[0], n[1], n[2], n[3] != 0, n[4] != 0, target)
			s.at = target

		case path.Close:
			if !s.at.Equal(s.start) {
				if s.havePrev && isQuadForm(s.prevKind) {
					s.flattenQuad(s.at, s.quadCtrl, s.start)
				} else {
					s.emit(s.at, s.start)
				}
			}
			s.out = append(s.out, s.cur)
			s.cur = Contour{}
			s.at = s.start

		default:
			return nil, path.ErrUnsupportedCommand(cmd.Kind)
		}

		s.prevKind = cmd.Kind
		s.havePrev = true
	}

	if len(s.cur) > 0 {
		s.out = append(s.out, s.cur)
	}
	return s.out, nil
}

// flattenArc converts the endpoint parameterization of an elliptical
// arc into center parameterization (SVG Appendix F.6) and flattens it
// adaptively.
func (s *flattenState) flattenArc(rx, ry, rotDeg float32, large, sweep bool, target geom.Vec2) {
	p0, p1 := s.at, target
	if p0.Equal(p1) {
		return
	}
	rx, ry = math32.Abs(rx), math32.Abs(ry)
	if rx == 0 || ry == 0 {
		s.emit(p0, p1)
		return
	}

	rotation := rotDeg * math32.Pi / 180
	cosR, sinR := math32.Cos(rotation), math32.Sin(rotation)

	d := p0.Sub(p1).Scale(0.5)
	px := cosR*d.X + sinR*d.Y
	py := -sinR*d.X + cosR*d.Y

	if lambda := (px*px)/(rx*rx) + (py*py)/(ry*ry); lambda > 1 {
		scale := math32.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	num := rx*rx*ry*ry - rx*rx*py*py - ry*ry*px*px
	den := rx*rx*py*py + ry*ry*px*px
	q := float32(0)
	if den != 0 {
		q = math32.Sqrt(math32.Max(0, num/den))
	}
	if large == sweep {
		q = -q
	}
	cxp := q * rx * py / ry
	cyp := -q * ry * px / rx

	mid := p0.Add(p1).Scale(0.5)
	center := geom.Vec2At(
		cosR*cxp-sinR*cyp+mid.X,
		sinR*cxp+cosR*cyp+mid.Y,
	)

	u := geom.Vec2At((px-cxp)/rx, (py-cyp)/ry)
	v := geom.Vec2At((-px-cxp)/rx, (-py-cyp)/ry)

	theta := math32.Atan2(u.Y, u.X)
	delta := math32.Atan2(u.Cross(v), u.Dot(v))
	if sweep && delta < 0 {
		delta += 2 * math32.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math32.Pi
	}

	eval := func(t float32) geom.Vec2 {
		a := theta + t*delta
		x := rx * math32.Cos(a)
		y := ry * math32.Sin(a)
		return geom.Vec2At(
			center.X+cosR*x-sinR*y,
			center.Y+sinR*x+cosR*y,
		)
	}
	s.flattenAdaptive(eval, 0, 1, 0)
}
