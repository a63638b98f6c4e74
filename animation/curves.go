package animation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Standard curves, equivalent to their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

var namedCurves = map[string]Curve{
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// CurveByName returns a curve for a CSS timing function name, or for a
// "cubic-bezier(x1, y1, x2, y2)" expression.
func CurveByName(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedCurves[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "cubic-bezier(") || !strings.HasSuffix(name, ")") {
		return nil, fmt.Errorf("unknown timing function %q", name)
	}
	args := strings.Split(name[len("cubic-bezier("):len(name)-1], ",")
	if len(args) != 4 {
		return nil, fmt.Errorf("cubic-bezier needs 4 arguments, have %d", len(args))
	}
	var p [4]float64
	for i, a := range args {
		x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("cubic-bezier argument %q: %w", a, err)
		}
		p[i] = x
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, fmt.Errorf("cubic-bezier x-coordinates must be in [0,1]")
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1); (x1,y1) and (x2,y2) are the
// control points.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := t // Newton-Raphson, starting at t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clamp01(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}
		lo, hi := 0.0, 1.0 // bisection as fallback
		u = t
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, clamp01(u))
	}
}

// bezier evaluates one coordinate of a cubic bezier with end points 0 and 1.
func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
