package animation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/shelltk/style"
)

// ErrSpec is wrapped by errors from parsing animation specs.
var ErrSpec = errors.New("invalid animation spec")

// Handle is an opaque reference to one animation instance.
type Handle interface {
	// ID is the resolved animation name. Two handles with equal IDs
	// animate the same thing; widgets refuse to stack them.
	ID() string
	// Run starts the animation.
	Run()
	// ForceComplete jumps to the end state and signals completion.
	ForceComplete()
	// Release drops the caller's reference. An unfinished animation is
	// cancelled and signals completion.
	Release()
	// OnCompleted subscribes to the completion signal.
	OnCompleted(func(Handle))
	// Running is true between Run and completion.
	Running() bool
}

// BoxAnimator is implemented by handles which interpolate geometry.
// Widgets set the boxes before starting such animations.
type BoxAnimator interface {
	SetBoxes(from, to style.Box)
}

// Factory creates animation handles from specs.
type Factory interface {
	NewAnimation(spec Spec) Handle
}

// Spec describes an animation as declared by a theme, e.g.
//
//     fade 250ms ease-out
type Spec struct {
	ID        string
	Duration  time.Duration
	Curve     Curve
	CurveName string
}

func (s Spec) String() string {
	return fmt.Sprintf("%s %s %s", s.ID, s.Duration, s.CurveName)
}

// DefaultSpec is used to fill in omitted durations and curves.
var DefaultSpec = Spec{Duration: 250 * time.Millisecond, Curve: Ease, CurveName: "ease"}

// ParseSpec parses an animation declaration of the form
//
//     <name> [<duration>] [<curve>]
//
// Durations are given like "250ms" or "0.3s". Omitted parts are taken from
// defaults. A value of "none" (or an empty value) denotes the absence of an
// animation; ParseSpec then returns false.
func ParseSpec(p style.Property, defaults Spec) (Spec, bool, error) {
	if p.IsEmpty() || p.IsNone() {
		return Spec{}, false, nil
	}
	fields := strings.Fields(p.String())
	spec := Spec{
		ID:        fields[0],
		Duration:  defaults.Duration,
		Curve:     defaults.Curve,
		CurveName: defaults.CurveName,
	}
	rest := fields[1:]
	if len(rest) > 0 {
		if d, err := time.ParseDuration(rest[0]); err == nil {
			if d < 0 {
				return Spec{}, false, fmt.Errorf("%w: negative duration in %q", ErrSpec, p)
			}
			spec.Duration = d
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		name := strings.Join(rest, " ")
		c, err := CurveByName(name)
		if err != nil {
			return Spec{}, false, fmt.Errorf("%w: %q: %v", ErrSpec, p, err)
		}
		spec.Curve, spec.CurveName = c, name
	}
	if spec.Curve == nil {
		spec.Curve, spec.CurveName = LinearCurve, "linear"
	}
	return spec, true, nil
}
