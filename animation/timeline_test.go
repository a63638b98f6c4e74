package animation

import (
	"math"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shelltk/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	spec, ok, err := ParseSpec("fade 100ms ease-out", DefaultSpec)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fade", spec.ID)
	assert.Equal(t, 100*time.Millisecond, spec.Duration)
	assert.Equal(t, "ease-out", spec.CurveName)
	//
	spec, ok, err = ParseSpec("slide", DefaultSpec)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, DefaultSpec.Duration, spec.Duration)
	//
	spec, ok, err = ParseSpec("zoom 0.5s cubic-bezier(0.4, 0, 0.2, 1)", DefaultSpec)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, spec.Duration)
	//
	_, ok, err = ParseSpec("none", DefaultSpec)
	assert.NoError(t, err)
	assert.False(t, ok)
	_, _, err = ParseSpec("fade 1s wobbly", DefaultSpec)
	assert.ErrorIs(t, err, ErrSpec)
}

func TestCurves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	for name, c := range namedCurves {
		if c(0) != 0 || c(1) != 1 {
			t.Errorf("curve %s must map 0→0 and 1→1", name)
		}
	}
	lin := CubicBezier(0, 0, 1, 1)
	if math.Abs(lin(0.3)-0.3) > 1e-4 {
		t.Errorf("expected linear bezier to be near identity, have %f", lin(0.3))
	}
	if EaseIn(0.5) >= 0.5 {
		t.Errorf("expected ease-in to lag behind linear progress, have %f", EaseIn(0.5))
	}
	_, err := CurveByName("cubic-bezier(2, 0, 0, 1)")
	assert.Error(t, err)
}

func TestClipCompletesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	tl := NewTimeline()
	h := tl.NewAnimation(Spec{ID: "fade", Duration: 100 * time.Millisecond})
	completions := 0
	h.OnCompleted(func(Handle) { completions++ })
	h.Run()
	assert.True(t, h.Running())
	assert.Equal(t, 1, tl.Running())
	tl.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, completions)
	assert.InDelta(t, 0.5, h.(*Clip).Progress(), 1e-9)
	tl.Advance(60 * time.Millisecond)
	assert.Equal(t, 1, completions)
	assert.False(t, h.Running())
	assert.Equal(t, 0, tl.Running())
	h.Release() // no-op after completion
	h.ForceComplete()
	assert.Equal(t, 1, completions)
	assert.False(t, h.(*Clip).Cancelled())
}

func TestClipReleaseCancels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	tl := NewTimeline()
	h := tl.NewAnimation(Spec{ID: "fade", Duration: time.Second})
	var got Handle
	h.OnCompleted(func(x Handle) { got = x })
	h.Run()
	h.Release()
	assert.Equal(t, h, got)
	assert.True(t, h.(*Clip).Cancelled())
	assert.Equal(t, 0, tl.Running())
}

func TestClipForceCompleteAndBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	tl := NewTimeline()
	h := tl.NewAnimation(Spec{ID: "move", Duration: time.Second, Curve: LinearCurve})
	c := h.(*Clip)
	c.SetBoxes(style.Box{}, style.Box{X: 100, Width: 10, Height: 10})
	h.Run()
	tl.Advance(250 * time.Millisecond)
	assert.InDelta(t, 25.0, c.Box().X, 1e-9)
	h.ForceComplete()
	assert.True(t, c.Done())
	assert.Equal(t, style.Box{X: 100, Width: 10, Height: 10}, c.Box())
}

func TestZeroDurationCompletesInRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.animation")
	defer teardown()
	//
	tl := NewTimeline()
	h := tl.NewAnimation(Spec{ID: "blink"})
	done := false
	h.OnCompleted(func(Handle) { done = true })
	h.Run()
	assert.True(t, done)
	assert.Equal(t, 0, tl.Running())
}
