package widget

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shelltk/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtMostOneAnimationPerID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[ClassAdded("a")] = animation.Spec{ID: "pulse", Duration: time.Second}
	th.anims[ClassAdded("b")] = animation.Spec{ID: "pulse", Duration: time.Second}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	w.AddStyleClass("a")
	w.AddStyleClass("b")
	assert.Equal(t, []string{ClassAdded("a")}, triggers(w))
	assert.Nil(t, w.AddAnimation(ClassAdded("a")))
	assert.Len(t, w.ActiveAnimations(), 1)
	assert.Equal(t, 1, th.tl.Running(), "dropped animation must not run")
	//
	th.tl.Advance(time.Second)
	assert.Empty(t, w.ActiveAnimations())
	assert.NotNil(t, w.AddAnimation(ClassAdded("b")))
}

func TestShowSupersedesHide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[TriggerHide] = animation.Spec{ID: "fade-out", Duration: 100 * time.Millisecond}
	th.anims[TriggerShow] = animation.Spec{ID: "fade-in", Duration: 100 * time.Millisecond}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	w.Hide()
	require.Equal(t, []string{TriggerHide}, triggers(w))
	hide := w.ActiveAnimations()[0].Handle.(*animation.Clip)
	w.Show()
	assert.Equal(t, []string{TriggerShow}, triggers(w))
	assert.True(t, hide.Done())
	assert.True(t, hide.Cancelled(), "hide must be cancelled, not completed")
	assert.Equal(t, 1, th.tl.Running())
}

func TestShowCompletesHideWithoutShowAnimation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[TriggerHide] = animation.Spec{ID: "fade-out", Duration: 100 * time.Millisecond}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	w.Hide()
	hide := w.ActiveAnimations()[0].Handle.(*animation.Clip)
	w.Show()
	assert.Empty(t, w.ActiveAnimations())
	assert.True(t, hide.Done())
	assert.False(t, hide.Cancelled(), "hide must be completed")
	assert.Equal(t, 1.0, hide.Progress())
}

func TestClassRemovedSupersedesClassAdded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[ClassAdded("b")] = animation.Spec{ID: "grow", Duration: time.Second}
	th.anims[ClassRemoved("b")] = animation.Spec{ID: "shrink", Duration: time.Second}
	w := newWidget(st, WithClasses("a"))
	require.NoError(t, st.Root().AddChild(w))
	w.AddStyleClass("b")
	assert.Equal(t, []string{"a", "b"}, w.StyleClasses())
	require.Equal(t, []string{ClassAdded("b")}, triggers(w))
	grow := w.ActiveAnimations()[0].Handle
	signalled := false
	var activeAtCancel []Animation
	grow.OnCompleted(func(animation.Handle) {
		signalled = true
		activeAtCancel = w.ActiveAnimations()
	})
	th.lookups = nil
	w.RemoveStyleClass("b")
	assert.Equal(t, []string{"a"}, w.StyleClasses())
	assert.True(t, signalled)
	assert.Empty(t, activeAtCancel, "class-added:b must be gone before class-removed:b starts")
	assert.True(t, grow.(*animation.Clip).Cancelled())
	assert.Equal(t, []string{ClassRemoved("b")}, triggers(w))
	assert.Equal(t, []string{ClassRemoved("b")}, th.lookups)
}

func TestReplaceWithSameAnimationID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[PseudoClassAdded("checked")] = animation.Spec{ID: "flip", Duration: time.Second}
	th.anims[PseudoClassRemoved("checked")] = animation.Spec{ID: "flip", Duration: time.Second}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	w.AddPseudoClass("checked")
	first := w.ActiveAnimations()[0].Handle
	w.RemovePseudoClass("checked")
	require.Equal(t, []string{PseudoClassRemoved("checked")}, triggers(w))
	assert.NotEqual(t, first, w.ActiveAnimations()[0].Handle)
	assert.Equal(t, 1, th.tl.Running())
}

func TestRemoveAnimation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims["wiggle"] = animation.Spec{ID: "wiggle", Duration: time.Second}
	th.anims["blink"] = animation.Spec{ID: "blink", Duration: time.Second}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	h := w.AddAnimation("wiggle")
	require.NotNil(t, h)
	require.NotNil(t, w.AddAnimation("blink"))
	w.RemoveAnimation("wiggle")
	assert.Equal(t, []string{"blink"}, triggers(w))
	assert.True(t, h.(*animation.Clip).Cancelled())
	w.RemoveAnimation("nothing") // no-op
	assert.Len(t, w.ActiveAnimations(), 1)
	assert.Nil(t, w.AddAnimation("unknown"))
}

func TestHandleWithoutCompletionSignal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	silent := &silentHandle{id: "silent"}
	th.custom["quiet"] = func() animation.Handle { return silent }
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	require.NotNil(t, w.AddAnimation("quiet"))
	w.RemoveAnimation("quiet")
	assert.Empty(t, w.ActiveAnimations())
	assert.True(t, silent.released)
}

// silentHandle never signals completion.
type silentHandle struct {
	id       string
	released bool
}

func (h *silentHandle) ID() string                         { return h.id }
func (h *silentHandle) Run()                               {}
func (h *silentHandle) ForceComplete()                     {}
func (h *silentHandle) Release()                           { h.released = true }
func (h *silentHandle) OnCompleted(func(animation.Handle)) {}
func (h *silentHandle) Running() bool                      { return !h.released }
