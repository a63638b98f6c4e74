package widget

import (
	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/style"
	"github.com/npillmayer/shelltk/tree"
)

// mapState tracks the first time a widget gets mapped.
type mapState uint8

const (
	neverMapped mapState = iota
	awaitingCreateAnimation
	mappedBefore
)

// boxReporter is implemented by animations which interpolate geometry.
type boxReporter interface {
	Box() style.Box
}

// firstMapped fires trigger created the first time a widget gets mapped.
// The animation runs from an empty box at the origin of the allocation to the
// full allocation; it does not start from the zero box at (0,0). While it
// runs, allocation animations are suppressed.
func (w *Widget) firstMapped() {
	if w.firstMap != neverMapped || !w.mapped {
		return
	}
	w.firstMap = awaitingCreateAnimation
	final := w.tracked
	initial := style.Box{X: final.X, Y: final.Y}
	h := w.add(TriggerCreated, boxes(initial, final), func() {
		w.firstMap = mappedBefore
	})
	if h == nil {
		w.firstMap = mappedBefore
	}
}

func (w *Widget) createAnimationInFlight() bool {
	return w.firstMap == awaitingCreateAnimation
}

// EnableAllocationAnimationOnce arms an animation of the next allocation
// change. The request is kept while a created animation is running.
func (w *Widget) EnableAllocationAnimationOnce() {
	w.animateNextAlloc = true
}

// Allocate sets the geometry of a widget. If an allocation animation has
// been armed, the change is animated by the theme's move-resize animation,
// superseding a move-resize animation in progress.
func (w *Widget) Allocate(box style.Box) {
	if w.destroyed || box == w.tracked {
		return
	}
	prev := w.tracked
	w.tracked = box
	w.allocation = box
	if !w.animateNextAlloc {
		return
	}
	if w.createAnimationInFlight() {
		tracer().P("widget", w).Debugf("allocation animation suppressed by created animation")
		return
	}
	w.animateNextAlloc = false
	w.replace(TriggerMoveResize, TriggerMoveResize, boxes(prev, box), nil)
}

func boxes(from, to style.Box) func(animation.Handle) {
	return func(h animation.Handle) {
		if b, ok := h.(animation.BoxAnimator); ok {
			b.SetBoxes(from, to)
		}
	}
}

// TrackedAllocation returns the geometry last allocated to a widget. It is
// safe to call at any time, including during geometry animations.
func (w *Widget) TrackedAllocation() style.Box {
	return w.tracked
}

// Allocation returns the geometry a widget currently shows. During a
// geometry animation this is the interpolated box.
func (w *Widget) Allocation() style.Box {
	for i := len(w.animations) - 1; i >= 0; i-- {
		e := w.animations[i]
		if e.trigger != TriggerMoveResize && e.trigger != TriggerCreated {
			continue
		}
		if b, ok := e.handle.(boxReporter); ok && e.handle.Running() {
			return b.Box()
		}
	}
	return w.allocation
}

// Destroy destroys a widget and its descendants. Mapped widgets run the
// theme's destroy animation first, carrying pseudo-class
// about-to-be-destroyed while it runs. Destroy returns true if the teardown
// has been deferred until the animation ends.
func (w *Widget) Destroy() bool {
	if w.destroyed || w.disposing {
		return false
	}
	if w.dying {
		return true
	}
	if !w.mapped {
		w.teardown()
		return false
	}
	h := w.add(TriggerDestroy, func(animation.Handle) {
		w.dying = true
		w.setPseudoClasses(append(append([]string{}, w.pseudo...), AboutToBeDestroyed), false)
	}, w.teardown)
	if h == nil {
		w.teardown()
		return false
	}
	return !w.destroyed
}

// Destroyed is true after a widget has been torn down.
func (w *Widget) Destroyed() bool {
	return w.destroyed
}

// teardown destroys a widget immediately, together with its descendants.
// Descendants go first, deepest last child first. Running animations are
// cancelled.
func (w *Widget) teardown() {
	if w.disposing || w.destroyed {
		return
	}
	ids := tree.Descendants(&w.stage.nodes, w.id)
	for i := len(ids) - 1; i >= 0; i-- {
		if ch, ok := w.stage.nodes.Get(ids[i]); ok {
			ch.dispose()
		}
	}
	w.dispose()
}

func (w *Widget) dispose() {
	if w.disposing || w.destroyed {
		return
	}
	w.disposing = true
	tracer().P("widget", w).Debugf("tearing down")
	w.drainAnimations()
	w.mapped = false
	w.stage.nodes.Remove(w.id)
	w.lastApplied = nil
	w.handlers = nil
	w.pending = nil
	w.destroyed = true
	if w == w.stage.root {
		tracer().Infof("stage root destroyed")
	}
}
