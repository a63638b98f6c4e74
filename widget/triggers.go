package widget

import (
	"errors"

	"github.com/npillmayer/shelltk/animation"
)

// ErrDuplicateAnimation is logged when a trigger resolves to an animation
// which is already running on a widget.
var ErrDuplicateAnimation = errors.New("animation already active")

// Trigger keys for state transitions.
const (
	TriggerShow       = "show"
	TriggerHide       = "hide"
	TriggerCreated    = "created"
	TriggerMoveResize = "move-resize"
	TriggerDestroy    = "destroy"
)

// ClassAdded returns the trigger key for adding a style class.
func ClassAdded(class string) string { return "class-added:" + class }

// ClassRemoved returns the trigger key for removing a style class.
func ClassRemoved(class string) string { return "class-removed:" + class }

// PseudoClassAdded returns the trigger key for adding a pseudo-class.
func PseudoClassAdded(pc string) string { return "pseudo-class-added:" + pc }

// PseudoClassRemoved returns the trigger key for removing a pseudo-class.
func PseudoClassRemoved(pc string) string { return "pseudo-class-removed:" + pc }

// entry is the bookkeeping record of an active animation.
type entry struct {
	trigger string
	handle  animation.Handle
	// inDestruction is set as soon as the entry is being freed. Completion
	// signals for an entry in destruction are ignored.
	inDestruction bool
	done          func() // called once after the entry has been freed
}

// Animation describes an active animation of a widget.
type Animation struct {
	Trigger string
	Handle  animation.Handle
}

// ActiveAnimations lists the running animations of a widget, oldest first.
func (w *Widget) ActiveAnimations() []Animation {
	r := make([]Animation, 0, len(w.animations))
	for _, e := range w.animations {
		r = append(r, Animation{Trigger: e.trigger, Handle: e.handle})
	}
	return r
}

// AddAnimation starts the theme's animation for a trigger. It returns nil
// if the theme does not animate the trigger, if an animation with the same ID
// is already running, or if the widget is being destroyed.
func (w *Widget) AddAnimation(trigger string) animation.Handle {
	return w.add(trigger, nil, nil)
}

// RemoveAnimation cancels all animations started for a trigger.
func (w *Widget) RemoveAnimation(trigger string) {
	for _, e := range w.entriesFor(trigger) {
		w.release(e)
	}
}

// ReplaceAnimation starts the animation for trigger newKey, superseding the
// animation of trigger oldKey. If newKey starts an animation, the old one is
// cancelled; otherwise the old one is completed. It returns the new
// animation or nil.
func (w *Widget) ReplaceAnimation(oldKey, newKey string) animation.Handle {
	return w.replace(oldKey, newKey, nil, nil)
}

func (w *Widget) add(trigger string, prepare func(animation.Handle), done func()) animation.Handle {
	h := w.lookup(trigger, nil)
	if h == nil {
		return nil
	}
	return w.start(trigger, h, prepare, done)
}

func (w *Widget) replace(oldKey, newKey string, prepare func(animation.Handle), done func()) animation.Handle {
	var old *entry
	if olds := w.entriesFor(oldKey); len(olds) > 0 {
		old = olds[0]
	}
	h := w.lookup(newKey, old)
	if h == nil {
		if old != nil {
			tracer().P("widget", w).Debugf("%s completes %s", newKey, old.trigger)
			old.handle.ForceComplete()
			w.release(old)
		}
		return nil
	}
	if old != nil {
		tracer().P("widget", w).Debugf("%s cancels %s", newKey, old.trigger)
		w.release(old)
	}
	return w.start(newKey, h, prepare, done)
}

// lookup asks the theme for the animation of a trigger. Animations with the
// ID of an active entry other than except are dropped.
func (w *Widget) lookup(trigger string, except *entry) animation.Handle {
	if w.dying || w.disposing || w.destroyed {
		return nil
	}
	h := w.stage.lookupAnimation(w, trigger)
	if h == nil {
		return nil
	}
	for _, e := range w.animations {
		if e != except && e.handle.ID() == h.ID() {
			tracer().P("widget", w).P("trigger", trigger).Debugf("%v: %s", ErrDuplicateAnimation, h.ID())
			h.Release()
			return nil
		}
	}
	return h
}

func (w *Widget) start(trigger string, h animation.Handle, prepare func(animation.Handle), done func()) animation.Handle {
	e := &entry{trigger: trigger, handle: h, done: done}
	w.animations = append(w.animations, e)
	h.OnCompleted(w.completed)
	if prepare != nil {
		prepare(h)
	}
	tracer().P("widget", w).P("trigger", trigger).Debugf("starting animation %s", h.ID())
	h.Run()
	return h
}

// completed receives completion signals of animations.
func (w *Widget) completed(h animation.Handle) {
	if e := w.entryOf(h); e != nil {
		w.free(e)
	}
}

// free detaches an entry, releases its handle and calls its done callback.
func (w *Widget) free(e *entry) {
	if e.inDestruction {
		tracer().P("widget", w).Debugf("ignoring completion of %s during teardown", e.trigger)
		return
	}
	e.inDestruction = true
	w.detach(e)
	e.handle.Release()
	if e.done != nil {
		e.done()
	}
}

// release drops the widget's reference to an animation. Unfinished
// animations are cancelled and signal completion, which frees the entry.
func (w *Widget) release(e *entry) {
	e.handle.Release()
	if w.entryOf(e.handle) == e {
		w.free(e) // handle did not signal
	}
}

// drainAnimations cancels all animations of a widget being torn down. Their
// completion signals are ignored.
func (w *Widget) drainAnimations() {
	entries := w.animations
	for _, e := range entries {
		e.inDestruction = true
	}
	for _, e := range entries {
		e.handle.Release()
	}
	w.animations = nil
}

func (w *Widget) detach(e *entry) {
	for i, x := range w.animations {
		if x == e {
			w.animations = append(w.animations[:i:i], w.animations[i+1:]...)
			return
		}
	}
}

func (w *Widget) entryOf(h animation.Handle) *entry {
	for _, e := range w.animations {
		if e.handle == h {
			return e
		}
	}
	return nil
}

func (w *Widget) entriesFor(trigger string) []*entry {
	var r []*entry
	for _, e := range w.animations {
		if e.trigger == trigger {
			r = append(r, e)
		}
	}
	return r
}
