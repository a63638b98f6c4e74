package widget

import (
	"errors"
	"fmt"

	"github.com/npillmayer/shelltk/stylable"
	"github.com/npillmayer/shelltk/style"
)

// ErrPropertyType flags a value which does not match the type of a property.
var ErrPropertyType = errors.New("value does not match property type")

type handler struct {
	id int
	fn func(*Widget, []string)
}

// Property returns the current value of a native property. Properties never
// set return their class default. Unknown properties return nil.
func (w *Widget) Property(name string) style.Value {
	if v, ok := w.values[name]; ok {
		return v
	}
	if d, ok := w.stage.registry.Lookup(w.class, name); ok {
		return d.Default()
	}
	if np, ok := w.stage.registry.NativeProperty(w.class, name); ok {
		return np.Default
	}
	return nil
}

// SetProperty sets a native property. Observers are notified if the value
// changes.
func (w *Widget) SetProperty(name string, v style.Value) error {
	np, ok := w.stage.registry.NativeProperty(w.class, name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", stylable.ErrUnknownProperty, w.name, name)
	}
	if np.Flags&stylable.Writable == 0 || np.Flags&stylable.ConstructOnly != 0 {
		return fmt.Errorf("%w: %s.%s", stylable.ErrNotWritable, w.name, name)
	}
	if !np.Type.Accepts(v) {
		return fmt.Errorf("%w: %s.%s is %s, have %T", ErrPropertyType, w.name, name, np.Type, v)
	}
	w.setValue(name, v)
	return nil
}

// setValue stores a value and notifies observers. It returns false if the
// value did not change.
func (w *Widget) setValue(name string, v style.Value) bool {
	if w.Property(name) == v {
		return false
	}
	w.values[name] = v
	w.notify(name)
	return true
}

// Connect subscribes to property changes. fn receives the names of all
// properties changed, coalesced per batch. Calling the returned function
// disconnects fn.
func (w *Widget) Connect(fn func(w *Widget, changed []string)) (disconnect func()) {
	if fn == nil {
		return func() {}
	}
	w.serial++
	id := w.serial
	w.handlers = append(w.handlers, handler{id: id, fn: fn})
	return func() {
		for i, h := range w.handlers {
			if h.id == id {
				w.handlers = append(w.handlers[:i:i], w.handlers[i+1:]...)
				return
			}
		}
	}
}

func (w *Widget) notify(name string) {
	if w.frozen > 0 {
		if !contains(w.pending, name) {
			w.pending = append(w.pending, name)
		}
		return
	}
	w.emit([]string{name})
}

func (w *Widget) emit(changed []string) {
	handlers := w.handlers // handlers may disconnect themselves
	for _, h := range handlers {
		h.fn(w, changed)
	}
}

// freezeNotify starts a batch of property changes. Notifications are held
// back until the matching thawNotify. Batches nest.
func (w *Widget) freezeNotify() {
	w.frozen++
}

// thawNotify ends a batch and emits one notification for all properties
// changed during the batch.
func (w *Widget) thawNotify() {
	if w.frozen == 0 {
		tracer().P("widget", w).Errorf("unbalanced thaw of property notifications")
		return
	}
	w.frozen--
	if w.frozen > 0 || len(w.pending) == 0 {
		return
	}
	changed := w.pending
	w.pending = nil
	w.emit(changed)
}
