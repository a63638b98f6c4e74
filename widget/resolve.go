package widget

import (
	"fmt"

	"github.com/npillmayer/shelltk/style"
	"github.com/npillmayer/shelltk/tree"
	"go.uber.org/multierr"
)

// assignment is a property value staged during a resolution pass.
type assignment struct {
	key   string
	value style.Value
}

// Invalidate restyles a widget: the theme's values for the widget are
// converted and applied, and properties the theme stopped setting are reset
// to their defaults. Unmapped widgets are skipped, unless a restyle has been
// forced with EnsureStyle.
//
// Values which fail to convert are logged and skipped for this pass; the
// property keeps its previous value.
func (w *Widget) Invalidate() {
	if w.destroyed {
		return
	}
	if !w.mapped && !w.forceRevalidate {
		tracer().P("widget", w).Debugf("not mapped, skipping restyle")
		return
	}
	st := w.stage
	possible := st.registry.GetAll(w.class, true)
	themed := st.computeProperties(w)
	var staged []assignment
	var errs error
	for _, key := range themed.Keys() {
		d, ok := possible[key]
		if !ok {
			continue
		}
		c, _ := themed.Get(key)
		v, err := d.Convert(c.Value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s [%s]: %w", key, c.Origin, err))
			continue
		}
		staged = append(staged, assignment{key, v})
	}
	if errs != nil {
		tracer().P("widget", w).Errorf("restyle: %v", errs)
	}
	var resets []assignment
	for _, key := range w.lastApplied.Keys() {
		if themed.Has(key) {
			continue
		}
		if d, ok := possible[key]; ok {
			resets = append(resets, assignment{key, d.Default()})
		}
	}
	changed := w.apply(resets, staged)
	w.lastApplied = themed
	if changed {
		st.repaint(w)
	}
	w.forceRevalidate = false
}

// apply commits the resets and the themed values of a pass in one batch.
// Defaults are restored first; no key is in both lists.
func (w *Widget) apply(resets, staged []assignment) bool {
	w.freezeNotify()
	defer w.thawNotify()
	changed := false
	for _, a := range resets {
		if w.setValue(a.key, a.value) {
			tracer().P("widget", w).Debugf("%s reset to default %v", a.key, a.value)
			changed = true
		}
	}
	for _, a := range staged {
		if w.setValue(a.key, a.value) {
			changed = true
		}
	}
	return changed
}

// EnsureStyle restyles a widget even if it is not mapped.
func (w *Widget) EnsureStyle() {
	w.forceRevalidate = true
	w.Invalidate()
}

// AppliedStyle returns the theme's values applied during the last restyle.
// Clients must not modify the set.
func (w *Widget) AppliedStyle() *style.ComputedSet {
	return w.lastApplied
}

// invalidateRecursive restyles a widget and all its descendants, parents
// first. Unmapped widgets skip themselves, but their children are visited.
func (w *Widget) invalidateRecursive() {
	if w.destroyed {
		return
	}
	tree.TopDown(&w.stage.nodes, w.id, func(_ tree.ID, n *Widget) error {
		n.Invalidate()
		return nil
	})
}
