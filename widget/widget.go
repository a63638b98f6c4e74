package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/shelltk/stylable"
	"github.com/npillmayer/shelltk/style"
	"github.com/npillmayer/shelltk/theme"
	"github.com/npillmayer/shelltk/tree"
)

// ErrStage flags an attempt to link widgets of different stages, or to link
// a widget which has been destroyed.
var ErrStage = errors.New("widget does not belong to this stage")

// AboutToBeDestroyed is the pseudo-class of widgets running their destroy
// animation.
const AboutToBeDestroyed = "about-to-be-destroyed"

// Hover is the pseudo-class of reactive widgets under the pointer.
const Hover = "hover"

// Widget is a themable scene node.
type Widget struct {
	stage   *Stage
	id      tree.ID
	class   stylable.ClassID
	name    string   // element name
	styleID string   // optional unique name
	classes []string // ordered set
	pseudo  []string // ordered set

	visible         bool
	mapped          bool
	reactive        bool
	forceRevalidate bool

	values   map[string]style.Value
	frozen   int
	pending  []string // properties changed while frozen, in order of change
	handlers []handler
	serial   int

	lastApplied *style.ComputedSet

	animations []*entry
	dying      bool // destroy animation is running
	disposing  bool // teardown in progress
	destroyed  bool

	tracked          style.Box // last allocated box, safe to read at any time
	allocation       style.Box
	firstMap         mapState
	animateNextAlloc bool
}

var _ theme.Node = &Widget{}

// ID returns the ID of the widget within its stage.
func (w *Widget) ID() tree.ID {
	return w.id
}

// Stage returns the stage the widget belongs to.
func (w *Widget) Stage() *Stage {
	return w.stage
}

// Class returns the class of the widget.
func (w *Widget) Class() stylable.ClassID {
	return w.class
}

func (w *Widget) String() string {
	if w == nil {
		return "<nil widget>"
	}
	var b strings.Builder
	b.WriteString(w.name)
	if w.styleID != "" {
		b.WriteString("#" + w.styleID)
	}
	for _, c := range w.classes {
		b.WriteString("." + c)
	}
	for _, pc := range w.pseudo {
		b.WriteString(":" + pc)
	}
	return b.String()
}

// --- Identity --------------------------------------------------------------

// StyleElementName is part of interface theme.Node.
func (w *Widget) StyleElementName() string { return w.name }

// StyleID is part of interface theme.Node.
func (w *Widget) StyleID() string { return w.styleID }

// StyleClasses is part of interface theme.Node.
func (w *Widget) StyleClasses() []string { return w.classes }

// StylePseudoClasses is part of interface theme.Node.
func (w *Widget) StylePseudoClasses() []string { return w.pseudo }

// StyleParent is part of interface theme.Node.
func (w *Widget) StyleParent() (theme.Node, bool) {
	if p := w.Parent(); p != nil {
		return p, true
	}
	return nil, false
}

// SetStyleName changes the element name of a widget.
func (w *Widget) SetStyleName(name string) {
	if w.destroyed || name == w.name {
		return
	}
	w.name = name
	w.invalidateRecursive()
}

// SetStyleID changes the style ID of a widget.
func (w *Widget) SetStyleID(id string) {
	if w.destroyed || id == w.styleID {
		return
	}
	w.styleID = id
	w.invalidateRecursive()
}

// SetStyleClasses replaces the style classes of a widget. Every class added
// fires trigger class-added:X, every class removed fires class-removed:X.
func (w *Widget) SetStyleClasses(classes ...string) {
	if w.destroyed {
		return
	}
	classes = uniq(classes)
	added, removed := diff(w.classes, classes)
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	w.classes = classes
	w.invalidateRecursive()
	for _, c := range removed {
		w.replace(ClassAdded(c), ClassRemoved(c), nil, nil)
	}
	for _, c := range added {
		w.replace(ClassRemoved(c), ClassAdded(c), nil, nil)
	}
}

// AddStyleClass adds a style class.
func (w *Widget) AddStyleClass(class string) {
	if !w.HasStyleClass(class) {
		w.SetStyleClasses(append(append([]string{}, w.classes...), class)...)
	}
}

// RemoveStyleClass removes a style class.
func (w *Widget) RemoveStyleClass(class string) {
	if w.HasStyleClass(class) {
		w.SetStyleClasses(without(w.classes, class)...)
	}
}

// HasStyleClass is a predicate wether a widget carries a style class.
func (w *Widget) HasStyleClass(class string) bool {
	return contains(w.classes, class)
}

// SetPseudoClasses replaces the pseudo-classes of a widget. Every
// pseudo-class added fires trigger pseudo-class-added:X, every pseudo-class
// removed fires pseudo-class-removed:X.
func (w *Widget) SetPseudoClasses(pseudo ...string) {
	w.setPseudoClasses(uniq(pseudo), true)
}

func (w *Widget) setPseudoClasses(pseudo []string, fire bool) {
	if w.destroyed {
		return
	}
	added, removed := diff(w.pseudo, pseudo)
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	w.pseudo = pseudo
	w.invalidateRecursive()
	if !fire {
		return
	}
	for _, pc := range removed {
		w.replace(PseudoClassAdded(pc), PseudoClassRemoved(pc), nil, nil)
	}
	for _, pc := range added {
		w.replace(PseudoClassRemoved(pc), PseudoClassAdded(pc), nil, nil)
	}
}

// AddPseudoClass adds a pseudo-class.
func (w *Widget) AddPseudoClass(pc string) {
	if !w.HasPseudoClass(pc) {
		w.SetPseudoClasses(append(append([]string{}, w.pseudo...), pc)...)
	}
}

// RemovePseudoClass removes a pseudo-class.
func (w *Widget) RemovePseudoClass(pc string) {
	if w.HasPseudoClass(pc) {
		w.SetPseudoClasses(without(w.pseudo, pc)...)
	}
}

// HasPseudoClass is a predicate wether a widget carries a pseudo-class.
func (w *Widget) HasPseudoClass(pc string) bool {
	return contains(w.pseudo, pc)
}

// --- Tree ------------------------------------------------------------------

// Parent returns the parent of a widget, or nil.
func (w *Widget) Parent() *Widget {
	if pid, ok := w.stage.nodes.Parent(w.id); ok {
		p, _ := w.stage.nodes.Get(pid)
		return p
	}
	return nil
}

// Children returns the children of a widget.
func (w *Widget) Children() []*Widget {
	ids := w.stage.nodes.Children(w.id)
	children := make([]*Widget, 0, len(ids))
	for _, id := range ids {
		if ch, ok := w.stage.nodes.Get(id); ok {
			children = append(children, ch)
		}
	}
	return children
}

// AddChild appends a child widget. A child attached to another parent is
// moved.
func (w *Widget) AddChild(ch *Widget) error {
	return w.InsertChild(-1, ch)
}

// InsertChild inserts a child widget at position i. An index out of range
// appends the child.
func (w *Widget) InsertChild(i int, ch *Widget) error {
	if ch == nil || ch.stage != w.stage || w.destroyed || ch.destroyed {
		return fmt.Errorf("%w: cannot add %v to %v", ErrStage, ch, w)
	}
	if err := w.stage.nodes.InsertChildAt(w.id, i, ch.id); err != nil {
		tracer().P("widget", w).Errorf("cannot add child %v: %v", ch, err)
		return err
	}
	ch.reparented()
	return nil
}

// RemoveChild detaches a child widget. The child is unmapped, but stays
// alive until it is destroyed.
func (w *Widget) RemoveChild(ch *Widget) {
	if ch == nil || ch.Parent() != w {
		return
	}
	w.stage.nodes.Isolate(ch.id)
	ch.reparented()
}

func (w *Widget) reparented() {
	newly := w.syncMapped()
	w.invalidateRecursive()
	for _, n := range newly {
		n.firstMapped()
	}
}

// --- Visibility ------------------------------------------------------------

// Visible is true if the widget itself is not hidden.
func (w *Widget) Visible() bool {
	return w.visible
}

// Mapped is true if the widget and all its ancestors are visible and
// attached to a shown stage.
func (w *Widget) Mapped() bool {
	return w.mapped
}

// Show makes a widget visible and fires trigger show, superseding a running
// hide animation.
func (w *Widget) Show() {
	if w.destroyed || w.visible {
		return
	}
	w.visible = true
	newly := w.syncMapped()
	for _, n := range newly {
		n.Invalidate()
	}
	for _, n := range newly {
		n.firstMapped()
	}
	w.replace(TriggerHide, TriggerShow, nil, nil)
}

// Hide makes a widget invisible and fires trigger hide, superseding a
// running show animation.
func (w *Widget) Hide() {
	if w.destroyed || !w.visible {
		return
	}
	w.visible = false
	w.syncMapped()
	w.replace(TriggerShow, TriggerHide, nil, nil)
}

var errUnchanged = errors.New("mapped state unchanged")

// syncMapped updates the mapped state of the subtree below (and including)
// w. It returns the widgets which became mapped, parents first.
func (w *Widget) syncMapped() []*Widget {
	var newly []*Widget
	tree.TopDown(&w.stage.nodes, w.id, func(id tree.ID, n *Widget) error {
		m := n.shouldMap()
		if m == n.mapped && n != w {
			return errUnchanged
		}
		if m && !n.mapped {
			newly = append(newly, n)
		}
		n.mapped = m
		return nil
	})
	return newly
}

func (w *Widget) shouldMap() bool {
	if !w.visible || w.disposing || w.destroyed {
		return false
	}
	if w == w.stage.root {
		return true
	}
	p := w.Parent()
	return p != nil && p.mapped
}

// --- Pointer state ---------------------------------------------------------

// Reactive is true if a widget reacts to pointer events.
func (w *Widget) Reactive() bool {
	return w.reactive
}

// SetReactive sets wether a widget reacts to pointer events. A widget which
// stops being reactive loses its hover state.
func (w *Widget) SetReactive(reactive bool) {
	w.reactive = reactive
	if !reactive {
		w.RemovePseudoClass(Hover)
	}
}

// SetHover is called by the host when the pointer enters or leaves a
// widget. Only reactive widgets track hover state.
func (w *Widget) SetHover(hover bool) {
	if !w.reactive {
		return
	}
	if hover {
		w.AddPseudoClass(Hover)
	} else {
		w.RemovePseudoClass(Hover)
	}
}

// --- Ordered sets ----------------------------------------------------------

func uniq(list []string) []string {
	r := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" && !contains(r, s) {
			r = append(r, s)
		}
	}
	return r
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func without(list []string, s string) []string {
	r := make([]string, 0, len(list))
	for _, x := range list {
		if x != s {
			r = append(r, x)
		}
	}
	return r
}

// diff returns the elements of b not in a, and the elements of a not in b.
func diff(a, b []string) (added, removed []string) {
	for _, s := range b {
		if !contains(a, s) {
			added = append(added, s)
		}
	}
	for _, s := range a {
		if !contains(b, s) {
			removed = append(removed, s)
		}
	}
	return
}
