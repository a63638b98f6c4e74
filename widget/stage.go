package widget

import (
	"image/color"

	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/stylable"
	"github.com/npillmayer/shelltk/style"
	"github.com/npillmayer/shelltk/theme"
	"github.com/npillmayer/shelltk/tree"
)

// Names of the built-in classes.
const (
	WidgetClassName = "Widget"
	StageClassName  = "Stage"
)

// RegisterWidgetClass registers the base class of all widgets with a
// registry, if not yet present, and returns its ID. Class Widget declares
//
//     opacity           float, default 1.0, stylable
//     background-color  color, default transparent, stylable
//     name              string, construct-only
//
func RegisterWidgetClass(reg *stylable.Registry) stylable.ClassID {
	if id, ok := reg.ClassByName(WidgetClassName); ok {
		return id
	}
	id := reg.RegisterClass(WidgetClassName, stylable.NoClass,
		stylable.NativeProperty{Name: "opacity", Type: style.Float, Default: 1.0, Flags: stylable.ReadWrite},
		stylable.NativeProperty{Name: "background-color", Type: style.Color, Default: color.RGBA{}, Flags: stylable.ReadWrite},
		stylable.NativeProperty{Name: "name", Type: style.String, Flags: stylable.Readable | stylable.ConstructOnly},
	)
	reg.InstallByName(id, "opacity")
	reg.InstallByName(id, "background-color")
	return id
}

// Stage is a tree of widgets sharing a registry and a theme. The root of a
// stage is a widget of class Stage.
type Stage struct {
	registry  *stylable.Registry
	theme     theme.Theme
	nodes     tree.Arena[*Widget]
	root      *Widget
	onRepaint []func(*Widget)
}

// NewStage creates a stage. Options are applied to the root widget, which is
// initially hidden. A nil theme is legal and themes nothing.
func NewStage(reg *stylable.Registry, th theme.Theme, opts ...Option) *Stage {
	st := &Stage{registry: reg, theme: th}
	base := RegisterWidgetClass(reg)
	class, ok := reg.ClassByName(StageClassName)
	if !ok {
		class = reg.RegisterClass(StageClassName, base)
	}
	st.root = st.New(class, opts...)
	st.root.visible = false
	return st
}

// Registry returns the class registry of the stage.
func (st *Stage) Registry() *stylable.Registry {
	return st.registry
}

// Theme returns the current theme of the stage.
func (st *Stage) Theme() theme.Theme {
	return st.theme
}

// SetTheme switches themes and restyles all widgets.
func (st *Stage) SetTheme(th theme.Theme) {
	st.theme = th
	st.RestyleAll()
}

// Root returns the root widget of the stage.
func (st *Stage) Root() *Widget {
	return st.root
}

// Show maps the stage, together with all visible widgets attached to it.
func (st *Stage) Show() {
	st.root.Show()
}

// New creates a widget of a class. The widget is detached; it gets mapped
// when it is added to a mapped parent. New returns nil if the class is not
// known to the stage's registry.
func (st *Stage) New(class stylable.ClassID, opts ...Option) *Widget {
	c := st.registry.Class(class)
	if c == nil {
		tracer().Errorf("cannot create widget: %v #%d", stylable.ErrUnknownClass, class)
		return nil
	}
	w := &Widget{
		stage:   st,
		class:   class,
		name:    c.Name,
		visible: true,
		values:  make(map[string]style.Value),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.id = st.nodes.Insert(w)
	tracer().P("widget", w).Debugf("created widget %s", w.id)
	return w
}

// Lookup finds a live widget by ID.
func (st *Stage) Lookup(id tree.ID) (*Widget, bool) {
	return st.nodes.Get(id)
}

// Len returns the number of live widgets, attached or not.
func (st *Stage) Len() int {
	return st.nodes.Len()
}

// RestyleAll restyles every widget attached to the stage, e.g. after the
// rules of the theme have changed.
func (st *Stage) RestyleAll() {
	st.root.invalidateRecursive()
}

// OnRepaint subscribes to repaint requests. Widgets request a repaint
// whenever a restyle changed any of their properties.
func (st *Stage) OnRepaint(fn func(*Widget)) {
	if fn != nil {
		st.onRepaint = append(st.onRepaint, fn)
	}
}

func (st *Stage) repaint(w *Widget) {
	tracer().P("widget", w).Debugf("repaint requested")
	for _, fn := range st.onRepaint {
		fn(w)
	}
}

func (st *Stage) computeProperties(w *Widget) *style.ComputedSet {
	if st.theme == nil {
		return nil
	}
	return st.theme.ComputeProperties(w)
}

func (st *Stage) lookupAnimation(w *Widget, trigger string) animation.Handle {
	if st.theme == nil {
		return nil
	}
	return st.theme.LookupAnimation(w, trigger)
}

// --- Options ---------------------------------------------------------------

// Option configures a widget at creation time.
type Option func(*Widget)

// WithName sets the element name of a widget. The default is the class name.
func WithName(name string) Option {
	return func(w *Widget) { w.name = name }
}

// WithID sets the style ID of a widget.
func WithID(id string) Option {
	return func(w *Widget) { w.styleID = id }
}

// WithClasses sets the initial style classes of a widget.
func WithClasses(classes ...string) Option {
	return func(w *Widget) { w.classes = uniq(classes) }
}

// WithReactive makes a widget react to pointer events.
func WithReactive() Option {
	return func(w *Widget) { w.reactive = true }
}

// Hidden creates a widget which is not visible.
func Hidden() Option {
	return func(w *Widget) { w.visible = false }
}
