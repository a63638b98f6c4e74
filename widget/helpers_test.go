package widget

import (
	"testing"

	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/stylable"
	"github.com/npillmayer/shelltk/style"
	"github.com/npillmayer/shelltk/theme"
)

// fakeTheme records the queries of widgets and answers them from maps.
type fakeTheme struct {
	tl      *animation.Timeline
	styles  func(n theme.Node) map[string]string
	anims   map[string]animation.Spec
	custom  map[string]func() animation.Handle
	queried []theme.Node
	lookups []string
}

func newFakeTheme() *fakeTheme {
	return &fakeTheme{
		tl:     animation.NewTimeline(),
		anims:  make(map[string]animation.Spec),
		custom: make(map[string]func() animation.Handle),
	}
}

func (th *fakeTheme) ComputeProperties(n theme.Node) *style.ComputedSet {
	th.queried = append(th.queried, n)
	cs := style.NewComputedSet()
	if th.styles != nil {
		for k, v := range th.styles(n) {
			cs.Set(k, style.Property(v), style.Provenance{Sheet: "fake", Selector: "*"})
		}
	}
	return cs
}

func (th *fakeTheme) LookupAnimation(n theme.Node, trigger string) animation.Handle {
	th.lookups = append(th.lookups, trigger)
	if mk, ok := th.custom[trigger]; ok {
		return mk()
	}
	if spec, ok := th.anims[trigger]; ok {
		return th.tl.NewAnimation(spec)
	}
	return nil
}

var _ theme.Theme = &fakeTheme{}

// setup creates a shown stage with a fake theme.
func setup(t *testing.T) (*Stage, *fakeTheme) {
	th := newFakeTheme()
	st := NewStage(stylable.NewRegistry(), th)
	st.Show()
	th.queried, th.lookups = nil, nil
	return st, th
}

func newWidget(st *Stage, opts ...Option) *Widget {
	return st.New(RegisterWidgetClass(st.Registry()), opts...)
}

func triggers(w *Widget) []string {
	var r []string
	for _, a := range w.ActiveAnimations() {
		r = append(r, a.Trigger)
	}
	return r
}

// stubbornHandle signals completion on every call to ForceComplete or
// Release, even after it has completed.
type stubbornHandle struct {
	id        string
	running   bool
	signals   int
	listeners []func(animation.Handle)
}

func (h *stubbornHandle) ID() string                            { return h.id }
func (h *stubbornHandle) Run()                                  { h.running = true }
func (h *stubbornHandle) ForceComplete()                        { h.signal() }
func (h *stubbornHandle) Release()                              { h.signal() }
func (h *stubbornHandle) OnCompleted(fn func(animation.Handle)) { h.listeners = append(h.listeners, fn) }
func (h *stubbornHandle) Running() bool                         { return h.running }

func (h *stubbornHandle) signal() {
	h.running = false
	h.signals++
	for _, l := range h.listeners {
		l(h)
	}
}

var _ animation.Handle = &stubbornHandle{}
