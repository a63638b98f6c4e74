package widget

import (
	"image/color"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/stylable"
	"github.com/npillmayer/shelltk/theme"
	"github.com/npillmayer/shelltk/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st := NewStage(stylable.NewRegistry(), nil)
	p := newWidget(st)
	c := newWidget(st)
	require.NoError(t, p.AddChild(c))
	require.NoError(t, st.Root().AddChild(p))
	assert.False(t, c.Mapped(), "stage not shown")
	st.Show()
	assert.True(t, p.Mapped())
	assert.True(t, c.Mapped())
	p.Hide()
	assert.False(t, p.Mapped())
	assert.False(t, c.Mapped())
	assert.True(t, c.Visible())
	p.Show()
	assert.True(t, c.Mapped())
	//
	c.Hide()
	p.Hide()
	p.Show()
	assert.False(t, c.Mapped(), "hidden child stays unmapped")
	require.NoError(t, st.Root().AddChild(c))
	assert.Equal(t, st.Root(), c.Parent())
	assert.Empty(t, p.Children())
	c.Show()
	assert.True(t, c.Mapped())
	p.RemoveChild(c) // not a child of p
	assert.True(t, c.Mapped())
	st.Root().RemoveChild(c)
	assert.False(t, c.Mapped())
	assert.Nil(t, c.Parent())
}

func TestTreeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, _ := setup(t)
	p := newWidget(st)
	c := newWidget(st)
	require.NoError(t, p.AddChild(c))
	assert.ErrorIs(t, c.AddChild(p), tree.ErrCycle)
	other, _ := setup(t)
	assert.ErrorIs(t, p.AddChild(newWidget(other)), ErrStage)
	assert.Nil(t, st.New(stylable.ClassID(999)))
	//
	a := newWidget(st, WithName("a"))
	b := newWidget(st, WithName("b"))
	require.NoError(t, p.AddChild(a))
	require.NoError(t, p.InsertChild(0, b))
	assert.Equal(t, []*Widget{b, c, a}, p.Children())
}

func TestIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, _ := setup(t)
	w := newWidget(st, WithName("Button"), WithID("ok"), WithClasses("a", "b", "a"))
	assert.Equal(t, []string{"a", "b"}, w.StyleClasses())
	assert.Equal(t, "ok", w.StyleID())
	w.SetPseudoClasses("checked", "focus")
	assert.Equal(t, "Button#ok.a.b:checked:focus", w.String())
	w.RemovePseudoClass("checked")
	assert.False(t, w.HasPseudoClass("checked"))
	w.SetStyleClasses()
	assert.Empty(t, w.StyleClasses())
	parent, ok := w.StyleParent()
	assert.False(t, ok)
	assert.Nil(t, parent)
}

func TestHover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, th := setup(t)
	th.anims[PseudoClassAdded(Hover)] = animation.Spec{ID: "glow", Duration: time.Second}
	w := newWidget(st)
	require.NoError(t, st.Root().AddChild(w))
	w.SetHover(true)
	assert.False(t, w.HasPseudoClass(Hover), "widget is not reactive")
	w.SetReactive(true)
	w.SetHover(true)
	assert.True(t, w.HasPseudoClass(Hover))
	assert.Equal(t, []string{PseudoClassAdded(Hover)}, triggers(w))
	w.SetReactive(false)
	assert.False(t, w.HasPseudoClass(Hover))
	assert.Empty(t, w.ActiveAnimations(), "glow completed by pseudo-class-removed:hover")
}

func TestPropertyNotifications(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	st, _ := setup(t)
	w := newWidget(st)
	var got [][]string
	disconnect := w.Connect(func(_ *Widget, changed []string) {
		got = append(got, changed)
	})
	w.freezeNotify()
	require.NoError(t, w.SetProperty("opacity", 0.3))
	require.NoError(t, w.SetProperty("background-color", color.RGBA{R: 1, A: 255}))
	require.NoError(t, w.SetProperty("opacity", 0.4))
	assert.Empty(t, got)
	w.thawNotify()
	assert.Equal(t, [][]string{{"opacity", "background-color"}}, got)
	require.NoError(t, w.SetProperty("opacity", 0.4))
	assert.Len(t, got, 1, "unchanged value must not notify")
	//
	assert.ErrorIs(t, w.SetProperty("opacity", "x"), ErrPropertyType)
	assert.ErrorIs(t, w.SetProperty("name", "x"), stylable.ErrNotWritable)
	assert.ErrorIs(t, w.SetProperty("nope", 1), stylable.ErrUnknownProperty)
	assert.Nil(t, w.Property("nope"))
	disconnect()
	require.NoError(t, w.SetProperty("opacity", 0.5))
	assert.Len(t, got, 1)
}

func TestStyledByStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.widget")
	defer teardown()
	//
	tl := animation.NewTimeline()
	sheet, err := theme.NewSheet(tl)
	require.NoError(t, err)
	require.NoError(t, sheet.Load("shell.css", `
Stage Button { opacity: 0.8; }
Button:hover { opacity: 1; background-color: #ff0000; animation-pseudo-class-added-hover: glow 100ms; }
Button.urgent { animation-class-added-urgent: blink 200ms linear; }
Button { animation-destroy: fade-out 100ms; }
Button:about-to-be-destroyed { opacity: 0.2; }
`))
	reg := stylable.NewRegistry()
	st := NewStage(reg, sheet)
	button := reg.RegisterClass("Button", RegisterWidgetClass(reg))
	st.Show()
	b := st.New(button, WithReactive())
	require.NoError(t, st.Root().AddChild(b))
	assert.Equal(t, 0.8, b.Property("opacity"))
	//
	b.SetHover(true)
	assert.Equal(t, 1.0, b.Property("opacity"))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, b.Property("background-color"))
	assert.Equal(t, []string{PseudoClassAdded(Hover)}, triggers(b))
	b.SetHover(false)
	assert.Equal(t, 0.8, b.Property("opacity"))
	assert.Equal(t, color.RGBA{}, b.Property("background-color"), "reset to default")
	assert.Empty(t, b.ActiveAnimations())
	//
	b.AddStyleClass("urgent")
	require.Equal(t, []string{ClassAdded("urgent")}, triggers(b))
	assert.Equal(t, "blink", b.ActiveAnimations()[0].Handle.ID())
	tl.Advance(200 * time.Millisecond)
	assert.Empty(t, b.ActiveAnimations())
	//
	assert.True(t, b.Destroy())
	assert.Equal(t, 0.2, b.Property("opacity"))
	tl.Advance(100 * time.Millisecond)
	assert.True(t, b.Destroyed())
}
