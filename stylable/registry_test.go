package stylable

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shelltk/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClasses(t *testing.T) (*Registry, ClassID, ClassID) {
	reg := NewRegistry()
	base := reg.RegisterClass("Widget", NoClass,
		NativeProperty{Name: "opacity", Type: style.Float, Default: 1.0, Flags: ReadWrite},
		NativeProperty{Name: "name", Type: style.String, Flags: Readable | ConstructOnly | Writable},
		NativeProperty{Name: "width", Type: style.Int, Flags: Readable},
	)
	button := reg.RegisterClass("Button", base,
		NativeProperty{Name: "label", Type: style.String, Default: "", Flags: ReadWrite},
	)
	require.NotEqual(t, NoClass, base)
	require.NotEqual(t, NoClass, button)
	return reg, base, button
}

func TestRegisterClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg, base, button := setupClasses(t)
	id, ok := reg.ClassByName("Button")
	assert.True(t, ok)
	assert.Equal(t, button, id)
	assert.Equal(t, []ClassID{button, base}, reg.Ancestors(button))
	assert.True(t, reg.IsA(button, base))
	assert.False(t, reg.IsA(base, button))
	np, ok := reg.NativeProperty(button, "opacity")
	assert.True(t, ok, "native properties are inherited")
	assert.Equal(t, 1.0, np.Default)
	// duplicate class name yields existing class
	assert.Equal(t, base, reg.RegisterClass("Widget", NoClass))
}

func TestInstallByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg, base, button := setupClasses(t)
	require.NoError(t, reg.InstallByName(base, "opacity"))
	err := reg.InstallByName(base, "opacity")
	assert.True(t, errors.Is(err, ErrRegistrationConflict), "expected conflict, have %v", err)
	err = reg.InstallByName(base, "no-such")
	assert.True(t, errors.Is(err, ErrUnknownProperty), "expected unknown property, have %v", err)
	err = reg.InstallByName(base, "name")
	assert.True(t, errors.Is(err, ErrNotWritable), "construct-only must be refused, have %v", err)
	err = reg.InstallByName(base, "width")
	assert.True(t, errors.Is(err, ErrNotWritable), "read-only must be refused, have %v", err)
	// subclass may install an inherited native property
	require.NoError(t, reg.InstallByName(button, "opacity"))
	assert.Len(t, reg.GetAll(base, false), 1)
}

func TestInstall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg, _, button := setupClasses(t)
	np := NativeProperty{Name: "spacing", Type: style.Int, Default: 4, Flags: ReadWrite}
	require.NoError(t, reg.Install(button, np))
	got, ok := reg.NativeProperty(button, "spacing")
	assert.True(t, ok, "install declares missing native property")
	assert.Equal(t, 4, got.Default)
	assert.ErrorIs(t, reg.Install(button, np), ErrRegistrationConflict)
	ro := NativeProperty{Name: "ro", Type: style.Int, Flags: Readable}
	assert.ErrorIs(t, reg.Install(button, ro), ErrNotWritable)
	_, declared := reg.NativeProperty(button, "ro")
	assert.False(t, declared, "failed install must be a no-op")
	assert.ErrorIs(t, reg.Install(ClassID(99), np), ErrUnknownClass)
}

func TestGetAllShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg, base, button := setupClasses(t)
	require.NoError(t, reg.Install(base, NativeProperty{Name: "color", Type: style.Color, Flags: ReadWrite}))
	require.NoError(t, reg.InstallByName(base, "opacity"))
	require.NoError(t, reg.Install(button, NativeProperty{Name: "color", Type: style.String, Flags: ReadWrite}))
	//
	local := reg.GetAll(button, false)
	assert.Len(t, local, 1)
	all := reg.GetAll(button, true)
	assert.Len(t, all, 2)
	assert.Equal(t, button, all["color"].Owner(), "subclass descriptor must shadow ancestor")
	assert.Equal(t, base, all["opacity"].Owner())
	// result is owned by caller
	delete(all, "opacity")
	assert.Len(t, reg.GetAll(button, true), 2)
	d, ok := reg.Lookup(button, "opacity")
	assert.True(t, ok)
	assert.Equal(t, style.Float, d.Type())
}

func TestTeardown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg, base, button := setupClasses(t)
	require.NoError(t, reg.InstallByName(base, "opacity"))
	require.NoError(t, reg.InstallByName(button, "label"))
	reg.Teardown(button)
	all := reg.GetAll(button, true)
	assert.Len(t, all, 1)
	_, ok := all["opacity"]
	assert.True(t, ok)
	// after teardown, the name may be installed again
	assert.NoError(t, reg.InstallByName(button, "label"))
}

func TestDefaultNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.style")
	defer teardown()
	//
	reg := NewRegistry()
	c := reg.RegisterClass("Odd", NoClass,
		NativeProperty{Name: "f", Type: style.Float, Default: 1, Flags: ReadWrite}, // int for a float
	)
	np, _ := reg.NativeProperty(c, "f")
	assert.Equal(t, 0.0, np.Default)
}
