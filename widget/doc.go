/*
Package widget implements themable scene nodes.

Overview

Widgets are the building blocks of a stage, i.e. a tree of scene nodes which
share a class registry and a theme. Every widget has an identity made up from
an element name, an optional ID, an ordered set of style classes, an ordered
set of pseudo-classes and its position in the tree. The theme computes
property values from this identity.

Styling

Whenever the identity of a widget changes, the widget and all of its
descendants are restyled. A restyle asks the theme for values, converts them
to the native types of the stylable properties of the widget's class and
applies them in one batch, so that observers connected with Connect receive a
single change notification per pass. Properties the theme stopped setting are
reset to their defaults. Unmapped widgets are not restyled, unless forced
with EnsureStyle.

Animations

Discrete state transitions fire triggers:

    show, hide                        visibility
    class-added:X, class-removed:X    style classes
    pseudo-class-added:X, …removed:X  pseudo-classes
    created                           first time a widget gets mapped
    move-resize                       allocation change, if armed
    destroy                           animated destruction

For every trigger the theme may provide an animation. A widget keeps at most
one running animation per animation ID, and a trigger supersedes the
animation of its opposite trigger (e.g. show supersedes hide).

Widgets are not safe for concurrent use. Everything, including animation
completion callbacks, is expected to happen on the UI thread.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shelltk.widget'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.widget")
}
