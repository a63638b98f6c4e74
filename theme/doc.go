/*
Package theme computes themed property values and animations for widgets.

A theme is consulted by widgets in two situations: during a resolution pass,
to compute the set of property values which currently apply to a widget
(ComputeProperties), and when a widget changes state, to find the animation
bound to the state change (LookupAnimation). Widgets expose themselves to
themes through interface Node, i.e. by element name, style classes,
pseudo-classes and their parent.

Package theme contains a CSS-based implementation, Sheet. Selectors are
matched with cascadia. As widget states are open-ended (think of
"about-to-be-destroyed"), pseudo-classes are not interpreted by the selector
engine but treated as state names: a selector

    .panel-button:hover

matches every widget with style class "panel-button" and pseudo-class
"hover". Functional pseudo-classes like :not(…) keep their meaning.

Animations are declared with properties named after their trigger, where
colons of the trigger name are replaced by dashes:

    .popup { animation-show: fade-in 200ms ease-out; }
    .popup { animation-class-added-urgent: pulse 1s; }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shelltk.theme'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.theme")
}
