/*
Package style deals with raw and converted values of themable properties.

Themes deliver property values as strings, just like CSS declarations are
written. Widgets store native values, i.e. booleans, numbers, colors and
boxes. This package bridges the two: every stylable property declares a
semantic value type, and a closed set of parsers converts raw strings to
native values depending on that type tag.

A resolution pass of a theme results in a ComputedSet, which maps property
names to raw values together with their provenance.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shelltk.style'
func tracer() tracing.Trace {
	return tracing.Select("shelltk.style")
}
