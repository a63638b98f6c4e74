/*
Package stylable manages widget classes and their themable properties.

Every widget is an instance of a class. Classes form a single-inheritance
hierarchy and declare native properties, i.e. properties every instance
carries with a type and a default value. A subset of these may be made
stylable: the theme may then set their values during a resolution pass.

Pools of stylable property descriptors are kept per class in a Registry.
Looking up the stylable properties of a class may walk the ancestor classes,
with descriptors of a subclass shadowing same-named descriptors of its
ancestors.

Registries are created by clients and handed to the components which need
them; there is no process-wide default registry. Registration happens at
initialization time, lookups happen during styling. Registries are not safe
for concurrent mutation.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shelltk.style'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.style")
}
