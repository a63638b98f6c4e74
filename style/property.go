package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a themable property. For example, with
//
//     opacity: 0.5
//
// a property value of "0.5" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient predicates and to have a distinct type for conversion.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone checks wether a property is set to "none".
func (p Property) IsNone() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "none")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Computed style sets ----------------------------------------------

// Provenance tells where a computed value originates from.
type Provenance struct {
	Sheet     string // name of the stylesheet, if known
	Selector  string // selector of the winning rule
	Important bool   // was the declaration marked !important
	Inherited bool   // value has been cascaded from an ancestor
}

func (o Provenance) String() string {
	s := o.Selector
	if o.Sheet != "" {
		s = o.Sheet + ": " + s
	}
	if o.Important {
		s += " !important"
	}
	if o.Inherited {
		s += " (inherited)"
	}
	return s
}

// Computed is a single themed value together with its provenance.
type Computed struct {
	Value  Property
	Origin Provenance
}

// ComputedSet is the result of one resolution pass of a theme for a node.
// It maps property names to raw values. nil is a legal (empty) computed set.
//
// Computed sets are produced once per pass and then handed over to the
// node they have been computed for; they are never merged.
type ComputedSet struct {
	m map[string]Computed
}

// NewComputedSet returns a new empty computed set.
func NewComputedSet() *ComputedSet {
	return &ComputedSet{}
}

// Len returns the number of properties in the set.
func (cs *ComputedSet) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.m)
}

// Get a property's computed value.
func (cs *ComputedSet) Get(key string) (Computed, bool) {
	if cs == nil || cs.m == nil {
		return Computed{}, false
	}
	c, ok := cs.m[key]
	return c, ok
}

// Has is a predicate wether a property is contained in the set.
func (cs *ComputedSet) Has(key string) bool {
	_, ok := cs.Get(key)
	return ok
}

// Set a property's value. Overwrites an existing value, if present.
func (cs *ComputedSet) Set(key string, p Property, origin Provenance) {
	if cs.m == nil {
		cs.m = make(map[string]Computed)
	}
	cs.m[key] = Computed{Value: p, Origin: origin}
}

// Delete removes a property from the set.
func (cs *ComputedSet) Delete(key string) {
	if cs == nil || cs.m == nil {
		return
	}
	delete(cs.m, key)
}

// Keys returns the property names of the set in sorted order.
func (cs *ComputedSet) Keys() []string {
	if cs == nil {
		return nil
	}
	keys := make([]string, 0, len(cs.m))
	for k := range cs.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of the set, sorted by name.
func (cs *ComputedSet) Properties() []KeyValue {
	keys := cs.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, cs.m[k].Value}
	}
	return r
}

// Clone returns a shallow copy of the set.
func (cs *ComputedSet) Clone() *ComputedSet {
	c := NewComputedSet()
	if cs == nil {
		return c
	}
	for k, v := range cs.m {
		c.Set(k, v.Value, v.Origin)
	}
	return c
}

// Stringer for computed sets; used for debugging.
func (cs *ComputedSet) String() string {
	s := "ComputedSet = {\n"
	for _, k := range cs.Keys() {
		c := cs.m[k]
		s += fmt.Sprintf("  %s = %s   [%s]\n", k, c.Value, c.Origin)
	}
	s += "}"
	return s
}
