package theme

import (
	"strings"

	"github.com/npillmayer/shelltk/style"
)

// IsInherited returns wether the standard behaviour for a property is to be
// inherited or not, i.e., a widget without a value for the property takes
// the value of its parent.
func IsInherited(key string) bool {
	if strings.HasPrefix(key, "font-") || strings.HasPrefix(key, "text-") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "visibility", "white-space":
		return true
	case "letter-spacing", "line-height", "word-spacing", "icon-size":
		return true
	}
	return false
}

// cascadeFromParent completes a computed set with the values a node
// inherits from its parent's computed set. Explicit "inherit" values are
// resolved against the parent as well; if the parent has no value, the
// property stays unset.
func cascadeFromParent(local *style.ComputedSet, parent *style.ComputedSet) {
	for _, key := range local.Keys() {
		c, _ := local.Get(key)
		if !c.Value.IsInherit() {
			continue
		}
		if pc, ok := parent.Get(key); ok {
			origin := pc.Origin
			origin.Inherited = true
			local.Set(key, pc.Value, origin)
		} else {
			tracer().P("key", key).Debugf("cannot inherit %s: parent has no value", key)
			local.Delete(key)
		}
	}
	for _, key := range parent.Keys() {
		if !IsInherited(key) || local.Has(key) {
			continue
		}
		pc, _ := parent.Get(key)
		origin := pc.Origin
		origin.Inherited = true
		local.Set(key, pc.Value, origin)
	}
}
