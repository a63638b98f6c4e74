package theme

import (
	"strings"

	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/style"
)

// Node is the view a theme has of a widget.
type Node interface {
	StyleElementName() string     // optional element name, may be empty
	StyleID() string              // optional unique name, may be empty
	StyleClasses() []string       // ordered set of style classes
	StylePseudoClasses() []string // ordered set of pseudo-classes
	StyleParent() (Node, bool)    // enclosing node, if any
}

// Theme is the interface widgets use to get themed values.
type Theme interface {
	// ComputeProperties returns the raw values of all properties the theme
	// sets for a node, given its current identity and ancestry.
	ComputeProperties(n Node) *style.ComputedSet
	// LookupAnimation returns a fresh, idle animation for a trigger, or nil
	// if the theme does not animate this trigger for this node.
	LookupAnimation(n Node, trigger string) animation.Handle
}

// AnimationPrefix starts the names of animation declarations.
const AnimationPrefix = "animation-"

// AnimationProperty returns the name of the declaration which binds an
// animation to a trigger, e.g. "class-added:urgent" → "animation-class-added-urgent".
func AnimationProperty(trigger string) string {
	return AnimationPrefix + strings.ReplaceAll(trigger, ":", "-")
}

func isAnimationProperty(key string) bool {
	return strings.HasPrefix(key, AnimationPrefix)
}

// lineage returns the chain of nodes from the root down to n.
func lineage(n Node) []Node {
	var chain []Node
	for ok := n != nil; ok; n, ok = n.StyleParent() {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
