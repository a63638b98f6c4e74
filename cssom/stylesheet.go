package cssom

import "github.com/npillmayer/shelltk/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// theme engine, we introduce an interface for CSS stylesheets.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	Name() string           // name of the stylesheet, e.g. a file name
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "opacity"
	Value(string) style.Property // property value for key, e.g. "0.5"
	IsImportant(string) bool     // is property key marked as important?
}
