/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shelltk/cssom"
	"github.com/npillmayer/shelltk/style"
)

// tracer traces with key 'shelltk.theme'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.theme")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	name string
	css  css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(name string, css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{name: name, css: *css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(name string, text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", name, err)
	}
	tracer().Debugf("parsed stylesheet %s with %d top-level rules", name, len(c.Rules))
	return Wrap(name, c), nil
}

// ParseFile reads and parses a CSS file. The stylesheet is named after the
// base name of the file.
func ParseFile(path string) (*CSSStyles, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(filepath.Base(path), string(text))
}

// Name returns the name of the stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Name() string {
	return sheet.name
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet, including those
// nested within at-rules, in source order.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	return collect(rules, sheet.css.Rules)
}

func collect(rules []cssom.Rule, from []*css.Rule) []cssom.Rule {
	for _, r := range from {
		switch r.Kind {
		case css.QualifiedRule:
			rules = append(rules, Rule(*r))
		case css.AtRule:
			rules = collect(rules, r.Rules)
		}
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a rule declares a property more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

var _ cssom.Rule = &Rule{}
