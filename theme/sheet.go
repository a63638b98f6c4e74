package theme

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/cssom"
	"github.com/npillmayer/shelltk/style"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Sheet is a Theme backed by CSS stylesheets.
type Sheet struct {
	rules      []compiledRule
	factory    animation.Factory
	defaults   animation.Spec
	generation int
}

type compiledRule struct {
	sheet     string
	order     int // source order across all stylesheets
	rule      cssom.Rule
	selectors cascadia.SelectorGroup
}

// declaration is a candidate value for a property during a cascade.
type declaration struct {
	key         string
	value       style.Property
	important   bool
	specificity cascadia.Specificity
	order       int
	origin      style.Provenance
}

var _ Theme = &Sheet{}

// NewSheet creates a theme from stylesheets. Animations are created with
// factory; if factory is nil, the theme will not animate anything.
//
// Rules with invalid selectors are skipped. NewSheet returns the theme
// together with an error collecting all skipped rules.
func NewSheet(factory animation.Factory, sheets ...cssom.StyleSheet) (*Sheet, error) {
	s := &Sheet{factory: factory, defaults: animation.DefaultSpec}
	var errs error
	for _, sheet := range sheets {
		errs = multierr.Append(errs, s.AddStyleSheet(sheet))
	}
	return s, errs
}

// SetAnimationDefaults sets the duration and curve for animation
// declarations which omit them.
func (s *Sheet) SetAnimationDefaults(spec animation.Spec) {
	s.defaults = spec
}

// AddStyleSheet appends the rules of a stylesheet. Rules added later win
// over earlier rules of equal specificity.
func (s *Sheet) AddStyleSheet(sheet cssom.StyleSheet) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	var errs error
	for _, r := range sheet.Rules() {
		sels, err := compileSelector(r.Selector())
		if err != nil {
			tracer().Errorf("stylesheet %s: %v", sheet.Name(), err)
			errs = multierr.Append(errs, err)
			continue
		}
		s.rules = append(s.rules, compiledRule{
			sheet:     sheet.Name(),
			order:     len(s.rules),
			rule:      r,
			selectors: sels,
		})
	}
	s.generation++
	tracer().Debugf("theme now has %d rules (generation %d)", len(s.rules), s.generation)
	return errs
}

// Generation counts changes of the theme's rules. Clients may compare
// generations to find out if they have to restyle.
func (s *Sheet) Generation() int {
	return s.generation
}

// ComputeProperties computes the themed values for a node.
//
// Interface Theme.
func (s *Sheet) ComputeProperties(n Node) *style.ComputedSet {
	chain := lineage(n)
	if len(chain) == 0 {
		return style.NewComputedSet()
	}
	hs := project(chain)
	var computed *style.ComputedSet
	for i := range chain {
		local := style.NewComputedSet()
		for key, d := range s.winners(hs[i], isStyleProperty) {
			local.Set(key, d.value, d.origin)
		}
		cascadeFromParent(local, computed)
		for _, key := range local.Keys() {
			if c, _ := local.Get(key); c.Value.IsInitial() {
				local.Delete(key) // back to the widget's default
			}
		}
		computed = local
	}
	return computed
}

func isStyleProperty(key string) bool {
	return !isAnimationProperty(key)
}

// LookupAnimation creates an animation for a trigger, if the theme declares
// one for the node.
//
// Interface Theme.
func (s *Sheet) LookupAnimation(n Node, trigger string) animation.Handle {
	chain := lineage(n)
	if len(chain) == 0 {
		return nil
	}
	key := AnimationProperty(trigger)
	hs := project(chain)
	w := s.winners(hs[len(hs)-1], func(k string) bool { return k == key })
	d, ok := w[key]
	if !ok {
		return nil
	}
	spec, ok, err := animation.ParseSpec(d.value, s.defaults)
	if err != nil {
		tracer().P("trigger", trigger).Errorf("%s: %v", d.origin, err)
		return nil
	}
	if !ok {
		return nil
	}
	if s.factory == nil {
		tracer().Errorf("theme has no animation factory, cannot create %s", spec.ID)
		return nil
	}
	tracer().P("trigger", trigger).Debugf("animation %s from %s", spec, d.origin)
	return s.factory.NewAnimation(spec)
}

// winners runs the cascade for a projected node: among all matching
// declarations for a property, !important beats normal, then higher
// specificity beats lower, then later beats earlier.
func (s *Sheet) winners(h *html.Node, accept func(string) bool) map[string]declaration {
	var decls []declaration
	for _, r := range s.rules {
		spec, ok := bestMatch(r.selectors, h)
		if !ok {
			continue
		}
		for _, key := range r.rule.Properties() {
			if !accept(key) {
				continue
			}
			important := r.rule.IsImportant(key)
			decls = append(decls, declaration{
				key:         key,
				value:       r.rule.Value(key),
				important:   important,
				specificity: spec,
				order:       r.order,
				origin: style.Provenance{
					Sheet:     r.sheet,
					Selector:  strings.TrimSpace(r.rule.Selector()),
					Important: important,
				},
			})
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		a, b := decls[i], decls[j]
		if a.important != b.important {
			return !a.important
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.order < b.order
	})
	w := make(map[string]declaration, len(decls))
	for _, d := range decls {
		w[d.key] = d // later entries win
	}
	return w
}

// bestMatch returns the highest specificity of the selectors in a group
// which match h.
func bestMatch(group cascadia.SelectorGroup, h *html.Node) (cascadia.Specificity, bool) {
	var best cascadia.Specificity
	found := false
	for _, sel := range group {
		if !sel.Match(h) {
			continue
		}
		if sp := sel.Specificity(); !found || best.Less(sp) {
			best, found = sp, true
		}
	}
	return best, found
}
