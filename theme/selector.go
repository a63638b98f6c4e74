package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrSelector is wrapped by errors for selectors which cannot be compiled.
var ErrSelector = errors.New("invalid selector")

// pseudoAttr is the attribute pseudo-classes are projected to.
const pseudoAttr = "data-pseudo-class"

// rewritePseudoClasses turns state pseudo-classes into attribute selectors:
//
//     button:hover:not(:active)  →  button[data-pseudo-class~="hover"]:not([data-pseudo-class~="active"])
//
// Functional pseudo-classes, :root and pseudo-elements are kept. Widgets are
// matched without their siblings, so structural pseudo-classes like
// :first-child are refused with ErrSelector.
func rewritePseudoClasses(sel string) (string, error) {
	var b strings.Builder
	var quote byte
	brackets := 0
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			brackets++
		case c == ']':
			brackets--
		case c == ':' && brackets == 0:
			if i+1 < len(sel) && sel[i+1] == ':' { // pseudo-element
				b.WriteString("::")
				i++
				continue
			}
			j := i + 1
			for j < len(sel) && isIdentChar(sel[j]) {
				j++
			}
			ident := sel[i+1 : j]
			if structural[ident] {
				return "", fmt.Errorf("%w: %q: structural pseudo-class :%s", ErrSelector, sel, ident)
			}
			if ident == "" || ident == "root" || (j < len(sel) && sel[j] == '(') {
				break
			}
			fmt.Fprintf(&b, `[%s~="%s"]`, pseudoAttr, ident)
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

var structural = map[string]bool{
	"empty":            true,
	"first-child":      true,
	"last-child":       true,
	"only-child":       true,
	"first-of-type":    true,
	"last-of-type":     true,
	"only-of-type":     true,
	"nth-child":        true,
	"nth-last-child":   true,
	"nth-of-type":      true,
	"nth-last-of-type": true,
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// compileSelector compiles a selector group (e.g. ".a, .b:hover").
// Selectors with pseudo-elements never match widgets and are dropped.
func compileSelector(prelude string) (cascadia.SelectorGroup, error) {
	rewritten, err := rewritePseudoClasses(prelude)
	if err != nil {
		return nil, err
	}
	group, err := cascadia.ParseGroup(rewritten)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSelector, prelude, err)
	}
	sels := group[:0]
	for _, s := range group {
		if s.PseudoElement() == "" {
			sels = append(sels, s)
		}
	}
	return sels, nil
}

// project builds a chain of HTML element nodes mirroring a chain of theme
// nodes (root first), so that cascadia selectors can match them. The chain
// hangs below a document node to make :root work.
func project(chain []Node) []*html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	hs := make([]*html.Node, len(chain))
	parent := doc
	for i, n := range chain {
		h := &html.Node{
			Type: html.ElementNode,
			Data: strings.ToLower(n.StyleElementName()),
		}
		if id := n.StyleID(); id != "" {
			h.Attr = append(h.Attr, html.Attribute{Key: "id", Val: id})
		}
		if cl := n.StyleClasses(); len(cl) > 0 {
			h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: strings.Join(cl, " ")})
		}
		if pc := n.StylePseudoClasses(); len(pc) > 0 {
			h.Attr = append(h.Attr, html.Attribute{Key: pseudoAttr, Val: strings.Join(pc, " ")})
		}
		parent.AppendChild(h)
		hs[i] = h
		parent = h
	}
	return hs
}
