/*
Package scenedbg implements helpers to debug a stage of widgets.

Dump prints a widget tree to text, including the themed values applied to
each widget and its running animations. ToGraphViz outputs the same
information as a GraphViz diagram.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/shelltk/widget"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump returns a textual representation of the widget tree under w.
func Dump(w *widget.Widget) string {
	printer := treeprint.New()
	printer.SetValue(label(w))
	dumpStyle(printer, w)
	for _, ch := range w.Children() {
		dump(printer, ch)
	}
	return printer.String()
}

func dump(printer treeprint.Tree, w *widget.Widget) {
	branch := printer.AddBranch(label(w))
	dumpStyle(branch, w)
	for _, ch := range w.Children() {
		dump(branch, ch)
	}
}

func dumpStyle(printer treeprint.Tree, w *widget.Widget) {
	applied := w.AppliedStyle()
	for _, k := range applied.Keys() {
		c, _ := applied.Get(k)
		printer.AddNode(fmt.Sprintf("%s = %s  [%s]", k, c.Value, c.Origin))
	}
	for _, a := range w.ActiveAnimations() {
		printer.AddNode(fmt.Sprintf("@%s: %s", a.Trigger, a.Handle.ID()))
	}
}

func label(w *widget.Widget) string {
	if !w.Mapped() {
		return w.String() + " (unmapped)"
	}
	return w.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

// ToGraphViz outputs a diagram for the widget tree under w. The diagram is
// in GraphViz (DOT) format. Every widget is drawn together with a table of
// the themed values applied to it and its running animations.
func ToGraphViz(w *widget.Widget, out io.Writer) error {
	tmpl := template.Must(template.New("scene").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("widget").Parse(widgetTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Funcs(
		template.FuncMap{
			"escape": html.EscapeString,
		}).Parse(styleTmpl))
	if err := tmpl.Execute(out, gparams); err != nil {
		return err
	}
	dict := make(map[*widget.Widget]string, 64)
	if err := nodes(w, out, dict, &gparams); err != nil {
		return err
	}
	_, err := out.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a widget and a testing.T, it will
// create a GraphViz image of the widget tree under w and write it to a file
// in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(w *widget.Widget, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "scene.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}()
	t.Logf("writing scene digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(w, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing scene image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	W    *widget.Widget
	Name string
}

type edge struct {
	N1, N2 node
}

type styleRow struct {
	Key, Value, Origin string
}

type styleTable struct {
	Name       string
	Properties []styleRow
	Animations []styleRow
}

func nodes(w *widget.Widget, out io.Writer, dict map[*widget.Widget]string, gparams *graphParamsType) error {
	n := nameOf(w, dict)
	if err := gparams.NodeTmpl.Execute(out, n); err != nil {
		return err
	}
	if err := styles(n, out, gparams); err != nil {
		return err
	}
	for _, ch := range w.Children() {
		if err := nodes(ch, out, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(out, edge{n, nameOf(ch, dict)}); err != nil {
			return err
		}
	}
	return nil
}

func nameOf(w *widget.Widget, dict map[*widget.Widget]string) node {
	name := dict[w]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[w] = name
	}
	return node{w, name}
}

func styles(n node, out io.Writer, gparams *graphParamsType) error {
	applied := n.W.AppliedStyle()
	anims := n.W.ActiveAnimations()
	if applied.Len() == 0 && len(anims) == 0 {
		return nil
	}
	table := styleTable{Name: n.Name}
	for _, k := range applied.Keys() {
		c, _ := applied.Get(k)
		table.Properties = append(table.Properties, styleRow{k, c.Value.String(), c.Origin.String()})
	}
	for _, a := range anims {
		table.Animations = append(table.Animations, styleRow{Key: a.Trigger, Value: a.Handle.ID()})
	}
	return gparams.StyleTmpl.Execute(out, table)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const widgetTmpl = `{{ .Name }}	[ label={{ printf "%q" .W.String }} shape=ellipse style=filled fillcolor={{ if .W.Mapped }}lightblue3{{ else }}grey80{{ end }} ] ;
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ escape .Key }}:</td><td>{{ escape .Value }}</td><td><font color="grey40">{{ escape .Origin }}</font></td></tr>
      {{ end }}
      {{ range .Animations }}
      <tr><td bgcolor="azure4" align="right"><font color="white">{{ escape .Key }}</font></td><td colspan="2">{{ escape .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
