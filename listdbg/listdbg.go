/*
Package listdbg implements helpers to debug lists.

Persistent lists built on a common base share nodes. Printing them one by one hides
this; the helpers in this package draw a set of lists as a single structure, where each
shared node appears exactly once, annotated with its reference count.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package listdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/lists/stack"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'fp.listdbg'.
func tracer() tracing.Trace {
	return tracing.Select("fp.listdbg")
}

// sharing is the graph of a set of lists: nodes in order of discovery, the heads of
// the named lists, and for every node the nodes linking to it.
type sharing[T any] struct {
	nodes    []*list.Node[T]
	ids      map[*list.Node[T]]int
	heads    map[*list.Node[T]][]string
	parents  map[*list.Node[T]][]*list.Node[T]
	empty    []string // names of empty lists
	terminal []*list.Node[T]
}

func collect[T any](lists map[string]*list.List[T]) *sharing[T] {
	g := &sharing[T]{
		ids:     make(map[*list.Node[T]]int),
		heads:   make(map[*list.Node[T]][]string),
		parents: make(map[*list.Node[T]][]*list.Node[T]),
	}
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l := lists[name]
		if l.IsEmpty() {
			g.empty = append(g.empty, name)
			continue
		}
		var prev *list.Node[T]
		for node := range l.Nodes() {
			if prev == nil {
				g.heads[node] = append(g.heads[node], name)
			}
			_, seen := g.ids[node]
			if prev != nil {
				g.parents[node] = appendOnce(g.parents[node], prev)
			}
			if seen { // rest of the chain already known
				break
			}
			g.ids[node] = len(g.nodes)
			g.nodes = append(g.nodes, node)
			if node.Next() == nil {
				g.terminal = append(g.terminal, node)
			}
			prev = node
		}
	}
	tracer().Debugf("collected %d distinct nodes from %d lists", len(g.nodes), len(lists))
	return g
}

func appendOnce[T any](nodes []*list.Node[T], node *list.Node[T]) []*list.Node[T] {
	for _, n := range nodes {
		if n == node {
			return nodes
		}
	}
	return append(nodes, node)
}

func (g *sharing[T]) label(node *list.Node[T]) string {
	s := node.String()
	if names := g.heads[node]; len(names) > 0 {
		s += " ← " + strings.Join(names, ", ")
	}
	return s
}

// --- Tree output -----------------------------------------------------------

// ToTree renders a set of named persistent lists as a tree. The lists' last nodes
// form the roots; every node lists the nodes prepended to it as children. Nodes
// shared between lists appear once.
func ToTree[T any](lists map[string]*list.List[T]) string {
	g := collect(lists)
	printer := tp.New()
	end := printer.AddBranch("∅")
	for _, name := range g.empty {
		end.AddNode("← " + name)
	}
	type frame struct {
		node   *list.Node[T]
		branch tp.Tree
	}
	var todo []frame
	for i := len(g.terminal) - 1; i >= 0; i-- {
		todo = append(todo, frame{node: g.terminal[i], branch: end})
	}
	for len(todo) > 0 { // depth-first, without recursion
		f := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		b := f.branch.AddBranch(g.label(f.node))
		ps := g.parents[f.node]
		for i := len(ps) - 1; i >= 0; i-- {
			todo = append(todo, frame{node: ps[i], branch: b})
		}
	}
	return printer.String()
}

// --- GraphViz output -------------------------------------------------------

// ToGraphViz outputs a diagram for a set of named persistent lists in GraphViz (DOT)
// format. Every node is drawn once; list handles are drawn as boxes pointing to
// their head nodes.
func ToGraphViz[T any](w io.Writer, lists map[string]*list.List[T]) error {
	g := collect(lists)
	type vertex struct {
		ID    int
		Label string
		Next  int
	}
	type handle struct {
		Name string
		Head int
	}
	var params struct {
		Fontname string
		Vertices []vertex
		Handles  []handle
		Empty    []string
	}
	params.Fontname = "Helvetica"
	for i, node := range g.nodes {
		next := -1
		if n := node.Next(); n != nil {
			next = g.ids[n]
		}
		params.Vertices = append(params.Vertices, vertex{ID: i, Label: node.String(), Next: next})
		for _, name := range g.heads[node] {
			params.Handles = append(params.Handles, handle{Name: name, Head: i})
		}
	}
	sort.Slice(params.Handles, func(i, j int) bool {
		return params.Handles[i].Name < params.Handles[j].Name
	})
	params.Empty = g.empty
	return graphTmpl.Execute(w, params)
}

var graphTmpl = template.Must(template.New("lists").Parse(`digraph g {
  graph [fontname="{{.Fontname}}" rankdir=LR];
  node [fontname="{{.Fontname}}" shape=circle];
  nil [label="∅" shape=point];
{{- range .Vertices}}
  n{{.ID}} [label={{printf "%q" .Label}}];
{{- end}}
{{- range .Handles}}
  "{{.Name}}" [shape=box];
  "{{.Name}}" -> n{{.Head}};
{{- end}}
{{- range .Empty}}
  "{{.}}" [shape=box];
  "{{.}}" -> nil;
{{- end}}
{{- range .Vertices}}
  {{- if ge .Next 0}}
  n{{.ID}} -> n{{.Next}};
  {{- else}}
  n{{.ID}} -> nil;
  {{- end}}
{{- end}}
}
`))

// --- Stacks ----------------------------------------------------------------

// StackString renders the elements of a stack, top to bottom, one per line, with
// the top marked. It uses a read-only cursor, i.e. a live mutable cursor on s
// will be revoked.
func StackString[T any](s *stack.Stack[T]) string {
	b := strings.Builder{}
	i := 0
	for x := range s.All() {
		if i == 0 {
			b.WriteString("top → ")
		} else {
			b.WriteString("      ")
		}
		b.WriteString(fmt.Sprintf("%v\n", x))
		i++
	}
	if i == 0 {
		b.WriteString("(empty)\n")
	}
	return b.String()
}
