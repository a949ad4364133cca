package domain

import (
	"context"

	m "unosolo.dev/pkg/unosolo/internal/model"
)

// Graph is an include graph: each header points at the headers it includes.
// Nodes and edges keep insertion order.
type Graph struct {
	nodes []m.Path
	succ  map[m.Path][]m.Path
	edges map[m.Path]map[m.Path]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		succ:  make(map[m.Path][]m.Path),
		edges: make(map[m.Path]map[m.Path]struct{}),
	}
}

// AddNode inserts node if it is not present yet.
func (g *Graph) AddNode(node m.Path) {
	if _, ok := g.edges[node]; ok {
		return
	}

	g.nodes = append(g.nodes, node)
	g.edges[node] = make(map[m.Path]struct{})
}

// Add records that from includes to, creating either node as needed. It
// reports whether the edge is new.
func (g *Graph) Add(from, to m.Path) bool {
	g.AddNode(from)
	g.AddNode(to)

	if _, ok := g.edges[from][to]; ok {
		return false
	}

	g.edges[from][to] = struct{}{}
	g.succ[from] = append(g.succ[from], to)

	return true
}

// Successors returns the headers node includes.
func (g *Graph) Successors(node m.Path) []m.Path {
	return append([]m.Path(nil), g.succ[node]...)
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []m.Path {
	return append([]m.Path(nil), g.nodes...)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// PostOrder lists the headers reachable from root so that every header
// comes after the headers it includes. Cycles are cut at the first
// revisit.
func (g *Graph) PostOrder(root m.Path) []m.Path {
	var (
		order   []m.Path
		visited = map[m.Path]struct{}{root: {}}
	)

	type cursor struct {
		node m.Path
		next int
	}

	stack := []cursor{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		succ := g.succ[top.node]

		if top.next >= len(succ) {
			order = append(order, top.node)
			stack = stack[:len(stack)-1]

			continue
		}

		child := succ[top.next]
		top.next++

		if _, seen := visited[child]; seen {
			continue
		}

		visited[child] = struct{}{}
		stack = append(stack, cursor{node: child})
	}

	return order
}

// View converts the graph into its display model.
func (g *Graph) View(entry m.Path) m.IncludeGraph {
	view := m.IncludeGraph{Entry: entry}

	for _, node := range g.nodes {
		view.Nodes = append(view.Nodes, m.GraphNode{Path: node, Includes: g.Successors(node)})
	}

	if entry != "" {
		view.Order = g.PostOrder(entry)
	}

	return view
}

// BuildGraph collects the include graph reachable from roots.
func BuildGraph(ctx context.Context, expander *Expander, roots ...m.Path) (*Graph, error) {
	graph := NewGraph()

	queue := append([]m.Path(nil), roots...)
	for _, root := range roots {
		graph.AddNode(root)
	}

	done := make(map[m.Path]struct{})

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if _, ok := done[node]; ok {
			continue
		}

		done[node] = struct{}{}

		deps, err := expander.Dependencies(ctx, node)
		if err != nil {
			return nil, err
		}

		for _, dep := range deps {
			graph.Add(node, dep)

			if _, ok := done[dep]; !ok {
				queue = append(queue, dep)
			}
		}
	}

	return graph, nil
}
