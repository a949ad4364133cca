package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

func TestGraph_Add(t *testing.T) {
	g := NewGraph()

	assert.True(t, g.Add("top", "a"))
	assert.True(t, g.Add("top", "b"))
	assert.False(t, g.Add("top", "a"), "duplicate edge")
	assert.True(t, g.Add("b", "a"))

	g.AddNode("lonely")
	g.AddNode("top")

	assert.Equal(t, []m.Path{"top", "a", "b", "lonely"}, g.Nodes())
	assert.Equal(t, []m.Path{"a", "b"}, g.Successors("top"))
	assert.Empty(t, g.Successors("a"))
	assert.Empty(t, g.Successors("missing"))
	assert.Equal(t, 4, g.Len())
}

func TestGraph_PostOrder(t *testing.T) {
	t.Run("dependencies come first", func(t *testing.T) {
		g := NewGraph()
		g.Add("top", "a")
		g.Add("top", "b")
		g.Add("b", "a")
		g.Add("b", "c")

		assert.Equal(t, []m.Path{"a", "c", "b", "top"}, g.PostOrder("top"))
	})

	t.Run("cycles are cut", func(t *testing.T) {
		g := NewGraph()
		g.Add("a", "b")
		g.Add("b", "c")
		g.Add("c", "a")

		assert.Equal(t, []m.Path{"c", "b", "a"}, g.PostOrder("a"))
	})

	t.Run("unreachable nodes are left out", func(t *testing.T) {
		g := NewGraph()
		g.Add("top", "a")
		g.Add("other", "b")

		assert.Equal(t, []m.Path{"a", "top"}, g.PostOrder("top"))
	})

	t.Run("unknown root", func(t *testing.T) {
		assert.Equal(t, []m.Path{"x"}, NewGraph().PostOrder("x"))
	})
}

func TestGraph_View(t *testing.T) {
	g := NewGraph()
	g.Add("top", "a")
	g.AddNode("b")

	view := g.View("top")
	assert.Equal(t, m.Path("top"), view.Entry)
	assert.Equal(t, []m.GraphNode{
		{Path: "top", Includes: []m.Path{"a"}},
		{Path: "a"},
		{Path: "b"},
	}, view.Nodes)
	assert.Equal(t, []m.Path{"a", "top"}, view.Order)

	whole := g.View("")
	assert.Empty(t, whole.Entry)
	assert.Nil(t, whole.Order)
	assert.Len(t, whole.Nodes, 3)
}

func TestBuildGraph(t *testing.T) {
	lib := t.TempDir()
	writeTree(t, lib, map[string]string{
		"top.hpp":   "#include \"a.hpp\"\n#include <x/y.h>\n#include <vector>\n",
		"a.hpp":     "#include <x/y.h>\n#include \"top.hpp\"\n",
		"x/y.h":     "int y;\n",
		"other.hpp": "#include \"a.hpp\"\n",
	})

	expander, _ := newTestExpander(t, lib)

	top := canonical(t, filepath.Join(lib, "top.hpp"))
	a := canonical(t, filepath.Join(lib, "a.hpp"))
	y := canonical(t, filepath.Join(lib, "x", "y.h"))
	other := canonical(t, filepath.Join(lib, "other.hpp"))

	t.Run("reachable from the entry", func(t *testing.T) {
		graph, err := BuildGraph(context.Background(), expander, top)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{top, a, y}, graph.Nodes())
		assert.Equal(t, []m.Path{a, y}, graph.Successors(top))
		assert.Equal(t, []m.Path{y, top}, graph.Successors(a))
		assert.Equal(t, []m.Path{y, a, top}, graph.PostOrder(top))
	})

	t.Run("several roots", func(t *testing.T) {
		graph, err := BuildGraph(context.Background(), expander, top, other)
		require.NoError(t, err)

		assert.Equal(t, 4, graph.Len())
		assert.Equal(t, []m.Path{a}, graph.Successors(other))
	})

	t.Run("errors are returned", func(t *testing.T) {
		broken := t.TempDir()
		writeTree(t, broken, map[string]string{"top.hpp": "#include \"gone.hpp\"\n"})

		brokenExpander, _ := newTestExpander(t, broken)

		_, err := BuildGraph(context.Background(), brokenExpander, canonical(t, filepath.Join(broken, "top.hpp")))
		require.ErrorIs(t, err, ErrUnresolvedQuoted)
	})
}
