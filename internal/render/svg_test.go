// Package render draws built graphs: graphviz dot and SVG documents for
// static output, and an interactive view with hit-testing and navigation
// callbacks for hosting frontends.
package render

import (
	"strings"
	"testing"

	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	t.Run("renders nodes, edges and port tooltips", func(t *testing.T) {
		g := graph.Build(lineageFixture(), graph.DefaultOptions())
		var out strings.Builder

		err := SVG(&out, g, SVGOptions{})

		require.NoError(t, err)
		svg := out.String()
		assert.Contains(t, svg, "<svg xmlns=")
		assert.Contains(t, svg, ">Orders</text>")
		assert.Contains(t, svg, ">Billing</text>")
		assert.Contains(t, svg, `class="external"`)
		assert.Contains(t, svg, "source: A:o1")
		assert.Contains(t, svg, "source: system:kafka")
		assert.Equal(t, 2, strings.Count(svg, `<path class="edge"`))
	})

	t.Run("entity nodes link through NodeHref", func(t *testing.T) {
		g := graph.Build(lineageFixture(), graph.DefaultOptions())
		var out strings.Builder

		err := SVG(&out, g, SVGOptions{
			NodeHref: func(id string) string { return "/catalog/" + id },
		})

		require.NoError(t, err)
		svg := out.String()
		assert.Contains(t, svg, `<a href="/catalog/A">`)
		assert.Contains(t, svg, `<a href="/catalog/B">`)
		// One <a> per entity node, none for the placeholder.
		assert.Equal(t, 2, strings.Count(svg, "<a href="))
	})

	t.Run("labels are escaped", func(t *testing.T) {
		entities := []models.Entity{{ID: "x", Label: `a <"risky"> & label`}}
		g := graph.Build(entities, graph.DefaultOptions())
		var out strings.Builder

		err := SVG(&out, g, SVGOptions{})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "a &lt;&quot;risky&quot;&gt; &amp; label")
		assert.NotContains(t, out.String(), `<"risky">`)
	})

	t.Run("empty graph still renders a document", func(t *testing.T) {
		g := graph.Build(nil, graph.DefaultOptions())
		var out strings.Builder

		err := SVG(&out, g, SVGOptions{})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "</svg>")
	})
}

func TestDot(t *testing.T) {
	t.Run("writes a digraph with styled nodes and port labels", func(t *testing.T) {
		g := graph.Build(lineageFixture(), graph.DefaultOptions())
		var out strings.Builder

		err := Dot(&out, g)

		require.NoError(t, err)
		dot := out.String()
		assert.Contains(t, dot, "digraph lineage {")
		assert.Contains(t, dot, "rankdir=LR")
		assert.Contains(t, dot, `"A" [label="Orders" shape=box style=rounded]`)
		assert.Contains(t, dot, "style=dashed")
		assert.Contains(t, dot, `"A" -> "B" [taillabel="o1" headlabel="i1"]`)
		assert.True(t, strings.HasSuffix(dot, "}\n"))
	})

	t.Run("empty graph produces an empty digraph", func(t *testing.T) {
		g := graph.Build(nil, graph.DefaultOptions())
		var out strings.Builder

		err := Dot(&out, g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "digraph lineage {")
	})
}

func TestPortAnchor(t *testing.T) {
	node := models.Node{
		ID:       "n",
		Position: models.Position{X: 100, Y: 200},
		Size:     models.Size{Width: 220, Height: 120},
		Ports: []models.Port{
			{ID: "i1", Direction: models.DirectionInput},
			{ID: "i2", Direction: models.DirectionInput},
			{ID: "o1", Direction: models.DirectionOutput},
		},
	}

	t.Run("input ports stack on the left edge", func(t *testing.T) {
		first, ok := portAnchor(node, "i1")
		require.True(t, ok)
		second, ok := portAnchor(node, "i2")
		require.True(t, ok)

		assert.InDelta(t, 100, first.X, 0.001)
		assert.InDelta(t, 100, second.X, 0.001)
		assert.Less(t, first.Y, second.Y)
	})

	t.Run("output ports sit on the right edge", func(t *testing.T) {
		anchor, ok := portAnchor(node, "o1")
		require.True(t, ok)

		assert.InDelta(t, 320, anchor.X, 0.001)
		assert.InDelta(t, 260, anchor.Y, 0.001)
	})

	t.Run("unknown port id reports false", func(t *testing.T) {
		_, ok := portAnchor(node, "missing")

		assert.False(t, ok)
	})
}
