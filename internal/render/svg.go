// Package render draws built graphs: graphviz dot and SVG documents for
// static output, and an interactive view with hit-testing and navigation
// callbacks for hosting frontends.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lineascope/core/internal/models"
)

type SVGOptions struct {
	// Padding is the margin around the graph extent, in canvas units.
	Padding float64
	// NodeHref, when set, wraps entity nodes in links; it receives the
	// entity id and returns the target URL. Placeholder nodes never link.
	NodeHref func(entityID string) string
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.Padding <= 0 {
		o.Padding = 40
	}
	return o
}

// SVG writes the positioned graph as a standalone SVG document. Every node
// and port carries a <title> element, which browsers show as a hover tooltip.
func SVG(w io.Writer, g *models.Graph, opts SVGOptions) error {
	opts = opts.withDefaults()

	minX, minY, maxX, maxY := extent(g.Nodes)
	width := maxX - minX + 2*opts.Padding
	height := maxY - minY + 2*opts.Padding
	offsetX := opts.Padding - minX
	offsetY := opts.Padding - minY

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height)
	b.WriteString("<style>.entity{fill:#fff;stroke:#334;stroke-width:1.5}.external{fill:#f6f6f6;stroke:#999;stroke-dasharray:5 3}.edge{fill:none;stroke:#667;stroke-width:1.5}.port{fill:#446;stroke:#fff}.label{font:12px sans-serif;text-anchor:middle}</style>\n")

	for _, e := range g.Edges {
		source, okSource := nodeByID(g.Nodes, e.SourceNodeID)
		target, okTarget := nodeByID(g.Nodes, e.TargetNodeID)
		if !okSource || !okTarget {
			continue
		}
		from, ok := portAnchor(source, e.SourcePortID)
		if !ok {
			continue
		}
		to, ok := portAnchor(target, e.TargetPortID)
		if !ok {
			continue
		}
		bend := (to.X - from.X) / 2
		fmt.Fprintf(&b, `<path class="edge" d="M %.1f %.1f C %.1f %.1f %.1f %.1f %.1f %.1f"><title>%s</title></path>`+"\n",
			from.X+offsetX, from.Y+offsetY,
			from.X+bend+offsetX, from.Y+offsetY,
			to.X-bend+offsetX, to.Y+offsetY,
			to.X+offsetX, to.Y+offsetY,
			escape(e.ID))
	}

	for _, n := range g.Nodes {
		x := n.Position.X + offsetX
		y := n.Position.Y + offsetY

		b.WriteString("<g>\n")
		href := ""
		if opts.NodeHref != nil && n.Kind == models.KindEntity {
			href = opts.NodeHref(n.ID)
		}
		if href != "" {
			fmt.Fprintf(&b, `<a href="%s">`+"\n", escape(href))
		}

		class := "entity"
		if n.Kind == models.KindExternalPlaceholder {
			class = "external"
		}
		fmt.Fprintf(&b, `<rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8"><title>%s</title></rect>`+"\n",
			class, x, y, n.Size.Width, n.Size.Height, escape(nodeTooltip(n)))
		fmt.Fprintf(&b, `<text class="label" x="%.1f" y="%.1f">%s</text>`+"\n",
			x+n.Size.Width/2, y+n.Size.Height/2+4, escape(n.Label))

		for _, p := range n.Ports {
			anchor, ok := portAnchor(n, p.ID)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, `<circle class="port" cx="%.1f" cy="%.1f" r="4"><title>%s</title></circle>`+"\n",
				anchor.X+offsetX, anchor.Y+offsetY, escape(portTooltip(p)))
		}

		if href != "" {
			b.WriteString("</a>\n")
		}
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodeTooltip(n models.Node) string {
	parts := []string{n.Label, "id: " + n.ID}
	if kind, ok := n.Metadata["kind"].(string); ok {
		parts = append(parts, "kind: "+kind)
	}
	if desc, ok := n.Metadata["description"].(string); ok {
		parts = append(parts, desc)
	}
	return strings.Join(parts, "\n")
}

func portTooltip(p models.Port) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	parts := []string{fmt.Sprintf("%s (%s)", name, p.Direction), "id: " + p.ID}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	if p.SourceReference != "" {
		parts = append(parts, "source: "+p.SourceReference)
	}
	return strings.Join(parts, "\n")
}

func nodeByID(nodes []models.Node, id string) (models.Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Node{}, false
}

func extent(nodes []models.Node) (minX, minY, maxX, maxY float64) {
	for i, n := range nodes {
		if i == 0 || n.Position.X < minX {
			minX = n.Position.X
		}
		if i == 0 || n.Position.Y < minY {
			minY = n.Position.Y
		}
		if right := n.Position.X + n.Size.Width; i == 0 || right > maxX {
			maxX = right
		}
		if bottom := n.Position.Y + n.Size.Height; i == 0 || bottom > maxY {
			maxY = bottom
		}
	}
	return minX, minY, maxX, maxY
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
