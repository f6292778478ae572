// Package render draws built graphs: graphviz dot and SVG documents for
// static output, and an interactive view with hit-testing and navigation
// callbacks for hosting frontends.
package render

import (
	"fmt"
	"io"

	"github.com/lineascope/core/internal/models"
)

// Dot writes the graph as a graphviz digraph. Positions are ignored; dot does
// its own layout from the same rank direction the layered engine uses.
func Dot(w io.Writer, g *models.Graph) error {
	_, err := w.Write([]byte("digraph lineage {\n\trankdir=LR\n\tnode [fontsize=10]\n\tedge [fontsize=9]\n\n"))
	if err != nil {
		return err
	}

	for _, n := range g.Nodes {
		if n.Kind == models.KindExternalPlaceholder {
			_, err = fmt.Fprintf(w, "\t%q [label=%q shape=box style=dashed]\n", n.ID, n.Label)
		} else {
			_, err = fmt.Fprintf(w, "\t%q [label=%q shape=box style=rounded]\n", n.ID, n.Label)
		}
		if err != nil {
			return err
		}
	}

	if _, err = w.Write([]byte("\n")); err != nil {
		return err
	}

	for _, e := range g.Edges {
		_, err = fmt.Fprintf(w, "\t%q -> %q [taillabel=%q headlabel=%q]\n",
			e.SourceNodeID, e.TargetNodeID, e.SourcePortID, e.TargetPortID)
		if err != nil {
			return err
		}
	}

	_, err = w.Write([]byte("}\n"))
	return err
}
