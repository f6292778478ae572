// Package render draws built graphs: graphviz dot and SVG documents for
// static output, and an interactive view with hit-testing and navigation
// callbacks for hosting frontends.
package render

import (
	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/models"
)

type Phase string

const (
	PhaseLoading     Phase = "loading"
	PhaseBuilt       Phase = "built"
	PhaseInteractive Phase = "interactive"
)

// View is one interactive graph instance. It owns a memoized builder and the
// transient drag offsets of the current session; every entity-set change runs
// a full rebuild that discards those offsets.
type View struct {
	// OnNodeActivate is invoked synchronously when an entity node is
	// activated by click or keyboard. It receives the entity id; the host
	// usually navigates. Placeholder nodes never activate.
	OnNodeActivate func(entityID string)

	builder *graph.Builder
	phase   Phase
	built   *models.Graph
	drag    map[string]models.Position
}

func NewView(opt graph.Options) *View {
	return &View{
		builder: graph.NewBuilder(opt),
		phase:   PhaseLoading,
		drag:    map[string]models.Position{},
	}
}

func (v *View) Phase() Phase {
	return v.phase
}

// SetEntities replaces the entity set and rebuilds. The rebuild is
// synchronous and not interruptible; a later call simply supersedes the
// result.
func (v *View) SetEntities(entities []models.Entity) {
	v.phase = PhaseLoading
	v.built = v.builder.Build(entities)
	v.phase = PhaseBuilt
	v.drag = map[string]models.Position{}
	v.phase = PhaseInteractive
}

// Graph returns the graph as currently rendered, with transient drag offsets
// applied. The result is a copy when offsets exist; treat it as read-only.
func (v *View) Graph() *models.Graph {
	if v.built == nil {
		return nil
	}
	if len(v.drag) == 0 {
		return v.built
	}

	shifted := *v.built
	shifted.Nodes = make([]models.Node, len(v.built.Nodes))
	copy(shifted.Nodes, v.built.Nodes)
	for i := range shifted.Nodes {
		if offset, ok := v.drag[shifted.Nodes[i].ID]; ok {
			shifted.Nodes[i].Position.X += offset.X
			shifted.Nodes[i].Position.Y += offset.Y
		}
	}
	return &shifted
}

// Drag offsets a node for readability within the current session. The offset
// is never persisted; the next SetEntities discards it.
func (v *View) Drag(nodeID string, dx, dy float64) {
	if v.phase != PhaseInteractive || v.built == nil {
		return
	}
	if _, ok := nodeByID(v.built.Nodes, nodeID); !ok {
		return
	}
	offset := v.drag[nodeID]
	offset.X += dx
	offset.Y += dy
	v.drag[nodeID] = offset
}

// Activate fires OnNodeActivate for an entity node by id, the keyboard
// counterpart of ActivateAt. Reports whether the node was activated.
func (v *View) Activate(nodeID string) bool {
	if v.phase != PhaseInteractive || v.built == nil {
		return false
	}
	n, ok := nodeByID(v.built.Nodes, nodeID)
	if !ok || n.Kind != models.KindEntity {
		return false
	}
	if v.OnNodeActivate != nil {
		v.OnNodeActivate(n.ID)
	}
	return true
}

// ActivateAt hit-tests the rendered node boxes at a canvas point and fires
// OnNodeActivate for an entity node. When nodes overlap after a drag, the
// topmost (last drawn) wins. Reports whether a node consumed the activation.
func (v *View) ActivateAt(x, y float64) bool {
	if v.phase != PhaseInteractive {
		return false
	}
	rendered := v.Graph()
	if rendered == nil {
		return false
	}

	for i := len(rendered.Nodes) - 1; i >= 0; i-- {
		n := rendered.Nodes[i]
		if x < n.Position.X || x > n.Position.X+n.Size.Width {
			continue
		}
		if y < n.Position.Y || y > n.Position.Y+n.Size.Height {
			continue
		}
		if n.Kind != models.KindEntity {
			return false
		}
		if v.OnNodeActivate != nil {
			v.OnNodeActivate(n.ID)
		}
		return true
	}
	return false
}
