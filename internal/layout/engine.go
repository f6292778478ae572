// Package layout assigns coordinates to graph nodes. The layered engine
// produces a left-to-right ranked drawing; the grid engine is a fallback that
// never fails. Both are deterministic for a fixed input.
package layout

type Position struct {
	X float64
	Y float64
}

// NodeSpec is the layout-relevant slice of a graph node.
type NodeSpec struct {
	ID     string
	Width  float64
	Height float64
}

// EdgeSpec is a node-level directed edge; port fan-out does not affect
// ranking, so ports are collapsed before layout.
type EdgeSpec struct {
	Source string
	Target string
}

type Config struct {
	// RankSep is the horizontal gap between adjacent ranks.
	RankSep float64
	// NodeSep is the vertical gap between adjacent nodes in a rank.
	NodeSep float64
}

const (
	DefaultRankSep = 70
	DefaultNodeSep = 30
)

func (c Config) withDefaults() Config {
	if c.RankSep <= 0 {
		c.RankSep = DefaultRankSep
	}
	if c.NodeSep <= 0 {
		c.NodeSep = DefaultNodeSep
	}
	return c
}

// Engine computes center positions for every node. Implementations hold no
// state between calls; each invocation builds its working structures afresh.
type Engine interface {
	Layout(nodes []NodeSpec, edges []EdgeSpec, cfg Config) (map[string]Position, error)
}
