// Package layout assigns coordinates to graph nodes. The layered engine
// produces a left-to-right ranked drawing; the grid engine is a fallback that
// never fails. Both are deterministic for a fixed input.
package layout

import "math"

// Grid places nodes row-major on a square-ish grid, ignoring edges. It is the
// fallback when the layered engine rejects its input, so it must always
// succeed and stay readable for any node set.
type Grid struct{}

func (Grid) Layout(nodes []NodeSpec, edges []EdgeSpec, cfg Config) (map[string]Position, error) {
	cfg = cfg.withDefaults()
	positions := make(map[string]Position, len(nodes))
	if len(nodes) == 0 {
		return positions, nil
	}

	cellWidth, cellHeight := 0.0, 0.0
	for _, n := range nodes {
		if n.Width > cellWidth {
			cellWidth = n.Width
		}
		if n.Height > cellHeight {
			cellHeight = n.Height
		}
	}
	cellWidth += cfg.RankSep
	cellHeight += cfg.NodeSep

	columns := int(math.Ceil(math.Sqrt(float64(len(nodes)))))
	for i, n := range nodes {
		row := i / columns
		col := i % columns
		positions[n.ID] = Position{
			X: float64(col)*cellWidth + cellWidth/2,
			Y: float64(row)*cellHeight + cellHeight/2,
		}
	}
	return positions, nil
}
