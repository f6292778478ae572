// Package render draws built graphs: graphviz dot and SVG documents for
// static output, and an interactive view with hit-testing and navigation
// callbacks for hosting frontends.
package render

import "github.com/lineascope/core/internal/models"

// portAnchor returns the canvas point where a port attaches to its node:
// input ports are spread down the left edge, output ports down the right
// edge, in declaration order.
func portAnchor(n models.Node, portID string) (models.Position, bool) {
	var side []models.Port
	var x float64
	for _, p := range n.Ports {
		if p.ID != portID {
			continue
		}
		if p.Direction == models.DirectionInput {
			side = filterPorts(n.Ports, models.DirectionInput)
			x = n.Position.X
		} else {
			side = filterPorts(n.Ports, models.DirectionOutput)
			x = n.Position.X + n.Size.Width
		}
		break
	}
	if side == nil {
		return models.Position{}, false
	}

	for i, p := range side {
		if p.ID == portID {
			step := n.Size.Height / float64(len(side)+1)
			return models.Position{X: x, Y: n.Position.Y + step*float64(i+1)}, true
		}
	}
	return models.Position{}, false
}

func filterPorts(ports []models.Port, direction models.PortDirection) []models.Port {
	out := []models.Port{}
	for _, p := range ports {
		if p.Direction == direction {
			out = append(out, p)
		}
	}
	return out
}
