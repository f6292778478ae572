// Package layout assigns coordinates to graph nodes. The layered engine
// produces a left-to-right ranked drawing; the grid engine is a fallback that
// never fails. Both are deterministic for a fixed input.
package layout

import (
	"fmt"
	"sort"
)

// Layered implements a Sugiyama-style layered drawing: nodes are ranked by
// longest path from the sources, ordered within each rank by repeated median
// sweeps, and placed left to right with ranks stacked vertically. Ties always
// break on input order, so identical input yields identical positions.
type Layered struct{}

const orderingSweeps = 4

func (Layered) Layout(nodes []NodeSpec, edges []EdgeSpec, cfg Config) (map[string]Position, error) {
	cfg = cfg.withDefaults()
	positions := make(map[string]Position, len(nodes))
	if len(nodes) == 0 {
		return positions, nil
	}

	known := make(map[string]NodeSpec, len(nodes))
	for _, n := range nodes {
		known[n.ID] = n
	}

	succ := make(map[string][]string)
	pred := make(map[string][]string)
	indegree := make(map[string]int)
	seen := make(map[[2]string]bool)
	for _, e := range edges {
		if _, ok := known[e.Source]; !ok {
			continue
		}
		if _, ok := known[e.Target]; !ok {
			continue
		}
		// Parallel port edges between the same node pair count once.
		pair := [2]string{e.Source, e.Target}
		if seen[pair] || e.Source == e.Target {
			continue
		}
		seen[pair] = true
		succ[e.Source] = append(succ[e.Source], e.Target)
		pred[e.Target] = append(pred[e.Target], e.Source)
		indegree[e.Target]++
	}

	ranks, err := rankByLongestPath(nodes, succ, indegree)
	if err != nil {
		return nil, err
	}

	rankNodes := groupByRank(nodes, ranks)
	orderRanks(rankNodes, succ, pred)

	assignCoordinates(positions, rankNodes, known, cfg)
	return positions, nil
}

// rankByLongestPath assigns each node the length of the longest edge path
// reaching it. Sources and isolated nodes land on rank 0.
func rankByLongestPath(nodes []NodeSpec, succ map[string][]string, indegree map[string]int) (map[string]int, error) {
	remaining := make(map[string]int, len(nodes))
	ranks := make(map[string]int, len(nodes))
	var queue []string
	for _, n := range nodes {
		remaining[n.ID] = indegree[n.ID]
		ranks[n.ID] = 0
		if remaining[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range succ[id] {
			if ranks[id]+1 > ranks[next] {
				ranks[next] = ranks[id] + 1
			}
			remaining[next]--
			if remaining[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if processed < len(nodes) {
		return nil, fmt.Errorf("cannot rank cyclic graph: %d of %d nodes unplaced", len(nodes)-processed, len(nodes))
	}
	return ranks, nil
}

func groupByRank(nodes []NodeSpec, ranks map[string]int) [][]string {
	max := 0
	for _, r := range ranks {
		if r > max {
			max = r
		}
	}
	grouped := make([][]string, max+1)
	for _, n := range nodes {
		r := ranks[n.ID]
		grouped[r] = append(grouped[r], n.ID)
	}
	return grouped
}

// orderRanks reduces edge crossings with alternating downward and upward
// median sweeps. Stable sorts keep the input order for tied medians.
func orderRanks(rankNodes [][]string, succ, pred map[string][]string) {
	index := make(map[string]int)
	reindex := func(ids []string) {
		for i, id := range ids {
			index[id] = i
		}
	}
	for _, ids := range rankNodes {
		reindex(ids)
	}

	sortByMedian := func(ids []string, neighbors map[string][]string) {
		medians := make(map[string]float64, len(ids))
		for _, id := range ids {
			medians[id] = medianIndex(neighbors[id], index, float64(index[id]))
		}
		sort.SliceStable(ids, func(i, j int) bool {
			return medians[ids[i]] < medians[ids[j]]
		})
		reindex(ids)
	}

	for sweep := 0; sweep < orderingSweeps; sweep++ {
		if sweep%2 == 0 {
			for r := 1; r < len(rankNodes); r++ {
				sortByMedian(rankNodes[r], pred)
			}
		} else {
			for r := len(rankNodes) - 2; r >= 0; r-- {
				sortByMedian(rankNodes[r], succ)
			}
		}
	}
}

func medianIndex(neighbors []string, index map[string]int, fallback float64) float64 {
	if len(neighbors) == 0 {
		return fallback
	}
	positions := make([]int, 0, len(neighbors))
	for _, id := range neighbors {
		positions = append(positions, index[id])
	}
	sort.Ints(positions)
	mid := len(positions) / 2
	if len(positions)%2 == 1 {
		return float64(positions[mid])
	}
	return float64(positions[mid-1]+positions[mid]) / 2
}

// assignCoordinates places ranks left to right, each rank centered on the
// vertical midline of the tallest rank. Returned positions are node centers.
func assignCoordinates(positions map[string]Position, rankNodes [][]string, known map[string]NodeSpec, cfg Config) {
	rankWidths := make([]float64, len(rankNodes))
	rankHeights := make([]float64, len(rankNodes))
	tallest := 0.0
	for r, ids := range rankNodes {
		for i, id := range ids {
			n := known[id]
			if n.Width > rankWidths[r] {
				rankWidths[r] = n.Width
			}
			rankHeights[r] += n.Height
			if i > 0 {
				rankHeights[r] += cfg.NodeSep
			}
		}
		if rankHeights[r] > tallest {
			tallest = rankHeights[r]
		}
	}

	x := 0.0
	for r, ids := range rankNodes {
		y := (tallest - rankHeights[r]) / 2
		for _, id := range ids {
			n := known[id]
			positions[id] = Position{
				X: x + rankWidths[r]/2,
				Y: y + n.Height/2,
			}
			y += n.Height + cfg.NodeSep
		}
		x += rankWidths[r] + cfg.RankSep
	}
}
