// Package graph builds the positioned lineage/topology graph from a catalog
// entity set. The pipeline runs in three stages: normalize entities into
// nodes, resolve port references into edges and external placeholders, then
// lay the combined node set out.
package graph

import (
	"fmt"
	"strings"

	"github.com/lineascope/core/internal/models"
)

// ExternalPortID is the single synthetic output handle every external
// placeholder node exposes.
const ExternalPortID = "out"

const externalIDPrefix = "external::"

// ExternalNodeID derives the placeholder node id for an external-system
// reference. The derivation is deterministic so rebuilds reuse the same id.
func ExternalNodeID(reference string) string {
	return externalIDPrefix + reference
}

// EdgeID derives a deterministic edge id from its four endpoints.
func EdgeID(sourceNode, sourcePort, targetNode, targetPort string) string {
	return fmt.Sprintf("%s:%s->%s:%s", sourceNode, sourcePort, targetNode, targetPort)
}

type resolution struct {
	externals []models.Node
	edges     []models.Edge
	warnings  []models.Warning
}

// resolveReferences walks every input port and classifies its source
// reference. A reference "entityID:portID" naming an in-set entity connects
// that entity's output port; an in-set entity missing the cited port is
// malformed and recorded as a warning, never an edge. Anything else is an
// opaque external-system id backed by a deduplicated placeholder node.
func resolveReferences(entities []models.Entity, index map[string]models.Entity, opt Options) resolution {
	res := resolution{
		externals: []models.Node{},
		edges:     []models.Edge{},
		warnings:  []models.Warning{},
	}
	placeholders := make(map[string]bool)

	for _, entity := range entities {
		for _, port := range entity.InputPorts() {
			ref := port.SourceReference
			if ref == "" {
				continue
			}

			sourceID, sourcePort, found := strings.Cut(ref, ":")
			if found {
				if source, ok := index[sourceID]; ok {
					if _, ok := source.OutputPort(sourcePort); ok {
						res.edges = append(res.edges, models.Edge{
							ID:           EdgeID(sourceID, sourcePort, entity.ID, port.ID),
							SourceNodeID: sourceID,
							SourcePortID: sourcePort,
							TargetNodeID: entity.ID,
							TargetPortID: port.ID,
						})
					} else {
						res.warnings = append(res.warnings, models.Warning{
							Code:    models.WarnMalformedReference,
							Message: fmt.Sprintf("entity %q has no output port %q, referenced by %s:%s", sourceID, sourcePort, entity.ID, port.ID),
							NodeID:  entity.ID,
							PortID:  port.ID,
						})
					}
					continue
				}
			}

			nodeID := ExternalNodeID(ref)
			if !placeholders[nodeID] {
				placeholders[nodeID] = true
				res.externals = append(res.externals, models.Node{
					ID:    nodeID,
					Kind:  models.KindExternalPlaceholder,
					Label: ref,
					Size:  opt.PlaceholderSize,
					Ports: []models.Port{
						{ID: ExternalPortID, Direction: models.DirectionOutput},
					},
					Metadata: map[string]any{"external_id": ref},
				})
			}
			res.edges = append(res.edges, models.Edge{
				ID:           EdgeID(nodeID, ExternalPortID, entity.ID, port.ID),
				SourceNodeID: nodeID,
				SourcePortID: ExternalPortID,
				TargetNodeID: entity.ID,
				TargetPortID: port.ID,
			})
		}
	}

	return res
}
