// Package graph builds the positioned lineage/topology graph from a catalog
// entity set. The pipeline runs in three stages: normalize entities into
// nodes, resolve port references into edges and external placeholders, then
// lay the combined node set out.
package graph

import (
	"github.com/lineascope/core/internal/layout"
	"github.com/lineascope/core/internal/models"
)

// Options tunes one build. The zero value is usable; missing fields fall back
// to the layered engine and the default node dimensions.
type Options struct {
	Engine          layout.Engine
	Layout          layout.Config
	EntitySize      models.Size
	PlaceholderSize models.Size
}

func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Engine == nil {
		o.Engine = layout.Layered{}
	}
	if o.EntitySize.Width <= 0 || o.EntitySize.Height <= 0 {
		o.EntitySize = models.Size{Width: 220, Height: 120}
	}
	if o.PlaceholderSize.Width <= 0 || o.PlaceholderSize.Height <= 0 {
		o.PlaceholderSize = models.Size{Width: 180, Height: 60}
	}
	return o
}

// normalizeEntities maps entities onto graph nodes. Entities without an id
// cannot be addressed by references, so they are skipped. Returns the nodes,
// the skipped-filtered entities in input order, and an id index for the
// resolver.
func normalizeEntities(entities []models.Entity, opt Options) ([]models.Node, []models.Entity, map[string]models.Entity) {
	nodes := []models.Node{}
	valid := []models.Entity{}
	index := make(map[string]models.Entity, len(entities))

	for _, entity := range entities {
		if entity.ID == "" {
			continue
		}
		if _, dup := index[entity.ID]; dup {
			continue
		}

		label := entity.Label
		if label == "" {
			label = entity.ID
		}

		metadata := map[string]any{}
		if entity.Kind != "" {
			metadata["kind"] = entity.Kind
		}
		if entity.Description != "" {
			metadata["description"] = entity.Description
		}
		if len(metadata) == 0 {
			metadata = nil
		}

		nodes = append(nodes, models.Node{
			ID:       entity.ID,
			Kind:     models.KindEntity,
			Label:    label,
			Size:     opt.EntitySize,
			Ports:    entity.Ports,
			Metadata: metadata,
		})
		valid = append(valid, entity)
		index[entity.ID] = entity
	}

	return nodes, valid, index
}
