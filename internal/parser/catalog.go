// Package parser turns raw catalog payloads into validated entity sets.
// It handles JSON decoding and shape validation of entities and ports.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/lineascope/core/internal/models"
)

func ParseCatalog(data []byte) (*models.CatalogDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty catalog data")
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	if doc.Entities == nil {
		return nil, fmt.Errorf("invalid catalog: missing entities field")
	}

	for _, entity := range doc.Entities {
		for _, port := range entity.Ports {
			switch port.Direction {
			case models.DirectionInput, models.DirectionOutput:
			default:
				return nil, fmt.Errorf("invalid catalog: entity %q port %q has unknown direction %q",
					entity.ID, port.ID, port.Direction)
			}
		}
	}

	return &doc, nil
}
