// Package models defines the core data structures shared across the service:
// catalog entities with their ports, and the positioned graph document built
// from them.
package models

type PortDirection string

const (
	DirectionInput  PortDirection = "input"
	DirectionOutput PortDirection = "output"
)

// CatalogDocument is the payload accepted by the build endpoints: the entity
// set for one lineage or topology view, already fetched from the catalog.
type CatalogDocument struct {
	Entities []Entity `json:"entities"`
}

// Entity is any catalog object participating in the graph: a data product,
// an estate, or a domain.
type Entity struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
	Ports       []Port `json:"ports,omitempty"`
}

// Port is a named connection point on an entity. SourceReference is only
// meaningful on input ports; it encodes either "entityID:outputPortID" or an
// opaque external-system identifier.
type Port struct {
	ID              string        `json:"id"`
	Name            string        `json:"name,omitempty"`
	Description     string        `json:"description,omitempty"`
	Direction       PortDirection `json:"direction"`
	SourceReference string        `json:"source_reference,omitempty"`
}

// OutputPort returns the output port with the given id, if the entity has one.
func (e Entity) OutputPort(id string) (Port, bool) {
	for _, p := range e.Ports {
		if p.Direction == DirectionOutput && p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// InputPorts returns the entity's input ports in declaration order.
func (e Entity) InputPorts() []Port {
	var in []Port
	for _, p := range e.Ports {
		if p.Direction == DirectionInput {
			in = append(in, p)
		}
	}
	return in
}

// OutputPorts returns the entity's output ports in declaration order.
func (e Entity) OutputPorts() []Port {
	var out []Port
	for _, p := range e.Ports {
		if p.Direction == DirectionOutput {
			out = append(out, p)
		}
	}
	return out
}
