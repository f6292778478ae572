// Package models defines the core data structures shared across the service:
// catalog entities with their ports, and the positioned graph document built
// from them.
package models

type NodeKind string

const (
	KindEntity              NodeKind = "entity"
	KindExternalPlaceholder NodeKind = "externalPlaceholder"
)

type Graph struct {
	Nodes    []Node    `json:"nodes"`
	Edges    []Edge    `json:"edges"`
	Warnings []Warning `json:"warnings,omitempty"`
	Stats    *Stats    `json:"stats,omitempty"`
}

// Node is one renderable unit. Position is the top-left corner of the node's
// bounding box, assigned by the layout engine; it is zero until layout runs.
// Ports are kept in declaration order, which fixes their vertical stacking.
type Node struct {
	ID       string         `json:"id"`
	Kind     NodeKind       `json:"kind"`
	Label    string         `json:"label"`
	Position Position       `json:"position"`
	Size     Size           `json:"size"`
	Ports    []Port         `json:"ports,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Edge connects an output port of one node to an input port of another. ID is
// derived from the four endpoint ids, so rebuilding from the same entity set
// yields the same edge ids.
type Edge struct {
	ID           string `json:"id"`
	SourceNodeID string `json:"source_node_id"`
	SourcePortID string `json:"source_port_id"`
	TargetNodeID string `json:"target_node_id"`
	TargetPortID string `json:"target_port_id"`
}

// Warning records a non-fatal data-shape issue found during a build: a
// reference to a port that does not exist, or a layout fallback.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
	PortID  string `json:"port_id,omitempty"`
}

const (
	WarnMalformedReference = "malformed_reference"
	WarnLayoutFallback     = "layout_fallback"
)

type Stats struct {
	TotalNodes  int            `json:"total_nodes"`
	TotalEdges  int            `json:"total_edges"`
	NodesByKind map[string]int `json:"nodes_by_kind,omitempty"`
}
