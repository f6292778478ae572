// Package models defines the core data structures shared across the service:
// catalog entities with their ports, and the positioned graph document built
// from them.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPort(t *testing.T) {
	entity := Entity{
		ID:    "orders",
		Label: "Orders",
		Ports: []Port{
			{ID: "i1", Direction: DirectionInput},
			{ID: "o1", Direction: DirectionOutput, Name: "clean orders"},
			{ID: "o2", Direction: DirectionOutput},
		},
	}

	t.Run("finds existing output port", func(t *testing.T) {
		port, ok := entity.OutputPort("o1")

		assert.True(t, ok)
		assert.Equal(t, "clean orders", port.Name)
	})

	t.Run("does not match input ports", func(t *testing.T) {
		_, ok := entity.OutputPort("i1")

		assert.False(t, ok)
	})

	t.Run("missing port id returns false", func(t *testing.T) {
		_, ok := entity.OutputPort("o9")

		assert.False(t, ok)
	})
}

func TestPortFilters(t *testing.T) {
	t.Run("ports are split by direction in declaration order", func(t *testing.T) {
		entity := Entity{
			ID: "billing",
			Ports: []Port{
				{ID: "o1", Direction: DirectionOutput},
				{ID: "i1", Direction: DirectionInput},
				{ID: "i2", Direction: DirectionInput},
			},
		}

		inputs := entity.InputPorts()
		outputs := entity.OutputPorts()

		assert.Len(t, inputs, 2)
		assert.Equal(t, "i1", inputs[0].ID)
		assert.Equal(t, "i2", inputs[1].ID)
		assert.Len(t, outputs, 1)
		assert.Equal(t, "o1", outputs[0].ID)
	})

	t.Run("entity without ports yields empty slices", func(t *testing.T) {
		entity := Entity{ID: "empty"}

		assert.Empty(t, entity.InputPorts())
		assert.Empty(t, entity.OutputPorts())
	})
}
