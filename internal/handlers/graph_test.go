// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `{
	"entities": [
		{
			"id": "A",
			"label": "Orders",
			"ports": [{"id": "o1", "direction": "output"}]
		},
		{
			"id": "B",
			"label": "Billing",
			"ports": [
				{"id": "i1", "direction": "input", "source_reference": "A:o1"},
				{"id": "i2", "direction": "input", "source_reference": "system:kafka"}
			]
		}
	]
}`

func TestGraphHandler(t *testing.T) {
	handler := NewGraphHandler(graph.DefaultOptions())

	t.Run("builds a positioned graph from a catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader(catalogFixture))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var g models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
		assert.Len(t, g.Nodes, 3)
		assert.Len(t, g.Edges, 2)
		require.NotNil(t, g.Stats)
		assert.Equal(t, 3, g.Stats.TotalNodes)
		assert.Equal(t, 1, g.Stats.NodesByKind[string(models.KindExternalPlaceholder)])

		// Layout ran: the downstream entity sits right of its source.
		nodes := map[string]models.Node{}
		for _, n := range g.Nodes {
			nodes[n.ID] = n
		}
		assert.Greater(t, nodes["B"].Position.X, nodes["A"].Position.X)
	})

	t.Run("empty entity list builds an empty graph", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader(`{"entities": []}`))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var g models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
		assert.Empty(t, g.Nodes)
		assert.Empty(t, g.Edges)
	})

	t.Run("malformed references surface as warnings", func(t *testing.T) {
		body := `{
			"entities": [
				{"id": "A", "ports": [{"id": "o1", "direction": "output"}]},
				{"id": "B", "ports": [{"id": "i1", "direction": "input", "source_reference": "A:gone"}]}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var g models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
		assert.Empty(t, g.Edges)
		require.Len(t, g.Warnings, 1)
		assert.Equal(t, models.WarnMalformedReference, g.Warnings[0].Code)
	})

	t.Run("invalid catalog returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader(`{`))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid catalog")
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/graph", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("pretty query indents the response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graph?pretty=true", strings.NewReader(`{"entities": []}`))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\n  \"nodes\"")
	})
}
