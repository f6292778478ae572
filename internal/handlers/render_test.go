// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lineascope/core/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHandler(t *testing.T) {
	handler := NewRenderHandler(graph.DefaultOptions())

	t.Run("defaults to svg output", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(catalogFixture))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<svg xmlns=")
		assert.Contains(t, w.Body.String(), ">Orders</text>")
	})

	t.Run("hrefBase links entity nodes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/render?hrefBase=/catalog/", strings.NewReader(catalogFixture))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<a href="/catalog/A">`)
	})

	t.Run("dot format renders graphviz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/render?format=dot", strings.NewReader(catalogFixture))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/vnd.graphviz", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "digraph lineage {")
	})

	t.Run("unknown format returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/render?format=png", strings.NewReader(catalogFixture))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown format")
	})

	t.Run("invalid catalog returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/render", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
