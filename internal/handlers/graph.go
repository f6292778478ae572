// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/parser"
)

// NewGraphHandler serves POST /graph: a catalog document in, the positioned
// graph out.
func NewGraphHandler(opt graph.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		doc, err := parser.ParseCatalog(body)
		if err != nil {
			http.Error(w, "Invalid catalog: "+err.Error(), http.StatusBadRequest)
			return
		}

		built := graph.Build(doc.Entities, opt)

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(built); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}
