// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/parser"
	"github.com/lineascope/core/internal/render"
)

// NewRenderHandler serves POST /render: a catalog document in, an SVG or dot
// drawing out, selected by ?format= (svg is the default). ?hrefBase=, when
// set, turns entity nodes into links under that path.
func NewRenderHandler(opt graph.Options) http.HandlerFunc {
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

		switch format := r.URL.Query().Get("format"); format {
		case "", "svg":
			opts := render.SVGOptions{}
			if base := r.URL.Query().Get("hrefBase"); base != "" {
				opts.NodeHref = func(id string) string { return base + id }
			}
			w.Header().Set("Content-Type", "image/svg+xml")
			if err := render.SVG(w, built, opts); err != nil {
				log.Printf("Error writing svg: %v", err)
			}
		case "dot":
			w.Header().Set("Content-Type", "text/vnd.graphviz")
			if err := render.Dot(w, built); err != nil {
				log.Printf("Error writing dot: %v", err)
			}
		default:
			http.Error(w, "Unknown format: "+format, http.StatusBadRequest)
		}
	}
}
