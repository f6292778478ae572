// Package main starts an HTTP server that provides endpoints for health
// checks, catalog graph building, and graph rendering. It uses the internal
// handlers package to process incoming requests and return JSON responses.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/lineascope/core/cmd/api/middleware"
	"github.com/lineascope/core/internal/config"
	"github.com/lineascope/core/internal/handlers"
)

func main() {
	cfg, err := config.Load(os.Getenv("LINEASCOPE_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	mux := newRouter(cfg)
	handler := middleware.RequestID(middleware.Cors(cfg.Server.CORSOrigin, mux))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func newRouter(cfg config.Config) *http.ServeMux {
	opt := cfg.GraphOptions()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/graph", handlers.NewGraphHandler(opt))
	mux.HandleFunc("/render", handlers.NewRenderHandler(opt))
	return mux
}
