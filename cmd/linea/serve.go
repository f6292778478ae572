package main

import (
	"fmt"
	"net/http"

	"github.com/lineascope/core/cmd/api/middleware"
	"github.com/lineascope/core/internal/config"
	"github.com/lineascope/core/internal/handlers"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lineascope HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			opt := cfg.GraphOptions()
			mux := http.NewServeMux()
			mux.HandleFunc("/health", handlers.HealthHandler)
			mux.HandleFunc("/graph", handlers.NewGraphHandler(opt))
			mux.HandleFunc("/render", handlers.NewRenderHandler(opt))

			handler := middleware.RequestID(middleware.Cors(cfg.Server.CORSOrigin, mux))

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			infoColor.Fprintf(cmd.OutOrStdout(), "serving lineascope API on %s\n", addr)
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured port")

	return cmd
}
