// Package main implements linea, the command-line companion of the
// lineascope API: it builds and renders catalog lineage graphs from local
// files and can run the HTTP server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/lineascope/core/internal/models"
	"github.com/spf13/cobra"
)

var (
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "linea",
	Short: "linea — build and render data-catalog lineage graphs",
	Long: "linea turns a catalog entity set into a positioned lineage graph.\n" +
		"It speaks the same format as the lineascope API and renders to JSON, SVG, or graphviz dot.",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a lineascope yaml config")
	rootCmd.AddCommand(
		layoutCmd(),
		renderCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		badColor.Fprintf(os.Stderr, "linea: %v\n", err)
		os.Exit(1)
	}
}

func reportWarnings(warnings []models.Warning) {
	for _, w := range warnings {
		warnColor.Fprintf(os.Stderr, "warning [%s]: %s\n", w.Code, w.Message)
	}
}

func readCatalog(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}
