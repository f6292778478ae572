package main

import (
	"encoding/json"
	"os"

	"github.com/lineascope/core/internal/config"
	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/models"
	"github.com/lineascope/core/internal/parser"
	"github.com/spf13/cobra"
)

func layoutCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "layout [catalog.json]",
		Short: "Build a positioned lineage graph and print it as JSON",
		Long:  "Reads a catalog entity set from a file (or stdin with \"-\") and prints the built graph with node positions assigned.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, err := buildFromArgs(args)
			if err != nil {
				return err
			}

			reportWarnings(built.Warnings)

			encoder := json.NewEncoder(os.Stdout)
			if pretty {
				encoder.SetIndent("", "  ")
			}
			return encoder.Encode(built)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func buildFromArgs(args []string) (*models.Graph, error) {
	data, err := readCatalog(args)
	if err != nil {
		return nil, err
	}

	doc, err := parser.ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return graph.Build(doc.Entities, cfg.GraphOptions()), nil
}
