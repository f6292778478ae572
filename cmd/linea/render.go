package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lineascope/core/internal/render"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		format   string
		outPath  string
		hrefBase string
	)

	cmd := &cobra.Command{
		Use:   "render [catalog.json]",
		Short: "Render a lineage graph as SVG or graphviz dot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, err := buildFromArgs(args)
			if err != nil {
				return err
			}

			reportWarnings(built.Warnings)

			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "svg":
				opts := render.SVGOptions{}
				if hrefBase != "" {
					opts.NodeHref = func(id string) string { return hrefBase + id }
				}
				return render.SVG(out, built, opts)
			case "dot":
				return render.Dot(out, built)
			default:
				return fmt.Errorf("unknown format %q (want svg or dot)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg or dot")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&hrefBase, "href-base", "", "link entity nodes to <href-base><entity-id>")

	return cmd
}
