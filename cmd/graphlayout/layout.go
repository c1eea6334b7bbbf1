package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunmenon/graphlayout/internal/config"
	"github.com/arjunmenon/graphlayout/internal/graphfile"
	"github.com/arjunmenon/graphlayout/layout"
)

func newLayoutCmd() *cobra.Command {
	var (
		configPath    string
		output        string
		straightEdges bool
	)

	cmd := &cobra.Command{
		Use:   "layout <graph.json>",
		Short: "Compute a layout and write it back to the graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			out := output
			if out == "" {
				out = input
			}

			g, err := graphfile.Read(input)
			if err != nil {
				return err
			}

			if configPath != "" {
				label, err := config.Load(configPath)
				if err != nil {
					return err
				}
				g.SetGraphLabel(label)
			}

			logger := loggerFromContext(cmd.Context())
			opts := layout.Options{
				DebugTiming:   true,
				Logger:        logger,
				StraightEdges: straightEdges,
			}

			if err := layout.Layout(g, opts); err != nil {
				return fmt.Errorf("layout %s: %w", input, err)
			}

			if err := graphfile.Write(out, g); err != nil {
				return err
			}

			logger.Infof("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file overriding graph-label defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&straightEdges, "straight-edges", false, "collapse routed edges to direct lines")

	return cmd
}
