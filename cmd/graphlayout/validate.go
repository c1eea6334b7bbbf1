package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunmenon/graphlayout/internal/graphfile"
	"github.com/arjunmenon/graphlayout/layout"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <graph.json>",
		Short: "Lay out a graph and check it against the engine's invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			g, err := graphfile.Read(input)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			if err := layout.Layout(g, layout.Options{Logger: logger}); err != nil {
				return fmt.Errorf("layout %s: %w", input, err)
			}

			violations := layout.Validate(g)
			if len(violations) == 0 {
				logger.Infof("%s: all invariants hold", input)
				return nil
			}

			for _, v := range violations {
				logger.Errorf("%s", v.String())
			}
			return fmt.Errorf("%s: %d invariant violation(s)", input, len(violations))
		},
	}
	return cmd
}
