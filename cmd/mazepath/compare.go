package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/render"
)

// newCompareCmd runs every algorithm on the same scenario, one after the
// other, and prints a summary line for each. Pacing is not applied.
func newCompareCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run A*, BFS and DFS on one scenario and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := g.problem()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, alg := range mazepath.Algorithms {
				rep, err := mazepath.Run(cmd.Context(), p.Grid, alg, p.Start, p.Goal)
				if err != nil {
					return fmt.Errorf("%s: %w", alg, err)
				}
				fmt.Fprintln(out, render.Summary(rep))
			}

			return nil
		},
	}
}
