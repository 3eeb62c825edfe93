package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/render"
)

// clearScreen homes the cursor and erases the terminal.
const clearScreen = "\x1b[H\x1b[2J"

func newSolveCmd(g *globalFlags) *cobra.Command {
	var (
		animate bool
		plain   bool
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one scenario and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := g.problem()
			if err != nil {
				return err
			}
			theme := render.DefaultTheme()
			if plain {
				theme = render.PlainTheme()
			}
			out := cmd.OutOrStdout()

			if animate {
				for snap, err := range mazepath.Steps(cmd.Context(), p.Grid, p.Algorithm, p.Start, p.Goal, p.Options()...) {
					if err != nil {
						return err
					}
					fmt.Fprint(out, clearScreen)
					fmt.Fprintln(out, theme.Snapshot(p.Grid, p.Start, p.Goal, snap))
				}

				return nil
			}

			rep, err := mazepath.Run(cmd.Context(), p.Grid, p.Algorithm, p.Start, p.Goal)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			fmt.Fprintln(out, theme.Grid(p.Grid, p.Start, p.Goal, rep.Result.Explored, rep.Result.Path))
			fmt.Fprintln(out, render.Summary(rep))

			return nil
		},
	}
	cmd.Flags().BoolVar(&animate, "animate", false, "redraw the grid after every step, paced by --speed/--delay")
	cmd.Flags().BoolVar(&plain, "plain", false, "no colors")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("animate", "json")

	return cmd
}
