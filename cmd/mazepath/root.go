package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/scenario"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	scenario  string
	algorithm string
	speed     string
	delay     string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "mazepath",
		Short: "Shortest paths through grid mazes with A*, BFS and DFS",
		Long: "mazepath runs A*, breadth-first and depth-first search over 4-connected\n" +
			"grid mazes, step by step or to completion.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.scenario, "scenario", "s", "sample", "built-in scenario name or path to a YAML/JSON scenario file")
	pf.StringVarP(&g.algorithm, "algorithm", "a", "", "astar, bfs or dfs (default: the scenario's)")
	pf.StringVar(&g.speed, "speed", "", "pacing preset: instant, fast, normal, slow")
	pf.StringVar(&g.delay, "delay", "", "pacing delay per step, e.g. 75ms (overrides --speed)")
	pf.StringVar(&g.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newSolveCmd(g), newCompareCmd(g), newServeCmd(g))

	return root
}

// problem loads the selected scenario and applies the flag overrides.
func (g *globalFlags) problem() (*scenario.Problem, error) {
	sc, err := g.load()
	if err != nil {
		return nil, err
	}
	if g.algorithm != "" {
		sc.Algorithm = g.algorithm
	}
	if g.speed != "" {
		sc.Speed, sc.Delay = g.speed, ""
	}
	if g.delay != "" {
		sc.Delay = g.delay
	}

	return sc.Problem()
}

func (g *globalFlags) load() (*scenario.Scenario, error) {
	if _, err := os.Stat(g.scenario); err == nil {
		return scenario.LoadFile(g.scenario)
	}

	return scenario.Builtin(g.scenario)
}

func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
