package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ricrob/crossingsolver/internal/config"
	"github.com/go-ricrob/crossingsolver/solver"
)

type options struct {
	configPath string
	capacity   int
	json       bool
	verbose    bool
	parallel   int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "crossingsolver",
		Short:         "Find the shortest way to move all agents across",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log search progress")
	root.PersistentFlags().IntVar(&opts.capacity, "capacity", 0, "override the vehicle capacity")
	root.Flags().StringVarP(&opts.configPath, "config", "c", "", "puzzle file (default: polar puzzle)")
	root.Flags().BoolVar(&opts.json, "json", false, "print the solution as JSON")

	batch := &cobra.Command{
		Use:   "batch file...",
		Short: "Solve several puzzle files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}
	batch.Flags().IntVarP(&opts.parallel, "parallel", "p", 0, "number of puzzles solved at the same time (default: number of CPUs)")
	root.AddCommand(batch)

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadConfig(path string, capacity int) (*config.Config, error) {
	c := config.Default()
	if path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if capacity != 0 {
		c.Capacity = capacity
	}
	return c, nil
}

func runSolve(stdout, stderr io.Writer, opts *options) error {
	c, err := loadConfig(opts.configPath, opts.capacity)
	if err != nil {
		return err
	}
	r, err := c.Roster()
	if err != nil {
		return err
	}
	initial, err := solver.BuildInitialState(r)
	if err != nil {
		return err
	}

	result, err := solver.New(solver.WithLogger(newLogger(stderr, opts.verbose))).Run(initial)
	if err != nil {
		return err
	}
	if opts.json {
		if err := writeJSON(stdout, result); err != nil {
			return err
		}
	} else if err := render(stdout, c, initial, result); err != nil {
		return err
	}
	if !result.Solved {
		return solver.ErrNoSolution
	}
	return nil
}

func runBatch(cmd *cobra.Command, paths []string, opts *options) error {
	rosters := make([]*solver.Roster, len(paths))
	for i, path := range paths {
		c, err := loadConfig(path, opts.capacity)
		if err != nil {
			return err
		}
		if rosters[i], err = c.Roster(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	batchOpts := []solver.BatchOption{solver.WithSolverOptions(solver.WithLogger(logger))}
	if opts.parallel > 0 {
		batchOpts = append(batchOpts, solver.WithParallelism(opts.parallel))
	}
	results, err := solver.SolveAll(cmd.Context(), rosters, batchOpts...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	unsolved := 0
	for i, result := range results {
		if !result.Solved {
			unsolved++
			fmt.Fprintf(w, "%s: no solution (%d states)\n", paths[i], result.NumStates)
			continue
		}
		fmt.Fprintf(w, "%s: %d moves (%d states): %s\n", paths[i], len(result.Moves), result.NumStates, result.Moves)
	}
	if unsolved > 0 {
		return fmt.Errorf("%d of %d puzzles: %w", unsolved, len(results), solver.ErrNoSolution)
	}
	return nil
}

type jsonMove struct {
	Direction string   `json:"direction"`
	Agents    []string `json:"agents"`
}

type jsonResult struct {
	Solved    bool       `json:"solved"`
	Moves     []jsonMove `json:"moves"`
	NumStates int        `json:"numStates"`
}

func writeJSON(w io.Writer, result *solver.Result) error {
	out := jsonResult{Solved: result.Solved, Moves: []jsonMove{}, NumStates: result.NumStates}
	for _, m := range result.Moves {
		jm := jsonMove{Direction: "far", Agents: make([]string, len(m.Agents))}
		if m.Direction == solver.FarToNear {
			jm.Direction = "near"
		}
		for i, a := range m.Agents {
			jm.Agents[i] = a.String()
		}
		out.Moves = append(out.Moves, jm)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, solver.ErrNoSolution) {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		}
		os.Exit(1)
	}
}
