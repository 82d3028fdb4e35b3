package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-ricrob/crossingsolver/internal/config"
	"github.com/go-ricrob/crossingsolver/solver"
)

func symbols(agents []solver.Agent) string {
	if len(agents) == 0 {
		return "(empty)"
	}
	s := make([]string, len(agents))
	for i, a := range agents {
		s[i] = a.String()
	}
	return strings.Join(s, ", ")
}

func describe(c *config.Config, agents []solver.Agent) string {
	s := make([]string, len(agents))
	for i, a := range agents {
		s[i] = fmt.Sprintf("%s %s", c.SpeciesName(a.Species), a.Age)
	}
	return strings.Join(s, " and ")
}

func printState(w io.Writer, s solver.State) {
	fmt.Fprintf(w, "  near   : %s\n", symbols(s.Agents(solver.Near)))
	fmt.Fprintf(w, "  vehicle: %s side\n", s.Vehicle())
	fmt.Fprintf(w, "  far    : %s\n\n", symbols(s.Agents(solver.Far)))
}

// render prints the roster legend and replays the solution step by step.
func render(w io.Writer, c *config.Config, initial solver.State, result *solver.Result) error {
	fmt.Fprintln(w, "agents:")
	for _, a := range initial.Roster().Agents() {
		fmt.Fprintf(w, "  %s = %s %s\n", a, c.SpeciesName(a.Species), a.Age)
	}
	fmt.Fprintln(w)

	if !result.Solved {
		fmt.Fprintf(w, "no solution found (%d states searched)\n", result.NumStates)
		return nil
	}

	fmt.Fprintf(w, "solution: %d moves\n\n", len(result.Moves))
	fmt.Fprintln(w, "start:")
	printState(w, initial)

	s := initial
	for i, m := range result.Moves {
		var err error
		if s, err = s.Apply(m); err != nil {
			return err
		}
		verb := "move"
		if m.Direction == solver.FarToNear {
			verb = "return"
		}
		fmt.Fprintf(w, "step %d: %s %s (%s)\n", i+1, verb, describe(c, m.Agents), m)
		printState(w, s)
	}
	fmt.Fprintln(w, "all agents crossed")
	return nil
}
