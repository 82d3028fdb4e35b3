// Package config loads crossing puzzles from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/go-ricrob/crossingsolver/solver"
)

// SpeciesEntry names a species code.
type SpeciesEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Config describes one puzzle.
type Config struct {
	Priority string         `yaml:"priority"`
	Capacity int            `yaml:"capacity,omitempty"`
	Species  []SpeciesEntry `yaml:"species,omitempty"`
	Agents   []string       `yaml:"agents"`
}

var errConfig = errors.New("invalid config")

// Default returns the configuration of the original puzzle.
func Default() *Config {
	return &Config{
		Priority: string(solver.SeaLion),
		Capacity: solver.DefaultCapacity,
		Species: []SpeciesEntry{
			{Code: string(solver.SeaLion), Name: "sea lion"},
			{Code: string(solver.Penguin), Name: "penguin"},
			{Code: string(solver.PolarBear), Name: "polar bear"},
		},
		Agents: []string{"S", "s", "P", "p", "B", "b"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a YAML configuration.
func Parse(b []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) check() error {
	if c.Priority == "" {
		return fmt.Errorf("%w: priority missing", errConfig)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", errConfig)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", errConfig, c.Capacity)
	}

	var codes []string
	for _, sp := range c.Species {
		if sp.Code == "" {
			return fmt.Errorf("%w: species %q without code", errConfig, sp.Name)
		}
		if slices.Contains(codes, sp.Code) {
			return fmt.Errorf("%w: species %q declared twice", errConfig, sp.Code)
		}
		codes = append(codes, sp.Code)
	}
	if len(codes) == 0 {
		return nil
	}
	for _, symbol := range c.Agents {
		a, err := solver.ParseAgent(symbol)
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		if !slices.Contains(codes, string(a.Species)) {
			return fmt.Errorf("%w: agent %s of undeclared species", errConfig, symbol)
		}
	}
	return nil
}

// SpeciesName returns the declared name of species sp or its code.
func (c *Config) SpeciesName(sp solver.Species) string {
	i := slices.IndexFunc(c.Species, func(e SpeciesEntry) bool { return e.Code == string(sp) })
	if i < 0 || c.Species[i].Name == "" {
		return string(sp)
	}
	return c.Species[i].Name
}

// Roster builds the roster described by c.
func (c *Config) Roster() (*solver.Roster, error) {
	agents := make([]solver.Agent, 0, len(c.Agents))
	for _, symbol := range c.Agents {
		a, err := solver.ParseAgent(symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errConfig, err)
		}
		agents = append(agents, a)
	}

	var opts []solver.RosterOption
	if c.Capacity != 0 {
		opts = append(opts, solver.WithCapacity(c.Capacity))
	}
	return solver.NewRoster(agents, solver.Species(c.Priority), opts...)
}
