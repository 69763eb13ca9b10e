package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Config describes a batch of games.
type Config struct {
	Layout   string `yaml:"layout"`
	Games    int    `yaml:"games"`
	Seed     uint64 `yaml:"seed"`      // Game i is seeded with Seed+i
	MaxMoves int    `yaml:"max_moves"` // Pursuer moves before a game times out
	Pursuer  Agent  `yaml:"pursuer"`
	Ghosts   string `yaml:"ghosts"`
	Output   string `yaml:"output"` // Records are written under this directory when set
}

// Agent selects and parameterizes the pursuer.
type Agent struct {
	Type       string `yaml:"type"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
	Algorithm  string `yaml:"algorithm"`
	Heuristic  string `yaml:"heuristic"`
}

func Default() Config {
	return Config{
		Layout:   "minimaxClassic",
		Games:    1,
		MaxMoves: 500,
		Pursuer: Agent{
			Type:       "alphabeta",
			Depth:      2,
			Evaluation: "better",
			Algorithm:  "astar",
			Heuristic:  "manhattan",
		},
		Ghosts: "random",
	}
}

// Load reads a YAML file over the defaults; environment variables in the file are expanded.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Layout == "":
		return fmt.Errorf("%w: layout is required", ErrInvalid)
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, c.Games)
	case c.MaxMoves <= 0:
		return fmt.Errorf("%w: max_moves must be positive, got %d", ErrInvalid, c.MaxMoves)
	case c.Pursuer.Type == "":
		return fmt.Errorf("%w: pursuer type is required", ErrInvalid)
	case c.Pursuer.Depth < 0:
		return fmt.Errorf("%w: pursuer depth must not be negative, got %d", ErrInvalid, c.Pursuer.Depth)
	}
	return nil
}
