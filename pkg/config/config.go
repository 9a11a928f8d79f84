package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lintang-b-s/osm-separator-tree/pkg"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
	"github.com/lintang-b-s/osm-separator-tree/pkg/septree"
	"github.com/spf13/viper"
)

const (
	SOURCE_FIXED  = "fixed"
	SOURCE_RANDOM = "random"
	SOURCE_FILE   = "file"
	SOURCE_YAML   = "yaml"
	SOURCE_OSM    = "osm"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the driver settings. Values come from the environment, an optional .env file
// and an optional yaml file named by CONFIG_FILE, in that order of precedence.
type Config struct {
	GraphSource         string
	GraphFile           string
	NumVertices         int
	CostGenRange        int
	Seed                uint64
	Spread              int
	MaxLocateIterations int
	Strict              bool
	AllPairs            bool
	QueryMode           string
	NumWorkers          int
	Verify              bool
	ExactSolver         string
	OutputTree          string
	OutputReport        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GRAPH_SOURCE", SOURCE_FIXED)
	v.SetDefault("GRAPH_FILE", "")
	v.SetDefault("NUM_VERTICES", pkg.NUM_VERTICES)
	v.SetDefault("COST_GEN_RANGE", pkg.COST_GEN_RANGE)
	v.SetDefault("SEED", 0)
	v.SetDefault("SPREAD", pkg.DEFAULT_SPREAD)
	v.SetDefault("MAX_LOCATE_ITERATIONS", pkg.MAX_LOCATE_ITERATIONS)
	v.SetDefault("STRICT", false)
	v.SetDefault("ALL_PAIRS", true)
	v.SetDefault("QUERY_MODE", septree.QUERY_ESTIMATE)
	v.SetDefault("NUM_WORKERS", 0)
	v.SetDefault("VERIFY", false)
	v.SetDefault("EXACT_SOLVER", mincut.DINIC_SOLVER)
	v.SetDefault("OUTPUT_TREE", "")
	v.SetDefault("OUTPUT_REPORT", "")
}

// Load reads .env (if present) into the process environment, then resolves the config
// through viper. The global viper instance is used so the logger sees the same settings.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		GraphSource:         v.GetString("GRAPH_SOURCE"),
		GraphFile:           v.GetString("GRAPH_FILE"),
		NumVertices:         v.GetInt("NUM_VERTICES"),
		CostGenRange:        v.GetInt("COST_GEN_RANGE"),
		Seed:                v.GetUint64("SEED"),
		Spread:              v.GetInt("SPREAD"),
		MaxLocateIterations: v.GetInt("MAX_LOCATE_ITERATIONS"),
		Strict:              v.GetBool("STRICT"),
		AllPairs:            v.GetBool("ALL_PAIRS"),
		QueryMode:           v.GetString("QUERY_MODE"),
		NumWorkers:          v.GetInt("NUM_WORKERS"),
		Verify:              v.GetBool("VERIFY"),
		ExactSolver:         v.GetString("EXACT_SOLVER"),
		OutputTree:          v.GetString("OUTPUT_TREE"),
		OutputReport:        v.GetString("OUTPUT_REPORT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.GraphSource {
	case SOURCE_FIXED:
	case SOURCE_RANDOM:
		if c.NumVertices < 2 {
			return fmt.Errorf("NUM_VERTICES %d must be at least 2: %w", c.NumVertices, ErrInvalidConfig)
		}
		if c.CostGenRange < 1 {
			return fmt.Errorf("COST_GEN_RANGE %d must be positive: %w", c.CostGenRange, ErrInvalidConfig)
		}
	case SOURCE_FILE, SOURCE_YAML, SOURCE_OSM:
		if c.GraphFile == "" {
			return fmt.Errorf("GRAPH_FILE is required for source %q: %w", c.GraphSource, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown GRAPH_SOURCE %q: %w", c.GraphSource, ErrInvalidConfig)
	}

	if c.Spread < 1 {
		return fmt.Errorf("SPREAD %d must be at least 1: %w", c.Spread, ErrInvalidConfig)
	}
	if c.MaxLocateIterations < 1 {
		return fmt.Errorf("MAX_LOCATE_ITERATIONS %d must be positive: %w", c.MaxLocateIterations, ErrInvalidConfig)
	}
	if c.QueryMode != septree.QUERY_ESTIMATE && c.QueryMode != septree.QUERY_PATH {
		return fmt.Errorf("unknown QUERY_MODE %q: %w", c.QueryMode, ErrInvalidConfig)
	}
	if c.ExactSolver != mincut.DINIC_SOLVER && c.ExactSolver != mincut.PUSH_RELABEL_SOLVER {
		return fmt.Errorf("unknown EXACT_SOLVER %q: %w", c.ExactSolver, ErrInvalidConfig)
	}
	return nil
}
