package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lintang-b-s/osm-separator-tree/pkg/config"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/generator"
	"github.com/lintang-b-s/osm-separator-tree/pkg/logger"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
	"github.com/lintang-b-s/osm-separator-tree/pkg/osmparser"
	"github.com/lintang-b-s/osm-separator-tree/pkg/septree"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	code := 0
	if err := run(cfg, logger); err != nil {
		logger.Error("separator tree failed", zap.Error(err))
		code = 1
	}
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config, logger *zap.Logger) error {
	graph, err := loadGraph(cfg, logger)
	if err != nil {
		return err
	}
	start := time.Now()
	logger.Info("graph loaded",
		zap.String("source", cfg.GraphSource),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("totalWeight", graph.TotalWeight()))
	if !graph.IsConnected() {
		logger.Warn("input graph is disconnected, cut values of vertices in different components are 0")
	}

	estimator := mincut.NewLocalCutEstimator(graph, mincut.WithSpread(cfg.Spread), mincut.WithLogger(logger))
	builder := septree.NewBuilder(graph,
		septree.WithEstimator(estimator),
		septree.WithMaxLocateIterations(cfg.MaxLocateIterations),
		septree.WithStrict(cfg.Strict),
		septree.WithLogger(logger))

	tree, err := builder.Build()
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	tree.ForEachEdges(func(e *datastructure.Edge) {
		fmt.Printf("there is an edge linking %d and %d and has a minimum cut of %d\n",
			e.GetFrom()+1, e.GetTo()+1, e.GetWeight())
	})

	var pairs []septree.PairCut
	if cfg.AllPairs {
		pairs, err = tree.AllPairs(cfg.QueryMode, cfg.NumWorkers)
		if err != nil {
			return err
		}
		for _, pc := range pairs {
			fmt.Printf("Pair %d and %d has a minimum cut value of %d\n", pc.U+1, pc.V+1, pc.Value)
		}
	}

	var verification []septree.EdgeVerification
	if cfg.Verify {
		verification, err = tree.Verify(graph, cfg.ExactSolver, cfg.NumWorkers)
		if err != nil {
			return err
		}
		logger.Info("verified tree edges against exact min cut",
			zap.String("solver", cfg.ExactSolver),
			zap.Int("edges", len(verification)),
			zap.Int("overshoots", septree.CountOvershoots(verification)))
	}

	elapsed := time.Since(start).Seconds()

	if cfg.OutputTree != "" {
		if err := tree.WriteTree(cfg.OutputTree); err != nil {
			return err
		}
		logger.Sugar().Infof("tree written to %s", cfg.OutputTree)
	}
	if cfg.OutputReport != "" {
		report := tree.NewReport(elapsed)
		report.Pairs = pairs
		report.Verification = verification
		if err := septree.WriteReport(cfg.OutputReport, report); err != nil {
			return err
		}
		logger.Sugar().Infof("report written to %s", cfg.OutputReport)
	}

	fmt.Printf("Total time -> %.3f seconds\n", elapsed)
	return nil
}

func loadGraph(cfg *config.Config, logger *zap.Logger) (*datastructure.Graph, error) {
	switch cfg.GraphSource {
	case config.SOURCE_FIXED:
		return generator.FixedGraph(), nil
	case config.SOURCE_RANDOM:
		seed := cfg.Seed
		if seed == 0 {
			seed = generator.SeedFromClock()
		}
		logger.Info("generating random graph", zap.Int("vertices", cfg.NumVertices), zap.Uint64("seed", seed))
		return generator.RandomGraph(cfg.NumVertices, cfg.CostGenRange, seed), nil
	case config.SOURCE_FILE:
		return datastructure.ReadGraph(cfg.GraphFile)
	case config.SOURCE_YAML:
		return datastructure.ReadGraphYAML(cfg.GraphFile)
	case config.SOURCE_OSM:
		return osmparser.NewOSMParser(logger).Parse(cfg.GraphFile)
	default:
		return nil, fmt.Errorf("unknown graph source %q: %w", cfg.GraphSource, config.ErrInvalidConfig)
	}
}
