package mincut

import (
	"fmt"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
)

const (
	DINIC_SOLVER        = "dinic"
	PUSH_RELABEL_SOLVER = "pushrelabel"
)

// ExactSolver computes the true minimum s-t cut value. Solvers are not safe for concurrent use.
type ExactSolver interface {
	MinCutValue(s, t datastructure.Index) (int, error)
}

// SolverFactory builds a fresh solver over graph.
type SolverFactory func(graph *datastructure.Graph) ExactSolver

func NewSolverFactory(name string, debug bool) (SolverFactory, error) {
	switch name {
	case DINIC_SOLVER:
		return func(graph *datastructure.Graph) ExactSolver {
			return NewDinicMaxFlow(graph, debug)
		}, nil
	case PUSH_RELABEL_SOLVER:
		return func(graph *datastructure.Graph) ExactSolver {
			return NewPushRelabelMinCut(graph)
		}, nil
	default:
		return nil, fmt.Errorf("unknown exact solver %q", name)
	}
}

func NewExactSolver(name string, graph *datastructure.Graph, debug bool) (ExactSolver, error) {
	newSolver, err := NewSolverFactory(name, debug)
	if err != nil {
		return nil, err
	}
	return newSolver(graph), nil
}
