package septree

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/osm-separator-tree/pkg/concurrent"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
	"github.com/lintang-b-s/osm-separator-tree/pkg/util"
	"go.uber.org/multierr"
)

type EdgeVerification struct {
	From      datastructure.Index `json:"from"`
	To        datastructure.Index `json:"to"`
	Estimated int                 `json:"estimated"`
	Exact     int                 `json:"exact"`
}

// Overshoot is how far the tree value lies above the exact minimum cut.
func (ev EdgeVerification) Overshoot() int {
	return util.Max(ev.Estimated-ev.Exact, 0)
}

type verifyResult struct {
	verification EdgeVerification
	err          error
}

// Verify recomputes the exact minimum cut on the input graph for the endpoints of every
// tree edge. Exact solvers keep residual state, so every job builds its own.
func (st *SeparatorTree) Verify(graph *datastructure.Graph, solverName string, numWorkers int) ([]EdgeVerification, error) {
	newSolver, err := mincut.NewSolverFactory(solverName, false)
	if err != nil {
		return nil, err
	}

	edges := make([]*datastructure.Edge, 0, st.NumberOfEdges())
	st.ForEachEdges(func(e *datastructure.Edge) {
		edges = append(edges, e)
	})

	results := concurrent.ProcessAll(numWorkers, edges, func(e *datastructure.Edge) verifyResult {
		exact, err := newSolver(graph).MinCutValue(e.GetFrom(), e.GetTo())
		if err != nil {
			return verifyResult{err: fmt.Errorf("tree edge (%d,%d): %w", e.GetFrom(), e.GetTo(), err)}
		}
		return verifyResult{verification: EdgeVerification{
			From:      e.GetFrom(),
			To:        e.GetTo(),
			Estimated: e.GetWeight(),
			Exact:     exact,
		}}
	})

	verifications := make([]EdgeVerification, 0, len(results))
	var errs error
	for _, res := range results {
		if res.err != nil {
			errs = multierr.Append(errs, res.err)
			continue
		}
		verifications = append(verifications, res.verification)
	}
	if errs != nil {
		return nil, errs
	}

	sort.Slice(verifications, func(i, j int) bool {
		return verifications[i].From < verifications[j].From
	})
	return verifications, nil
}

// CountOvershoots returns how many tree edges carry a value above the exact minimum cut.
func CountOvershoots(verifications []EdgeVerification) int {
	count := 0
	for _, ev := range verifications {
		if ev.Overshoot() > 0 {
			count++
		}
	}
	return count
}
