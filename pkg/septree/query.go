package septree

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/osm-separator-tree/pkg/concurrent"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
)

const (
	// QUERY_ESTIMATE runs the local cut estimator over the tree itself.
	QUERY_ESTIMATE = "estimate"
	// QUERY_PATH takes the lightest edge on the tree path.
	QUERY_PATH = "path"
)

type PairCut struct {
	U     datastructure.Index `json:"u"`
	V     datastructure.Index `json:"v"`
	Value int                 `json:"value"`
}

// AllPairs answers the cut value of every pair u < v from the finished tree. Rows are
// computed in parallel and returned ordered by (u, v).
func (st *SeparatorTree) AllPairs(mode string, numWorkers int) ([]PairCut, error) {
	var row func(u datastructure.Index) []PairCut
	n := st.NumberOfVertices()

	switch mode {
	case QUERY_ESTIMATE:
		lce := mincut.NewLocalCutEstimator(st.tree)
		row = func(u datastructure.Index) []PairCut {
			pairs := make([]PairCut, 0, n-int(u)-1)
			for v := u + 1; int(v) < n; v++ {
				pairs = append(pairs, PairCut{U: u, V: v, Value: lce.Estimate(u, v).GetValue()})
			}
			return pairs
		}
	case QUERY_PATH:
		row = func(u datastructure.Index) []PairCut {
			bottleneck := st.pathMinCutsFrom(u)
			pairs := make([]PairCut, 0, n-int(u)-1)
			for v := u + 1; int(v) < n; v++ {
				pairs = append(pairs, PairCut{U: u, V: v, Value: bottleneck[v]})
			}
			return pairs
		}
	default:
		return nil, fmt.Errorf("unknown query mode %q", mode)
	}

	rows := make([]datastructure.Index, 0, n)
	for u := 0; u+1 < n; u++ {
		rows = append(rows, datastructure.Index(u))
	}

	results := concurrent.ProcessAll(numWorkers, rows, row)

	pairs := make([]PairCut, 0, n*(n-1)/2)
	for _, r := range results {
		pairs = append(pairs, r...)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})
	return pairs, nil
}
