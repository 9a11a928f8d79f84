package mincut

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/osm-separator-tree/pkg"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"go.uber.org/zap"
)

// LocalCutEstimator approximates the minimum s-t cut by growing small frontiers around s and t
// instead of running max-flow. Every frontier it reports is a real s-t separating cut, so the
// value is an upper bound of the exact minimum cut.
//
// Estimate only reads the graph and allocates its scratch per call, so one estimator can be
// shared by goroutines as long as nobody mutates the graph meanwhile.
type LocalCutEstimator struct {
	graph  *datastructure.Graph
	spread int // neighbour expansion depth, 1 = first hop neighbours only
	logger *zap.Logger
}

type Option func(*LocalCutEstimator)

func WithSpread(spread int) Option {
	return func(lce *LocalCutEstimator) {
		lce.spread = spread
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(lce *LocalCutEstimator) {
		lce.logger = logger
	}
}

func NewLocalCutEstimator(graph *datastructure.Graph, opts ...Option) *LocalCutEstimator {
	lce := &LocalCutEstimator{
		graph:  graph,
		spread: pkg.DEFAULT_SPREAD,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(lce)
	}
	if lce.spread < 1 {
		panic(fmt.Sprintf("spread must be at least 1, got %d", lce.spread))
	}
	return lce
}

func (lce *LocalCutEstimator) GetGraph() *datastructure.Graph {
	return lce.graph
}

func (lce *LocalCutEstimator) GetSpread() int {
	return lce.spread
}

// Estimate returns the lightest frontier found among the singleton cuts {s}, {t} and the
// neighbour expansions rooted at s and then at t.
func (lce *LocalCutEstimator) Estimate(s, t datastructure.Index) *CutResult {
	if s == t {
		panic(fmt.Sprintf("Estimate: s and t must differ, got %d", s))
	}
	if !lce.graph.IsValidVertex(s) || !lce.graph.IsValidVertex(t) {
		panic(fmt.Sprintf("Estimate(%d, %d): %v", s, t, datastructure.ErrVertexOutOfRange))
	}

	sc := newNodeScratch(lce.graph.NumberOfVertices(), s, t)
	best := NewCutResult(nil, math.MaxInt)

	lce.expandFrom(s, t, sc, best)
	lce.expandFrom(t, s, sc, best)

	if ce := lce.logger.Check(zap.DebugLevel, "local min cut"); ce != nil {
		ce.Write(
			zap.Uint32("s", uint32(s)),
			zap.Uint32("t", uint32(t)),
			zap.Int("value", best.value),
			zap.Int("frontierSize", len(best.frontier)),
		)
	}
	return best
}

func (lce *LocalCutEstimator) expandFrom(root, other datastructure.Index, sc *nodeScratch, best *CutResult) {
	// the baseline keeps the weight of a direct root-other edge, it is a cut edge of {root}
	baseline := 0
	neighbors := make([]datastructure.Index, 0, lce.graph.GetOutDegree(root))
	lce.graph.ForOutEdgesOfVertex(root, func(e *datastructure.Edge, head datastructure.Index) {
		if head != other {
			neighbors = append(neighbors, head)
		}
		baseline += e.GetWeight()
	})

	if baseline < best.value {
		best.frontier = []datastructure.Index{root}
		best.value = baseline
	}

	for _, v := range neighbors {
		sc.reset()
		sc.setPred(v, root)
		sc.visit(v)

		trial := baseline
		cur := v
		for j := 0; j < lce.spread; j++ {
			eId, _ := lce.graph.FindEdge(sc.getPred(cur), cur)
			trial -= lce.graph.GetWeight(eId)

			candidates := lce.absorb(cur, root, sc, &trial)
			if len(candidates) == 0 {
				// nothing left to grow into, the trial ends without a comparison
				break
			}

			next := candidates[0]
			sc.setPred(next, cur)
			sc.visit(next)

			if trial < best.value {
				best.frontier = sc.pathToRoot(cur, root)
				best.value = trial
			}
			cur = next
		}
	}
}

// absorb moves cur onto the frontier: the weight of cur's edges that leave the frontier chain
// is added to trial and the unvisited neighbours of cur are returned as expansion candidates.
func (lce *LocalCutEstimator) absorb(cur, root datastructure.Index, sc *nodeScratch, trial *int) []datastructure.Index {
	if lce.graph.GetOutDegree(cur) == 1 {
		// dead end, its only edge leads back to the frontier
		return nil
	}

	candidates := make([]datastructure.Index, 0)
	chainStart := sc.getPred(cur)
	lce.graph.ForOutEdgesOfVertex(cur, func(e *datastructure.Edge, head datastructure.Index) {
		if !sc.isVisited(head) {
			candidates = append(candidates, head)
		}
		if !sc.onPath(head, chainStart, root) {
			*trial += e.GetWeight()
		}
	})
	return candidates
}
