package septree

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/osm-separator-tree/pkg"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
	"go.uber.org/zap"
)

var (
	ErrTooFewVertices     = errors.New("separator tree needs at least two vertices")
	ErrLocateNotConverged = errors.New("locate did not converge")
)

// Builder grows a separator tree one vertex at a time. Every new vertex walks the partial
// tree from its lightest edge upwards, using local cut estimates on the original graph to
// decide on which side of each tree edge it belongs.
type Builder struct {
	graph               *datastructure.Graph
	estimator           *mincut.LocalCutEstimator
	maxLocateIterations int
	strict              bool
	logger              *zap.Logger
}

type BuilderOption func(*Builder)

func WithMaxLocateIterations(maxIterations int) BuilderOption {
	return func(b *Builder) {
		b.maxLocateIterations = maxIterations
	}
}

// WithStrict makes Build fail when locate hits the iteration cap instead of falling back
// to the last examined tree vertex.
func WithStrict(strict bool) BuilderOption {
	return func(b *Builder) {
		b.strict = strict
	}
}

func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

func WithEstimator(estimator *mincut.LocalCutEstimator) BuilderOption {
	return func(b *Builder) {
		b.estimator = estimator
	}
}

func NewBuilder(graph *datastructure.Graph, opts ...BuilderOption) *Builder {
	b := &Builder{
		graph:               graph,
		maxLocateIterations: pkg.MAX_LOCATE_ITERATIONS,
		logger:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.estimator == nil {
		b.estimator = mincut.NewLocalCutEstimator(graph, mincut.WithLogger(b.logger))
	}
	if b.estimator.GetGraph() != graph {
		panic("estimator must be built over the same graph as the builder")
	}
	if b.maxLocateIterations < 1 {
		panic(fmt.Sprintf("max locate iterations must be positive, got %d", b.maxLocateIterations))
	}
	return b
}

func (b *Builder) GetEstimator() *mincut.LocalCutEstimator {
	return b.estimator
}

// Build inserts the vertices in index order. The root needs no search and vertex 1 is
// always attached to it.
func (b *Builder) Build() (*SeparatorTree, error) {
	n := b.graph.NumberOfVertices()
	if n < 2 {
		return nil, fmt.Errorf("graph has %d vertices: %w", n, ErrTooFewVertices)
	}

	tree := NewSeparatorTree(n)
	for p := 1; p < n; p++ {
		if err := b.Insert(tree, datastructure.Index(p)); err != nil {
			return nil, err
		}
		if p%pkg.BUILD_PROGRESS_INTERVAL == 0 {
			b.logger.Sugar().Infof("separator tree: %d of %d vertices inserted", p+1, n)
		}
	}
	b.logger.Sugar().Infof("separator tree done, %d vertices, %d edges, spread %d",
		tree.NumberOfVertices(), tree.NumberOfEdges(), b.estimator.GetSpread())
	return tree, nil
}

// Insert attaches p to the tree. p must be the next unattached vertex.
func (b *Builder) Insert(tree *SeparatorTree, p datastructure.Index) error {
	anchor := datastructure.Index(pkg.ROOT_VERTEX)
	if p > 1 {
		var err error
		anchor, err = b.locate(tree, p)
		if errors.Is(err, ErrLocateNotConverged) && !b.strict {
			b.logger.Warn("locate hit the iteration cap, attaching to the last examined vertex",
				zap.Uint32("vertex", uint32(p)),
				zap.Uint32("anchor", uint32(anchor)),
				zap.Int("maxIterations", b.maxLocateIterations))
		} else if err != nil {
			return err
		}
	}

	weight := b.estimator.Estimate(p, anchor).GetValue()
	return tree.attach(p, anchor, weight)
}

// locate walks the tree edges in increasing weight order. For every examined edge (a,b) the
// local cut between a and b tells which endpoint p is closer to; the search stops once p is
// separated together with a leaf endpoint or lies on a two vertex frontier.
func (b *Builder) locate(tree *SeparatorTree, p datastructure.Index) (datastructure.Index, error) {
	var (
		threshold    = 0
		attempts     = 0
		prevA, prevB datastructure.Index
		candA, candB datastructure.Index
	)

	for iter := 0; iter < b.maxLocateIterations; iter++ {
		minWeight := math.MaxInt
		check := false
		candA, candB = prevA, prevB

		tree.ForEachEdges(func(e *datastructure.Edge) {
			w := e.GetWeight()
			if w < minWeight && w >= threshold && (e.GetFrom() != prevA || e.GetTo() != prevB) {
				minWeight = w
				check = true
				candA, candB = e.GetFrom(), e.GetTo()
			}
		})

		if check {
			if threshold == minWeight {
				attempts++
			}
			threshold = minWeight
			if attempts == pkg.LOCATE_TIE_ATTEMPTS {
				attempts = 0
				threshold++
			}
		}

		a, bb := candA, candB
		if a == bb {
			// no tree edge to examine
			return datastructure.Index(pkg.ROOT_VERTEX), nil
		}
		prevA, prevB = a, bb

		cut := b.estimator.Estimate(a, bb)
		sideA := b.sideOf(cut, a, bb)
		found := cut.Contains(p)

		if ce := b.logger.Check(zap.DebugLevel, "locate round"); ce != nil {
			complement := datastructure.Complement(cut.GetFrontier(), datastructure.FullVertexSet(b.graph))
			ce.Write(
				zap.Uint32("vertex", uint32(p)),
				zap.Int("iteration", iter),
				zap.Uint32("a", uint32(a)),
				zap.Uint32("b", uint32(bb)),
				zap.Int("threshold", threshold),
				zap.Bool("check", check),
				zap.Bool("found", found),
				zap.Int("cutValue", cut.GetValue()),
				zap.Int("frontierSize", cut.Size()),
				zap.Int("complementSize", len(complement)),
			)
		}

		switch {
		case found && sideA && cut.Size() == 2:
			return a, nil
		case found && !sideA && cut.Size() == 2:
			return bb, nil
		case !found && sideA && (tree.GetOutDegree(bb) == 1 || !check):
			return bb, nil
		case !found && !sideA && (tree.GetOutDegree(a) == 1 || !check):
			return a, nil
		}
	}

	return candB, fmt.Errorf("vertex %d after %d iterations: %w", p, b.maxLocateIterations, ErrLocateNotConverged)
}

// sideOf reports whether a appears in the frontier before b.
func (b *Builder) sideOf(cut *mincut.CutResult, a, bb datastructure.Index) bool {
	for _, u := range cut.GetFrontier() {
		if u == a {
			return true
		}
		if u == bb {
			return false
		}
	}
	return false
}
