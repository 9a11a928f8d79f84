package mincut

import (
	"sync"
	"testing"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	u, v datastructure.Index
	w    int
}

func buildGraph(t *testing.T, n int, edges []testEdge) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph(n)
	for _, e := range edges {
		_, err := g.AddEdgeWithWeight(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func triangleGraph(t *testing.T) *datastructure.Graph {
	return buildGraph(t, 3, []testEdge{{0, 1, 1}, {0, 2, 5}, {1, 2, 5}})
}

func starGraph(t *testing.T) *datastructure.Graph {
	return buildGraph(t, 4, []testEdge{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}})
}

func TestEstimateTriangle(t *testing.T) {
	lce := NewLocalCutEstimator(triangleGraph(t))

	cut := lce.Estimate(0, 1)
	assert.Equal(t, 6, cut.GetValue())
	assert.Equal(t, []datastructure.Index{0}, cut.GetFrontier())
}

func TestEstimateStar(t *testing.T) {
	lce := NewLocalCutEstimator(starGraph(t))

	cut := lce.Estimate(1, 2)
	assert.Equal(t, 2, cut.GetValue())
	assert.Equal(t, []datastructure.Index{1}, cut.GetFrontier())

	// t side baseline wins when it is strictly lighter
	cut = lce.Estimate(3, 1)
	assert.Equal(t, 2, cut.GetValue())
	assert.Equal(t, []datastructure.Index{1}, cut.GetFrontier())
}

func TestEstimateNeighbourExpansion(t *testing.T) {
	// 0 and 1 are tightly bound and hang off the rest through a light edge
	g := buildGraph(t, 5, []testEdge{
		{0, 1, 10},
		{1, 2, 1},
		{0, 4, 1},
		{2, 3, 10},
		{3, 4, 10},
	})
	lce := NewLocalCutEstimator(g)

	cut := lce.Estimate(0, 3)
	// {0}: 11, {3}: 20, {0,1}: 11-10+1 = 2 (candidate 2 exists so the trial is compared)
	assert.Equal(t, 2, cut.GetValue())
	assert.Equal(t, []datastructure.Index{1, 0}, cut.GetFrontier())
	assert.True(t, cut.Contains(0))
	assert.False(t, cut.Contains(3))
}

func TestEstimateDeadEndNeighbour(t *testing.T) {
	// leaf 2 hangs off s, expanding into it must not produce a cut
	g := buildGraph(t, 4, []testEdge{{0, 2, 1}, {0, 1, 3}, {1, 3, 3}})
	lce := NewLocalCutEstimator(g)

	cut := lce.Estimate(0, 3)
	assert.Equal(t, 3, cut.GetValue())
	assert.Equal(t, []datastructure.Index{3}, cut.GetFrontier())
}

func TestEstimateDisconnectedReturnsBaseline(t *testing.T) {
	g := buildGraph(t, 4, []testEdge{{0, 1, 3}, {2, 3, 2}})
	lce := NewLocalCutEstimator(g)

	cut := lce.Estimate(0, 2)
	assert.Equal(t, 2, cut.GetValue())
	assert.Equal(t, []datastructure.Index{2}, cut.GetFrontier())

	isolated := datastructure.NewGraph(2)
	cut = NewLocalCutEstimator(isolated).Estimate(0, 1)
	assert.Equal(t, 0, cut.GetValue())
	assert.Equal(t, []datastructure.Index{0}, cut.GetFrontier())
}

func TestEstimateBoundedBySingletons(t *testing.T) {
	g := generator.RandomGraph(60, 10, 3)
	lce := NewLocalCutEstimator(g)

	for s := 0; s < g.NumberOfVertices(); s++ {
		for t2 := s + 1; t2 < g.NumberOfVertices(); t2 += 7 {
			u, v := datastructure.Index(s), datastructure.Index(t2)
			cut := lce.Estimate(u, v)
			assert.LessOrEqual(t, cut.GetValue(), g.TotalIncidentWeight(u))
			assert.LessOrEqual(t, cut.GetValue(), g.TotalIncidentWeight(v))
			require.NotEmpty(t, cut.GetFrontier())
			assert.NotEqual(t, cut.Contains(u), cut.Contains(v), "frontier separates %d and %d", u, v)
		}
	}
}

func TestEstimateIsIdempotent(t *testing.T) {
	g := generator.FixedGraph()
	lce := NewLocalCutEstimator(g)

	for s := 0; s < g.NumberOfVertices(); s++ {
		for t2 := 0; t2 < g.NumberOfVertices(); t2++ {
			if s == t2 {
				continue
			}
			first := lce.Estimate(datastructure.Index(s), datastructure.Index(t2))
			second := lce.Estimate(datastructure.Index(s), datastructure.Index(t2))
			assert.Equal(t, first.GetValue(), second.GetValue())
			assert.Equal(t, first.GetFrontier(), second.GetFrontier())
		}
	}
}

func TestEstimateIsUpperBoundOfExactCut(t *testing.T) {
	g := generator.RandomGraph(40, 10, 11)
	lce := NewLocalCutEstimator(g)
	exact := NewDinicMaxFlow(g, true)

	for s := 0; s < g.NumberOfVertices(); s += 3 {
		for t2 := s + 1; t2 < g.NumberOfVertices(); t2 += 5 {
			u, v := datastructure.Index(s), datastructure.Index(t2)
			value, err := exact.MinCutValue(u, v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, lce.Estimate(u, v).GetValue(), value)
		}
	}
}

func TestEstimateWithSpread(t *testing.T) {
	// path 0-1-2-3-4 with a heavy prefix: only a two hop frontier {0,1,2} is cheap
	g := buildGraph(t, 5, []testEdge{{0, 1, 9}, {1, 2, 9}, {2, 3, 1}, {3, 4, 9}, {0, 4, 8}})

	one := NewLocalCutEstimator(g, WithSpread(1)).Estimate(0, 4)
	two := NewLocalCutEstimator(g, WithSpread(2)).Estimate(0, 4)

	// spread 1: {0}=17, {0,1}=17-9+9=17; t side {4}=17, {4,3}=17-9+1=9
	assert.Equal(t, 9, one.GetValue())
	assert.Equal(t, []datastructure.Index{3, 4}, one.GetFrontier())
	// spread 2 grows {0,1} into {0,1,2}: 17-9+1 = 9 as well, then the t side ties
	assert.Equal(t, 9, two.GetValue())
	assert.LessOrEqual(t, two.GetValue(), one.GetValue())

	assert.Panics(t, func() { NewLocalCutEstimator(g, WithSpread(0)) })
}

func TestEstimatePanicsOnInvalidPair(t *testing.T) {
	lce := NewLocalCutEstimator(triangleGraph(t))
	assert.Panics(t, func() { lce.Estimate(1, 1) })
	assert.Panics(t, func() { lce.Estimate(0, 9) })
}

func TestEstimateConcurrentCallers(t *testing.T) {
	g := generator.RandomGraph(100, 10, 5)
	lce := NewLocalCutEstimator(g)

	want := make([]int, g.NumberOfVertices())
	for u := 1; u < g.NumberOfVertices(); u++ {
		want[u] = lce.Estimate(0, datastructure.Index(u)).GetValue()
	}

	got := make([]int, g.NumberOfVertices())
	var wg sync.WaitGroup
	for u := 1; u < g.NumberOfVertices(); u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			got[u] = lce.Estimate(0, datastructure.Index(u)).GetValue()
		}(u)
	}
	wg.Wait()
	assert.Equal(t, want, got)
}
