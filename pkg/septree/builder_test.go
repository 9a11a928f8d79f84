package septree

import (
	"testing"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/generator"
	"github.com/lintang-b-s/osm-separator-tree/pkg/mincut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

func treeEdges(st *SeparatorTree) []testEdge {
	edges := make([]testEdge, 0, st.NumberOfEdges())
	st.ForEachEdges(func(e *datastructure.Edge) {
		edges = append(edges, testEdge{e.GetFrom(), e.GetTo(), e.GetWeight()})
	})
	return edges
}

func TestBuildTriangle(t *testing.T) {
	st, err := NewBuilder(triangleGraph(t)).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())

	assert.Equal(t, 2, st.NumberOfEdges())
	assert.Equal(t, []testEdge{{1, 0, 6}, {2, 0, 6}}, treeEdges(st))
}

func TestBuildStar(t *testing.T) {
	st, err := NewBuilder(starGraph(t)).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())

	assert.Equal(t, []testEdge{{1, 0, 2}, {2, 0, 3}, {3, 0, 4}}, treeEdges(st))
}

func TestBuildTwoVertices(t *testing.T) {
	g := buildGraph(t, 2, []testEdge{{0, 1, 7}})
	st, err := NewBuilder(g).Build()
	require.NoError(t, err)
	assert.Equal(t, []testEdge{{1, 0, 7}}, treeEdges(st))
}

func TestBuildTooFewVertices(t *testing.T) {
	_, err := NewBuilder(datastructure.NewGraph(1)).Build()
	assert.ErrorIs(t, err, ErrTooFewVertices)

	_, err = NewBuilder(datastructure.NewGraph(0)).Build()
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuildFixedGraph(t *testing.T) {
	g := generator.FixedGraph()
	st, err := NewBuilder(g).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())
	assert.Equal(t, []testEdge{
		{1, 0, 8}, {2, 1, 3}, {3, 1, 11}, {4, 3, 15}, {5, 3, 6},
		{6, 3, 20}, {7, 3, 22}, {8, 3, 12}, {9, 8, 9},
	}, treeEdges(st))

	lce := mincut.NewLocalCutEstimator(g)
	st.ForEachEdges(func(e *datastructure.Edge) {
		assert.Greater(t, e.GetFrom(), e.GetTo(), "vertex is attached to an earlier vertex")
		assert.Equal(t, lce.Estimate(e.GetFrom(), e.GetTo()).GetValue(), e.GetWeight())
	})
}

func TestBuildRandomGraphs(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		g := generator.RandomGraph(120, 10, seed)
		st, err := NewBuilder(g).Build()
		require.NoError(t, err)
		require.NoError(t, st.Validate(), "seed %d", seed)
		assert.Equal(t, 119, st.NumberOfEdges())
	}
}

func TestBuildDisconnectedGraph(t *testing.T) {
	g := buildGraph(t, 5, []testEdge{{0, 1, 3}, {2, 3, 2}})
	st, err := NewBuilder(g).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())
}

func TestLocateNeverReturnsNewVertex(t *testing.T) {
	g := generator.RandomGraph(80, 10, 9)
	b := NewBuilder(g)
	st := NewSeparatorTree(g.NumberOfVertices())

	for p := 1; p < g.NumberOfVertices(); p++ {
		v := datastructure.Index(p)
		if p > 1 {
			anchor, err := b.locate(st, v)
			if err == nil {
				assert.NotEqual(t, v, anchor)
				assert.True(t, st.IsMember(anchor))
			}
		}
		require.NoError(t, b.Insert(st, v))
	}
	require.NoError(t, st.Validate())
}

func TestLocateIterationCap(t *testing.T) {
	// vertex 3 of the star needs three rounds to settle on the centre
	_, err := NewBuilder(starGraph(t), WithMaxLocateIterations(1), WithStrict(true)).Build()
	assert.ErrorIs(t, err, ErrLocateNotConverged)

	st, err := NewBuilder(starGraph(t), WithMaxLocateIterations(1), WithLogger(zap.NewNop())).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())
	assert.Equal(t, []testEdge{{1, 0, 2}, {2, 0, 3}, {3, 0, 4}}, treeEdges(st))
}

func TestLocateTieEscape(t *testing.T) {
	g := buildGraph(t, 5, []testEdge{{0, 1, 2}, {0, 2, 2}, {0, 3, 1}, {3, 4, 9}, {1, 2, 1}})

	// tree edges (1,0) and (2,0) tie at 5. Their cuts keep 4 away from both leaves, so
	// locate alternates between them until the threshold moves past 5 and reaches (3,0),
	// whose cut {1,0} sends 4 to the leaf 3.
	tieTree := func() *SeparatorTree {
		st := NewSeparatorTree(5)
		require.NoError(t, st.attach(1, 0, 5))
		require.NoError(t, st.attach(2, 0, 5))
		require.NoError(t, st.attach(3, 0, 6))
		return st
	}

	anchor, err := NewBuilder(g, WithStrict(true), WithMaxLocateIterations(4)).locate(tieTree(), 4)
	require.NoError(t, err)
	assert.Equal(t, datastructure.Index(3), anchor)

	// one round short of the threshold bump paying off
	anchor, err = NewBuilder(g, WithMaxLocateIterations(3)).locate(tieTree(), 4)
	assert.ErrorIs(t, err, ErrLocateNotConverged)
	assert.Equal(t, datastructure.Index(0), anchor)
}

func TestNewBuilderPanics(t *testing.T) {
	g := triangleGraph(t)
	assert.Panics(t, func() { NewBuilder(g, WithMaxLocateIterations(0)) })

	other := mincut.NewLocalCutEstimator(starGraph(t))
	assert.Panics(t, func() { NewBuilder(g, WithEstimator(other)) })
}

func TestBuilderWithSpread(t *testing.T) {
	g := generator.FixedGraph()
	lce := mincut.NewLocalCutEstimator(g, mincut.WithSpread(2))
	st, err := NewBuilder(g, WithEstimator(lce), WithMaxLocateIterations(500)).Build()
	require.NoError(t, err)
	require.NoError(t, st.Validate())
	assert.Same(t, lce, NewBuilder(g, WithEstimator(lce)).GetEstimator())
}
