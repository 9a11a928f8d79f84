package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(3)
	_, err := g.AddEdgeWithWeight(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdgeWithWeight(0, 2, 5)
	require.NoError(t, err)
	_, err = g.AddEdgeWithWeight(1, 2, 5)
	require.NoError(t, err)
	return g
}

func TestAddEdge(t *testing.T) {
	g := NewGraph(4)

	e1, added := g.AddEdge(0, 1)
	require.True(t, added)
	assert.Equal(t, Index(0), e1)

	again, added := g.AddEdge(1, 0)
	assert.False(t, added, "reverse orientation is the same undirected edge")
	assert.Equal(t, e1, again)

	_, added = g.AddEdge(2, 2)
	assert.False(t, added, "self loops are rejected")

	assert.True(t, g.EdgeExists(0, 1))
	assert.True(t, g.EdgeExists(1, 0))
	assert.False(t, g.EdgeExists(0, 2))
	assert.Equal(t, 1, g.NumberOfEdges())

	assert.Panics(t, func() { g.AddEdge(0, 9) })
}

func TestAddEdgeWithWeightErrors(t *testing.T) {
	g := NewGraph(3)
	_, err := g.AddEdgeWithWeight(0, 5, 1)
	assert.ErrorIs(t, err, ErrVertexOutOfRange)

	_, err = g.AddEdgeWithWeight(1, 1, 1)
	assert.ErrorIs(t, err, ErrSelfLoop)

	_, err = g.AddEdgeWithWeight(0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = g.AddEdgeWithWeight(0, 1, 2)
	require.NoError(t, err)
	_, err = g.AddEdgeWithWeight(1, 0, 3)
	assert.ErrorIs(t, err, ErrParallelEdge)
}

func TestOutEdgesKeepInsertionOrder(t *testing.T) {
	g := triangle(t)

	heads := make([]Index, 0)
	g.ForOutEdgesOfVertex(2, func(e *Edge, head Index) {
		heads = append(heads, head)
	})
	assert.Equal(t, []Index{0, 1}, heads)

	others := make([]Index, 0)
	g.ForOutEdgesOfVertex(0, func(e *Edge, head Index) {
		others = append(others, e.Other(0))
	})
	assert.Equal(t, []Index{1, 2}, others)

	e := g.GetEdge(1)
	assert.Equal(t, Index(0), e.GetFrom())
	assert.Equal(t, Index(2), e.GetTo())
}

func TestWeightsAndDegrees(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, 6, g.TotalIncidentWeight(0))
	assert.Equal(t, 6, g.TotalIncidentWeight(1))
	assert.Equal(t, 10, g.TotalIncidentWeight(2))
	assert.Equal(t, 11, g.TotalWeight())
	assert.Equal(t, 2, g.GetOutDegree(0))

	eId, ok := g.FindEdge(2, 1)
	require.True(t, ok)
	g.SetWeight(eId, 7)
	assert.Equal(t, 7, g.GetWeight(eId))
	assert.Equal(t, 12, g.TotalIncidentWeight(2))
}

func TestConnectivity(t *testing.T) {
	g := triangle(t)
	assert.True(t, g.IsConnected())

	withIsolated := NewGraph(4)
	g.ForEachEdges(func(e *Edge) {
		_, err := withIsolated.AddEdgeWithWeight(e.GetFrom(), e.GetTo(), e.GetWeight())
		require.NoError(t, err)
	})
	assert.False(t, withIsolated.IsConnected())

	reach := withIsolated.ReachableFrom(0)
	assert.Equal(t, []bool{true, true, true, false}, reach)

	assert.True(t, NewGraph(0).IsConnected())
}
