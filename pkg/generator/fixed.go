package generator

import "github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"

type weightedEdge struct {
	u, v   datastructure.Index
	weight int
}

// ten vertex sample network, edges are listed in insertion order
var fixedEdges = []weightedEdge{
	{0, 1, 4}, {0, 2, 1}, {0, 3, 3}, {1, 4, 1}, {1, 3, 6}, {2, 3, 2},
	{3, 5, 4}, {3, 6, 5}, {3, 4, 3}, {3, 7, 6}, {4, 6, 6}, {4, 7, 5},
	{5, 6, 2}, {6, 8, 4}, {6, 7, 3}, {7, 9, 1}, {7, 8, 7}, {8, 9, 8},
}

const FIXED_GRAPH_VERTICES = 10

func FixedGraph() *datastructure.Graph {
	g := datastructure.NewGraph(FIXED_GRAPH_VERTICES)
	for _, e := range fixedEdges {
		eId, _ := g.AddEdge(e.u, e.v)
		g.SetWeight(eId, e.weight)
	}
	return g
}
