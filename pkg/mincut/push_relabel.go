package mincut

import (
	"fmt"

	"github.com/kalexmills/flownet"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
)

// PushRelabelMinCut computes exact min cut values with the push-relabel solver of flownet.
type PushRelabelMinCut struct {
	graph *datastructure.Graph
}

func NewPushRelabelMinCut(graph *datastructure.Graph) *PushRelabelMinCut {
	return &PushRelabelMinCut{graph: graph}
}

// MinCutValue builds a directed network over the component of s. flownet keeps no residual
// arc for a pair of opposite arcs, so every undirected edge (u,v) is split through two
// auxiliary nodes: u -> a -> v and v -> b -> u, all with the edge weight as capacity.
func (pr *PushRelabelMinCut) MinCutValue(s, t datastructure.Index) (int, error) {
	if s == t {
		panic(fmt.Sprintf("MinCutValue: s and t must differ, got %d", s))
	}
	reachable := pr.graph.ReachableFrom(s)
	if !reachable[t] {
		return 0, nil
	}

	// flownet wires vertices without in/out arcs to its own source and sink, so only the
	// component of s is copied into the network.
	localId := make(map[datastructure.Index]int)
	for u, ok := range reachable {
		if ok {
			localId[datastructure.Index(u)] = len(localId)
		}
	}
	edges := make([]*datastructure.Edge, 0)
	pr.graph.ForEachEdges(func(e *datastructure.Edge) {
		if reachable[e.GetFrom()] {
			edges = append(edges, e)
		}
	})

	numVertices := len(localId)
	fn := flownet.NewFlowNetwork(numVertices + 2*len(edges))
	for k, e := range edges {
		u, v := localId[e.GetFrom()], localId[e.GetTo()]
		a, b := numVertices+2*k, numVertices+2*k+1
		w := int64(e.GetWeight())
		for _, arc := range [4][2]int{{u, a}, {a, v}, {v, b}, {b, u}} {
			if err := fn.AddEdge(arc[0], arc[1], w); err != nil {
				return 0, fmt.Errorf("edge (%d,%d): %w", e.GetFrom(), e.GetTo(), err)
			}
		}
	}

	inf := int64(pr.graph.TotalWeight()) + 1
	if err := fn.AddEdge(flownet.Source, localId[s], inf); err != nil {
		return 0, err
	}
	if err := fn.AddEdge(localId[t], flownet.Sink, inf); err != nil {
		return 0, err
	}

	fn.PushRelabel()
	return int(fn.Outflow()), nil
}
