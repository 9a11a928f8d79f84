package mincut

import (
	"container/list"
	"fmt"
	"math"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/lintang-b-s/osm-separator-tree/pkg/util"
)

const INVALID_LEVEL = -1

// DinicMaxFlow computes exact s-t minimum cuts on the weighted residual network of a graph.
type DinicMaxFlow struct {
	network *datastructure.FlowNetwork
	debug   bool
}

func NewDinicMaxFlow(graph *datastructure.Graph, debug bool) *DinicMaxFlow {
	return &DinicMaxFlow{network: datastructure.NewFlowNetworkFromGraph(graph), debug: debug}
}

func (dmf *DinicMaxFlow) bfsLevelGraph(source, target datastructure.Index) bool {
	for u := 0; u < dmf.network.NumberOfVertices(); u++ {
		dmf.network.SetVertexLevel(datastructure.Index(u), INVALID_LEVEL)
	}

	levelQueue := list.New()
	levelQueue.PushBack(source)
	dmf.network.SetVertexLevel(source, 0)

	for levelQueue.Len() > 0 {
		u := levelQueue.Remove(levelQueue.Front()).(datastructure.Index)

		level := dmf.network.GetVertexLevel(u) + 1
		if u == target {
			break
		}

		dmf.network.ForEachVertexEdges(u, func(edge *datastructure.MaxFlowEdge) {
			v := edge.GetTo()
			if edge.GetResidual() > 0 && dmf.network.GetVertexLevel(v) == INVALID_LEVEL {
				dmf.network.SetVertexLevel(v, level)
				levelQueue.PushBack(v)
			}
		})
	}
	return dmf.network.GetVertexLevel(target) != INVALID_LEVEL
}

// dfsAugmentPath pushes one blocking-flow path from nodeId towards t.
func (dmf *DinicMaxFlow) dfsAugmentPath(nodeId, t datastructure.Index, maxFlow int) int {
	if nodeId == t || maxFlow == 0 {
		return maxFlow
	}

	for ; dmf.network.GetLastEdgeIndex(nodeId) < dmf.network.GetVertexEdgesSize(nodeId); dmf.network.IncrementLastEdgeIndex(nodeId) {
		j := dmf.network.GetLastEdgeIndex(nodeId)
		edge := dmf.network.GetEdgeOfVertex(nodeId, j)
		v := edge.GetTo()
		residual := edge.GetResidual()
		if residual <= 0 || dmf.network.GetVertexLevel(v) != dmf.network.GetVertexLevel(nodeId)+1 {
			continue
		}

		if flow := dmf.dfsAugmentPath(v, t, util.MinInt(residual, maxFlow)); flow > 0 {
			edge.AddFlow(flow)
			dmf.network.GetReversedEdgeOfVertex(nodeId, j).AddFlow(-flow)
			return flow
		}
	}
	dmf.network.SetVertexLevel(nodeId, INVALID_LEVEL)

	return 0
}

func (dmf *DinicMaxFlow) resetCurrentEdges() {
	for i := 0; i < dmf.network.NumberOfVertices(); i++ {
		dmf.network.SetLastEdgeIndex(datastructure.Index(i), 0)
	}
}

// ComputeMinCut returns the exact minimum cut; the frontier is the source side of the
// residual network in vertex order.
func (dmf *DinicMaxFlow) ComputeMinCut(s, t datastructure.Index) *CutResult {
	if s == t {
		panic(fmt.Sprintf("ComputeMinCut: s and t must differ, got %d", s))
	}
	dmf.network.ResetFlow()

	maxFlow := 0
	for {
		dmf.resetCurrentEdges()
		if !dmf.bfsLevelGraph(s, t) {
			break
		}
		for {
			flow := dmf.dfsAugmentPath(s, t, math.MaxInt)
			if flow == 0 {
				break
			}
			maxFlow += flow
		}
	}

	// the last bfs could not reach t, so it ran to completion and labelled the source side
	sourceSide := make([]bool, dmf.network.NumberOfVertices())
	frontier := make([]datastructure.Index, 0)
	for u := 0; u < dmf.network.NumberOfVertices(); u++ {
		if dmf.network.GetVertexLevel(datastructure.Index(u)) != INVALID_LEVEL {
			sourceSide[u] = true
			frontier = append(frontier, datastructure.Index(u))
		}
	}

	if dmf.debug && !dmf.validateResult(sourceSide, s, t, maxFlow) {
		panic(fmt.Sprintf("invalid min cut result between %d and %d: violating capacity constraint, flow conservation, or max-flow min-cut theorem", s, t))
	}
	return NewCutResult(frontier, maxFlow)
}

func (dmf *DinicMaxFlow) MinCutValue(s, t datastructure.Index) (int, error) {
	return dmf.ComputeMinCut(s, t).GetValue(), nil
}

func (dmf *DinicMaxFlow) validateResult(sourceSide []bool, s, t datastructure.Index, maxFlow int) bool {
	// see CLRS section 26.1 & 26.2
	n := dmf.network.NumberOfVertices()
	incomingFlow := make([]int, n)
	outgoingFlow := make([]int, n)
	cutCapacity := 0

	for u := datastructure.Index(0); u < datastructure.Index(n); u++ {
		for i := 0; i < dmf.network.GetVertexEdgesSize(u); i++ {
			edge := dmf.network.GetEdgeOfVertex(u, i)
			v := edge.GetTo()
			flow := edge.GetFlow()

			if flow > edge.GetCapacity() {
				// capacity constraint, flow(u,v) <= c(u,v)
				return false
			}
			if flow > 0 {
				outgoingFlow[u] += flow
				incomingFlow[v] += flow
			}
			if sourceSide[u] && !sourceSide[v] {
				cutCapacity += edge.GetCapacity()
			}
		}
	}

	for u := datastructure.Index(0); u < datastructure.Index(n); u++ {
		// flow conservation for every vertex except s and t
		if u != s && u != t && incomingFlow[u] != outgoingFlow[u] {
			return false
		}
	}

	if outgoingFlow[s]-incomingFlow[s] != maxFlow || incomingFlow[t]-outgoingFlow[t] != maxFlow {
		return false
	}

	// max-flow min-cut theorem
	return cutCapacity == maxFlow
}
