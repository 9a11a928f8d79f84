package datastructure

import (
	"container/list"
	"errors"
	"fmt"
)

type Index uint32

var (
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrSelfLoop         = errors.New("self loop not allowed")
	ErrParallelEdge     = errors.New("parallel edge not allowed")
	ErrInvalidWeight    = errors.New("edge weight must be positive")
)

// Edge is an undirected weighted edge. from/to keep the orientation the edge was added with.
type Edge struct {
	id     Index
	from   Index
	to     Index
	weight int
}

func NewEdge(id, from, to Index, weight int) *Edge {
	return &Edge{
		id:     id,
		from:   from,
		to:     to,
		weight: weight,
	}
}

func (e *Edge) GetID() Index {
	return e.id
}

func (e *Edge) GetFrom() Index {
	return e.from
}

func (e *Edge) GetTo() Index {
	return e.to
}

func (e *Edge) GetWeight() int {
	return e.weight
}

// Other returns the endpoint of e that is not u.
func (e *Edge) Other(u Index) Index {
	if e.from == u {
		return e.to
	}
	return e.from
}

// Graph is an undirected graph over dense vertex ids 0..n-1 with positive integer capacities.
// Edges and out-edges of every vertex are enumerated in insertion order.
type Graph struct {
	edges         []*Edge
	adjacencyList [][]Index // edge ids incident to each vertex
	edgeIndex     map[uint64]Index
}

func NewGraph(numberOfVertices int) *Graph {
	adjacencyList := make([][]Index, numberOfVertices)
	for i := range adjacencyList {
		adjacencyList[i] = make([]Index, 0)
	}
	return &Graph{
		edges:         make([]*Edge, 0),
		adjacencyList: adjacencyList,
		edgeIndex:     make(map[uint64]Index),
	}
}

func edgeKey(u, v Index) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(u)<<32 | uint64(v)
}

func (g *Graph) NumberOfVertices() int {
	return len(g.adjacencyList)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) IsValidVertex(u Index) bool {
	return int(u) < len(g.adjacencyList)
}

func (g *Graph) GetVertices() []Index {
	vertices := make([]Index, g.NumberOfVertices())
	for i := range vertices {
		vertices[i] = Index(i)
	}
	return vertices
}

func (g *Graph) ForEachVertices(handle func(u Index)) {
	for u := range g.adjacencyList {
		handle(Index(u))
	}
}

// AddEdge inserts the undirected edge (u,v) with weight 0 and returns its id.
// The bool is false when the edge already exists (the existing id is returned)
// or when u == v, parallel edges and self loops are never stored.
func (g *Graph) AddEdge(u, v Index) (Index, bool) {
	if u == v {
		return 0, false
	}
	if !g.IsValidVertex(u) || !g.IsValidVertex(v) {
		panic(fmt.Sprintf("AddEdge(%d, %d): %v, graph has %d vertices", u, v, ErrVertexOutOfRange, g.NumberOfVertices()))
	}

	if eId, ok := g.edgeIndex[edgeKey(u, v)]; ok {
		return eId, false
	}

	eId := Index(len(g.edges))
	g.edges = append(g.edges, NewEdge(eId, u, v, 0))
	g.adjacencyList[u] = append(g.adjacencyList[u], eId)
	g.adjacencyList[v] = append(g.adjacencyList[v], eId)
	g.edgeIndex[edgeKey(u, v)] = eId
	return eId, true
}

// AddEdgeWithWeight is the checked variant used by graph loaders.
func (g *Graph) AddEdgeWithWeight(u, v Index, weight int) (Index, error) {
	if !g.IsValidVertex(u) || !g.IsValidVertex(v) {
		return 0, fmt.Errorf("edge (%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return 0, fmt.Errorf("edge (%d,%d): %w", u, v, ErrSelfLoop)
	}
	if weight <= 0 {
		return 0, fmt.Errorf("edge (%d,%d) weight %d: %w", u, v, weight, ErrInvalidWeight)
	}
	eId, added := g.AddEdge(u, v)
	if !added {
		return 0, fmt.Errorf("edge (%d,%d): %w", u, v, ErrParallelEdge)
	}
	g.SetWeight(eId, weight)
	return eId, nil
}

func (g *Graph) EdgeExists(u, v Index) bool {
	_, ok := g.edgeIndex[edgeKey(u, v)]
	return ok
}

func (g *Graph) FindEdge(u, v Index) (Index, bool) {
	eId, ok := g.edgeIndex[edgeKey(u, v)]
	return eId, ok
}

func (g *Graph) GetEdge(e Index) *Edge {
	return g.edges[e]
}

func (g *Graph) GetWeight(e Index) int {
	return g.edges[e].weight
}

func (g *Graph) SetWeight(e Index, weight int) {
	g.edges[e].weight = weight
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.adjacencyList[u])
}

// ForOutEdgesOfVertex calls handle for each edge incident to u, head being the opposite endpoint.
func (g *Graph) ForOutEdgesOfVertex(u Index, handle func(e *Edge, head Index)) {
	for _, eId := range g.adjacencyList[u] {
		e := g.edges[eId]
		handle(e, e.Other(u))
	}
}

func (g *Graph) ForEachEdges(handle func(e *Edge)) {
	for _, e := range g.edges {
		handle(e)
	}
}

func (g *Graph) GetEdges() []*Edge {
	return g.edges
}

// TotalIncidentWeight is the weight of the singleton cut {u}.
func (g *Graph) TotalIncidentWeight(u Index) int {
	sum := 0
	for _, eId := range g.adjacencyList[u] {
		sum += g.edges[eId].weight
	}
	return sum
}

func (g *Graph) TotalWeight() int {
	sum := 0
	for _, e := range g.edges {
		sum += e.weight
	}
	return sum
}

// ReachableFrom returns a bfs visited flag for every vertex starting at source.
func (g *Graph) ReachableFrom(source Index) []bool {
	visited := make([]bool, g.NumberOfVertices())
	queue := list.New()
	queue.PushBack(source)
	visited[source] = true

	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(Index)
		g.ForOutEdgesOfVertex(u, func(e *Edge, head Index) {
			if !visited[head] {
				visited[head] = true
				queue.PushBack(head)
			}
		})
	}
	return visited
}

func (g *Graph) IsConnected() bool {
	if g.NumberOfVertices() == 0 {
		return true
	}
	for _, ok := range g.ReachableFrom(0) {
		if !ok {
			return false
		}
	}
	return true
}
