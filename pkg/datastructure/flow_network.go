package datastructure

// MaxFlowEdge is one arc of the residual network. An undirected edge of weight w becomes
// two arcs with capacity w each, stored at ids 2k and 2k+1 so that id^1 is the reverse arc.
type MaxFlowEdge struct {
	id       int
	u        Index
	v        Index
	capacity int
	flow     int
}

func NewMaxFlowEdge(id int, u, v Index, capacity int) *MaxFlowEdge {
	return &MaxFlowEdge{
		id:       id,
		u:        u,
		v:        v,
		capacity: capacity,
		flow:     0,
	}
}

func (e *MaxFlowEdge) GetID() int {
	return e.id
}

func (e *MaxFlowEdge) GetCapacity() int {
	return e.capacity
}

func (e *MaxFlowEdge) GetFlow() int {
	return e.flow
}

func (e *MaxFlowEdge) GetResidual() int {
	return e.capacity - e.flow
}

func (e *MaxFlowEdge) GetFrom() Index {
	return e.u
}

func (e *MaxFlowEdge) GetTo() Index {
	return e.v
}

func (e *MaxFlowEdge) AddFlow(f int) {
	e.flow += f
}

// FlowNetwork is the residual network used by exact max-flow. level and last are the
// per-vertex Dinic working arrays.
type FlowNetwork struct {
	adjacencyList [][]int
	edgeList      []*MaxFlowEdge
	level         []int
	last          []int
}

func NewFlowNetwork(numberOfVertices int) *FlowNetwork {
	adjacencyList := make([][]int, numberOfVertices)
	for i := range adjacencyList {
		adjacencyList[i] = make([]int, 0)
	}
	return &FlowNetwork{
		adjacencyList: adjacencyList,
		edgeList:      make([]*MaxFlowEdge, 0),
		level:         make([]int, numberOfVertices),
		last:          make([]int, numberOfVertices),
	}
}

// NewFlowNetworkFromGraph copies every undirected edge of g into a residual network.
func NewFlowNetworkFromGraph(g *Graph) *FlowNetwork {
	fn := NewFlowNetwork(g.NumberOfVertices())
	g.ForEachEdges(func(e *Edge) {
		fn.AddEdge(e.GetFrom(), e.GetTo(), e.GetWeight())
	})
	return fn
}

func (fn *FlowNetwork) NumberOfVertices() int {
	return len(fn.adjacencyList)
}

func (fn *FlowNetwork) AddEdge(u, v Index, capacity int) {
	if u == v {
		return
	}

	// undirected graph
	edge := NewMaxFlowEdge(len(fn.edgeList), u, v, capacity)
	fn.edgeList = append(fn.edgeList, edge)
	fn.adjacencyList[u] = append(fn.adjacencyList[u], len(fn.edgeList)-1)

	reverseEdge := NewMaxFlowEdge(len(fn.edgeList), v, u, capacity)
	fn.edgeList = append(fn.edgeList, reverseEdge)
	fn.adjacencyList[v] = append(fn.adjacencyList[v], len(fn.edgeList)-1)
}

func (fn *FlowNetwork) ResetFlow() {
	for _, edge := range fn.edgeList {
		edge.flow = 0
	}
	for i := range fn.level {
		fn.level[i] = 0
		fn.last[i] = 0
	}
}

func (fn *FlowNetwork) GetVertexLevel(u Index) int {
	return fn.level[u]
}

func (fn *FlowNetwork) SetVertexLevel(u Index, level int) {
	fn.level[u] = level
}

func (fn *FlowNetwork) GetLastEdgeIndex(u Index) int {
	return fn.last[u]
}

func (fn *FlowNetwork) SetLastEdgeIndex(u Index, idx int) {
	fn.last[u] = idx
}

func (fn *FlowNetwork) IncrementLastEdgeIndex(u Index) {
	fn.last[u]++
}

func (fn *FlowNetwork) GetVertexEdgesSize(u Index) int {
	return len(fn.adjacencyList[u])
}

func (fn *FlowNetwork) GetEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	return fn.edgeList[fn.adjacencyList[u][idx]]
}

func (fn *FlowNetwork) GetReversedEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	return fn.edgeList[fn.adjacencyList[u][idx]^1]
}

func (fn *FlowNetwork) ForEachVertexEdges(u Index, handle func(e *MaxFlowEdge)) {
	for _, edgeIdx := range fn.adjacencyList[u] {
		handle(fn.edgeList[edgeIdx])
	}
}
