package septree

import (
	"container/list"
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
)

var (
	ErrInvalidTree         = errors.New("invalid separator tree")
	ErrOutOfOrderInsertion = errors.New("vertices must be attached in increasing index order")
)

// SeparatorTree is a spanning tree over the vertices of the input graph. The weight of every
// tree edge is the cut value estimated between its endpoints when the edge was created.
// Vertex 0 is the root and is a member from the start.
type SeparatorTree struct {
	tree     *datastructure.Graph
	attached int // vertices 0..attached-1 are tree members
}

func NewSeparatorTree(numberOfVertices int) *SeparatorTree {
	return &SeparatorTree{
		tree:     datastructure.NewGraph(numberOfVertices),
		attached: 1,
	}
}

func (st *SeparatorTree) GetGraph() *datastructure.Graph {
	return st.tree
}

func (st *SeparatorTree) NumberOfVertices() int {
	return st.tree.NumberOfVertices()
}

func (st *SeparatorTree) NumberOfEdges() int {
	return st.tree.NumberOfEdges()
}

func (st *SeparatorTree) NumberOfAttached() int {
	return st.attached
}

func (st *SeparatorTree) IsMember(u datastructure.Index) bool {
	return int(u) < st.attached
}

func (st *SeparatorTree) GetOutDegree(u datastructure.Index) int {
	return st.tree.GetOutDegree(u)
}

func (st *SeparatorTree) ForEachEdges(handle func(e *datastructure.Edge)) {
	st.tree.ForEachEdges(handle)
}

// attach adds the tree edge (p, anchor). p must be the next vertex in index order.
func (st *SeparatorTree) attach(p, anchor datastructure.Index, weight int) error {
	if int(p) != st.attached {
		return fmt.Errorf("attach %d, expected %d: %w", p, st.attached, ErrOutOfOrderInsertion)
	}
	if !st.IsMember(anchor) {
		return fmt.Errorf("anchor %d of %d is not a tree member: %w", anchor, p, ErrInvalidTree)
	}
	eId, added := st.tree.AddEdge(p, anchor)
	if !added {
		return fmt.Errorf("edge (%d,%d) rejected: %w", p, anchor, ErrInvalidTree)
	}
	st.tree.SetWeight(eId, weight)
	st.attached++
	return nil
}

// Validate checks the finished tree: n-1 edges, connected and acyclic.
func (st *SeparatorTree) Validate() error {
	n := st.NumberOfVertices()
	if n == 0 {
		return nil
	}
	if st.NumberOfEdges() != n-1 {
		return fmt.Errorf("%d edges for %d vertices: %w", st.NumberOfEdges(), n, ErrInvalidTree)
	}

	uf := newUnionFind(n)
	var cycleErr error
	st.tree.ForEachEdges(func(e *datastructure.Edge) {
		if cycleErr == nil && !uf.union(e.GetFrom(), e.GetTo()) {
			cycleErr = fmt.Errorf("edge (%d,%d) closes a cycle: %w", e.GetFrom(), e.GetTo(), ErrInvalidTree)
		}
	})
	if cycleErr != nil {
		return cycleErr
	}

	if !st.tree.IsConnected() {
		return fmt.Errorf("tree is not connected: %w", ErrInvalidTree)
	}
	return nil
}

// pathMinCutsFrom returns, for every vertex v, the lightest edge weight on the tree path u..v.
// Unreachable vertices get 0 and u itself gets math.MaxInt.
func (st *SeparatorTree) pathMinCutsFrom(u datastructure.Index) []int {
	n := st.NumberOfVertices()
	bottleneck := make([]int, n)
	visited := make([]bool, n)

	queue := list.New()
	queue.PushBack(u)
	visited[u] = true
	bottleneck[u] = math.MaxInt

	for queue.Len() > 0 {
		x := queue.Remove(queue.Front()).(datastructure.Index)
		st.tree.ForOutEdgesOfVertex(x, func(e *datastructure.Edge, head datastructure.Index) {
			if visited[head] {
				return
			}
			visited[head] = true
			bottleneck[head] = bottleneck[x]
			if e.GetWeight() < bottleneck[head] {
				bottleneck[head] = e.GetWeight()
			}
			queue.PushBack(head)
		})
	}
	return bottleneck
}

// PathMinCut is the classic cut tree query: the lightest edge on the tree path between u and v.
func (st *SeparatorTree) PathMinCut(u, v datastructure.Index) int {
	if u == v {
		panic(fmt.Sprintf("PathMinCut: u and v must differ, got %d", u))
	}
	return st.pathMinCutsFrom(u)[v]
}

type unionFind struct {
	parent []datastructure.Index
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]datastructure.Index, n),
		rank:   make([]uint8, n),
	}
	for i := range uf.parent {
		uf.parent[i] = datastructure.Index(i)
	}
	return uf
}

func (uf *unionFind) find(u datastructure.Index) datastructure.Index {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}
	return u
}

// union returns false when u and v were already in the same set.
func (uf *unionFind) union(u, v datastructure.Index) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
	return true
}
