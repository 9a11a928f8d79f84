package mincut

import "github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"

// nodeScratch is the per call working memory of the local estimator. It is never shared
// between calls, so concurrent estimates on a read-only graph are safe.
type nodeScratch struct {
	pred    []datastructure.Index
	visited []bool
	touched []datastructure.Index // vertices marked since the last reset
	s, t    datastructure.Index
}

func newNodeScratch(numberOfVertices int, s, t datastructure.Index) *nodeScratch {
	sc := &nodeScratch{
		pred:    make([]datastructure.Index, numberOfVertices),
		visited: make([]bool, numberOfVertices),
		touched: make([]datastructure.Index, 0),
		s:       s,
		t:       t,
	}
	sc.visited[s] = true
	sc.visited[t] = true
	return sc
}

func (sc *nodeScratch) isVisited(u datastructure.Index) bool {
	return sc.visited[u]
}

func (sc *nodeScratch) visit(u datastructure.Index) {
	if !sc.visited[u] {
		sc.visited[u] = true
		sc.touched = append(sc.touched, u)
	}
}

func (sc *nodeScratch) setPred(u, p datastructure.Index) {
	sc.pred[u] = p
}

func (sc *nodeScratch) getPred(u datastructure.Index) datastructure.Index {
	return sc.pred[u]
}

// reset clears the visited marks of everything except the two cut endpoints.
func (sc *nodeScratch) reset() {
	for _, u := range sc.touched {
		if u != sc.s && u != sc.t {
			sc.visited[u] = false
		}
	}
	sc.touched = sc.touched[:0]
}

// pathToRoot returns from, pred[from], ... up to and including root.
func (sc *nodeScratch) pathToRoot(from, root datastructure.Index) []datastructure.Index {
	path := []datastructure.Index{from}
	for u := from; u != root; {
		u = sc.pred[u]
		path = append(path, u)
	}
	return path
}

// onPath reports whether u lies on the predecessor chain from..root.
func (sc *nodeScratch) onPath(u, from, root datastructure.Index) bool {
	for v := from; ; v = sc.pred[v] {
		if v == u {
			return true
		}
		if v == root {
			return false
		}
	}
}
