package datastructure

// FullVertexSet returns every vertex id of g in index order.
func FullVertexSet(g *Graph) []Index {
	return g.GetVertices()
}

// Complement returns fullSet \ subset, keeping fullSet's order.
func Complement(subset, fullSet []Index) []Index {
	inSubset := makeIndexSet(subset)
	comp := make([]Index, 0, len(fullSet))
	for _, u := range fullSet {
		if _, ok := inSubset[u]; !ok {
			comp = append(comp, u)
		}
	}
	return comp
}

func Contains(set []Index, u Index) bool {
	for _, v := range set {
		if v == u {
			return true
		}
	}
	return false
}

func makeIndexSet(ids []Index) map[Index]struct{} {
	set := make(map[Index]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
