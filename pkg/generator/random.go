package generator

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/osm-separator-tree/pkg"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"golang.org/x/exp/rand"
)

// SeedFromClock returns a wall clock seed for runs that do not pin SEED.
func SeedFromClock() uint64 {
	return uint64(time.Now().UnixNano())
}

// RandomGraph builds a graph where every vertex tries to add 1 or 2 edges to random distinct
// vertices (giving up after a few attempts on dense graphs). Weights are then drawn uniformly
// from [1, costRange] in edge insertion order. The result is not guaranteed to be connected.
func RandomGraph(numberOfVertices, costRange int, seed uint64) *datastructure.Graph {
	if numberOfVertices < 2 {
		panic(fmt.Sprintf("random graph needs at least 2 vertices, got %d", numberOfVertices))
	}
	if costRange < 1 {
		panic(fmt.Sprintf("cost range must be positive, got %d", costRange))
	}

	r := rand.New(rand.NewSource(seed))
	g := datastructure.NewGraph(numberOfVertices)

	g.ForEachVertices(func(from datastructure.Index) {
		counter := 0
		attempts := 0
		end := r.Intn(pkg.MAX_RANDOM_OUT_EDGES) + 1

		for counter != end && attempts < pkg.MAX_RANDOM_EDGE_TRIALS {
			to := datastructure.Index(r.Intn(numberOfVertices))
			for to == from {
				to = datastructure.Index(r.Intn(numberOfVertices))
			}
			if !g.EdgeExists(from, to) {
				g.AddEdge(from, to)
				counter++
			}
			attempts++
		}
	})

	g.ForEachEdges(func(e *datastructure.Edge) {
		g.SetWeight(e.GetID(), r.Intn(costRange)+1)
	})
	return g
}
