package mincut

import "github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"

// CutResult is a separating cut found by an estimator: the source side frontier and its weight.
type CutResult struct {
	frontier []datastructure.Index // reconstructed chain first, expansion root last
	value    int
}

func NewCutResult(frontier []datastructure.Index, value int) *CutResult {
	return &CutResult{
		frontier: frontier,
		value:    value,
	}
}

func (c *CutResult) GetFrontier() []datastructure.Index {
	return c.frontier
}

func (c *CutResult) GetValue() int {
	return c.value
}

func (c *CutResult) Size() int {
	return len(c.frontier)
}

func (c *CutResult) Contains(u datastructure.Index) bool {
	return datastructure.Contains(c.frontier, u)
}
