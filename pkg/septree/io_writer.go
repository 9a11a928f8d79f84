package septree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
)

type ReportEdge struct {
	From   datastructure.Index `json:"from"`
	To     datastructure.Index `json:"to"`
	Weight int                 `json:"weight"`
}

// Report is the json summary of one build.
type Report struct {
	Vertices       int                `json:"vertices"`
	Edges          []ReportEdge       `json:"edges"`
	ElapsedSeconds float64            `json:"elapsedSeconds"`
	Pairs          []PairCut          `json:"pairs,omitempty"`
	Verification   []EdgeVerification `json:"verification,omitempty"`
}

func (st *SeparatorTree) NewReport(elapsedSeconds float64) *Report {
	edges := make([]ReportEdge, 0, st.NumberOfEdges())
	st.ForEachEdges(func(e *datastructure.Edge) {
		edges = append(edges, ReportEdge{From: e.GetFrom(), To: e.GetTo(), Weight: e.GetWeight()})
	})
	return &Report{
		Vertices:       st.NumberOfVertices(),
		Edges:          edges,
		ElapsedSeconds: elapsedSeconds,
	}
}

func WriteReport(filename string, report *Report) error {
	buf, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}

func ReadReport(filename string) (*Report, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	report := &Report{}
	if err := sonic.ConfigStd.Unmarshal(buf, report); err != nil {
		return nil, err
	}
	return report, nil
}

// WriteTree stores the tree edges as a yaml edge list when filename ends in .yaml or .yml,
// otherwise in the bzip2 graph format read by datastructure.ReadGraph.
func (st *SeparatorTree) WriteTree(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return st.tree.WriteGraphYAML(filename)
	default:
		return st.tree.WriteGraph(filename)
	}
}
