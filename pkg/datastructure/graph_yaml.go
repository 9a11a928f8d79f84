package datastructure

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlEdge struct {
	From   Index `yaml:"from"`
	To     Index `yaml:"to"`
	Weight int   `yaml:"weight"`
}

type yamlGraph struct {
	Vertices int        `yaml:"vertices"`
	Edges    []yamlEdge `yaml:"edges"`
}

// ReadGraphYAML loads an edge list of the form
//
//	vertices: 3
//	edges:
//	  - {from: 0, to: 1, weight: 1}
func ReadGraphYAML(filename string) (*Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseGraphYAML(data)
}

func ParseGraphYAML(data []byte) (*Graph, error) {
	var yg yamlGraph
	if err := yaml.Unmarshal(data, &yg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml graph: %w", err)
	}
	if yg.Vertices < 0 {
		return nil, fmt.Errorf("invalid number of vertices %d", yg.Vertices)
	}

	g := NewGraph(yg.Vertices)
	for _, e := range yg.Edges {
		if _, err := g.AddEdgeWithWeight(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WriteGraphYAML writes g in the format read by ReadGraphYAML.
func (g *Graph) WriteGraphYAML(filename string) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func (g *Graph) MarshalYAML() (interface{}, error) {
	yg := yamlGraph{
		Vertices: g.NumberOfVertices(),
		Edges:    make([]yamlEdge, 0, g.NumberOfEdges()),
	}
	for _, e := range g.edges {
		yg.Edges = append(yg.Edges, yamlEdge{From: e.from, To: e.to, Weight: e.weight})
	}
	return yg, nil
}
