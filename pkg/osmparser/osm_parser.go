package osmparser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lintang-b-s/osm-separator-tree/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

var ErrNoRoads = errors.New("no accepted road ways")

type osmWay struct {
	nodes []int64
	lanes int
}

// OsmParser turns the road network of an osm pbf extract into an undirected capacity graph.
// Only way end points and junctions become vertices; the nodes in between are contracted and
// the number of lanes of a way is the capacity of its segments.
type OsmParser struct {
	wayNodeMap map[int64]NodeType
	ways       []osmWay
	nodeIDMap  map[int64]datastructure.Index
	logger     *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodeMap: make(map[int64]NodeType),
		ways:       make([]osmWay, 0),
		nodeIDMap:  make(map[int64]datastructure.Index),
		logger:     logger,
	}
}

func (p *OsmParser) Parse(mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// must not be parallel, ways are scanned in file order
	scanner := osmpbf.New(context.Background(), f, 1)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		p.AddWay(way)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", mapFile, err)
	}

	return p.BuildGraph()
}

// AddWay records an accepted road way and updates the type of each of its nodes.
func (p *OsmParser) AddWay(way *osm.Way) bool {
	if len(way.Nodes) < 2 || !acceptOsmWay(way) {
		return false
	}
	if (len(p.ways)+1)%LOG_WAY_INTERVAL == 0 {
		p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", len(p.ways)+1)
	}

	nodes := make([]int64, 0, len(way.Nodes))
	for i, node := range way.Nodes {
		id := int64(node.ID)
		nodes = append(nodes, id)
		if _, ok := p.wayNodeMap[id]; !ok {
			if i == 0 || i == len(way.Nodes)-1 {
				p.wayNodeMap[id] = END_NODE
			} else {
				p.wayNodeMap[id] = BETWEEN_NODE
			}
		} else {
			p.wayNodeMap[id] = JUNCTION_NODE
		}
	}

	p.ways = append(p.ways, osmWay{nodes: nodes, lanes: parseLanes(way.Tags.Find("lanes"))})
	return true
}

// BuildGraph splits every way at its end points and junctions. Segments joining the same pair
// of vertices are merged and their capacities summed, segments that loop back onto their start
// are dropped.
func (p *OsmParser) BuildGraph() (*datastructure.Graph, error) {
	if len(p.ways) == 0 {
		return nil, ErrNoRoads
	}

	for _, way := range p.ways {
		for i, id := range way.nodes {
			if p.isSegmentEnd(id, i, len(way.nodes)) {
				p.vertexID(id)
			}
		}
	}

	g := datastructure.NewGraph(len(p.nodeIDMap))
	merged, loops := 0, 0
	for _, way := range p.ways {
		from := p.nodeIDMap[way.nodes[0]]
		for i := 1; i < len(way.nodes); i++ {
			id := way.nodes[i]
			if !p.isSegmentEnd(id, i, len(way.nodes)) {
				continue
			}
			to := p.nodeIDMap[id]
			if from == to {
				loops++
				continue
			}

			eId, added := g.AddEdge(from, to)
			if !added {
				merged++
			}
			g.SetWeight(eId, g.GetWeight(eId)+way.lanes)
			from = to
		}
	}

	p.logger.Sugar().Infof("osm road graph: %d vertices, %d edges, %d merged segments, %d loops dropped",
		g.NumberOfVertices(), g.NumberOfEdges(), merged, loops)
	return g, nil
}

func (p *OsmParser) isSegmentEnd(id int64, pos, wayLen int) bool {
	return pos == 0 || pos == wayLen-1 || p.wayNodeMap[id] == JUNCTION_NODE
}

func (p *OsmParser) vertexID(id int64) datastructure.Index {
	if v, ok := p.nodeIDMap[id]; ok {
		return v
	}
	v := datastructure.Index(len(p.nodeIDMap))
	p.nodeIDMap[id] = v
	return v
}

// GetOsmNodeID maps a graph vertex back to its osm node id.
func (p *OsmParser) GetOsmNodeID(v datastructure.Index) (int64, bool) {
	for id, u := range p.nodeIDMap {
		if u == v {
			return id, true
		}
	}
	return 0, false
}

func parseLanes(value string) int {
	lanes, err := strconv.Atoi(value)
	if err != nil || lanes < 1 {
		return DEFAULT_LANES
	}
	return lanes
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}
