package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"go.uber.org/multierr"
)

// WriteGraph writes g as bzip2 compressed text: a "n m" header followed by one "u v w" line per edge.
func (g *Graph) WriteGraph(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(bz))

	return g.WriteText(bz)
}

func (g *Graph) WriteText(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())
	for _, e := range g.edges {
		fmt.Fprintf(w, "%d %d %d\n", e.from, e.to, e.weight)
	}

	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return ReadText(bz)
}

func ReadText(in io.Reader) (*Graph, error) {
	br := bufio.NewReader(in)

	readLine := func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) || len(line) == 0 {
				return "", err
			}
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("expected 2 header fields, got %d", len(tokens))
	}
	numVertices, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("parse number of vertices: %w", err)
	}
	numEdges, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("parse number of edges: %w", err)
	}
	if numVertices < 0 || numEdges < 0 {
		return nil, fmt.Errorf("invalid header %q", line)
	}

	g := NewGraph(numVertices)
	for i := 0; i < numEdges; i++ {
		line, err := readLine()
		if err != nil {
			return nil, fmt.Errorf("read edge %d: %w", i, err)
		}
		u, v, w, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("parse edge %d: %w", i, err)
		}
		if _, err := g.AddEdgeWithWeight(u, v, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func parseEdge(line string) (Index, Index, int, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(tokens))
	}
	u, err := parseIndex(tokens[0])
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := parseIndex(tokens[1])
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := strconv.Atoi(tokens[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return u, v, w, nil
}

func parseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(u), nil
}
