package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/graphbench/ugg/internal/gen"
)

// ReadVertices parses a .v file: one vertex ID per line.
func ReadVertices(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vertex file: %w", err)
	}
	defer f.Close()

	var ids []uint64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		id, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid vertex ID %q", path, line, text)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vertex file: %w", err)
	}
	return ids, nil
}

// ReadEdges parses a .e file: "<source> <destination>" per line.
func ReadEdges(path string) ([]gen.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge file: %w", err)
	}
	defer f.Close()

	var edges []gen.Edge
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected two endpoints, got %q", path, line, text)
		}
		src, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid source %q", path, line, fields[0])
		}
		dst, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid destination %q", path, line, fields[1])
		}
		edges = append(edges, gen.Edge{Source: src, Destination: dst})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edge file: %w", err)
	}
	return edges, nil
}
