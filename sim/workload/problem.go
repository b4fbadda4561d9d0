package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Problem is a single fixed packing instance read from a file.
type Problem struct {
	Capacity int
	Lanes    int
	Items    []int
}

// LoadProblem reads a problem file: the first line is the lane capacity,
// the second the number of lanes, then one item length per line.
// Blank lines are ignored.
func LoadProblem(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening problem file: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := ParseProblem(f)
	if err != nil {
		return nil, fmt.Errorf("parsing problem file %s: %w", path, err)
	}
	return p, nil
}

// ParseProblem parses the problem format described on LoadProblem.
func ParseProblem(r io.Reader) (*Problem, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", lineNo, line)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("expected capacity and lane count, got %d values", len(values))
	}

	p := &Problem{Capacity: values[0], Lanes: values[1], Items: values[2:]}
	if p.Capacity < 0 {
		return nil, fmt.Errorf("capacity must be non-negative, got %d", p.Capacity)
	}
	if p.Lanes <= 0 {
		return nil, fmt.Errorf("lane count must be positive, got %d", p.Lanes)
	}
	for i, item := range p.Items {
		if item <= 0 {
			return nil, fmt.Errorf("item %d: length must be positive, got %d", i, item)
		}
	}
	return p, nil
}

// TotalLength returns the sum of all item lengths.
func (p *Problem) TotalLength() int {
	total := 0
	for _, item := range p.Items {
		total += item
	}
	return total
}
