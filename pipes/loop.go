package pipes

import (
	"errors"
	"fmt"

	aoc "github.com/qthibeault/advent-of-code-2023"
	"tailscale.com/util/set"
)

// ErrMalformedTopology reports that the pipes through the start tile do not
// form a single closed loop.
var ErrMalformedTopology = errors.New("pipes: no closed loop through start")

// TopologyError is returned when the loop walk reaches a tile with nowhere
// left to go.
type TopologyError struct {
	Pos aoc.Pt // tile the walk got stuck on
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("pipes: dead end at row %d, col %d", e.Pos.Y, e.Pos.X)
}

func (e *TopologyError) Unwrap() error { return ErrMalformedTopology }

// Loop returns the tiles of the loop through the start, in walk order,
// beginning with the start. The first step goes to the start's first
// connection in row major order.
func (p *Pipes) Loop() ([]aoc.Pt, error) {
	first := p.Connections(p.start)
	if len(first) == 0 {
		return nil, &TopologyError{Pos: p.start}
	}

	visited := set.Set[aoc.Pt]{}
	visited.Add(p.start)
	path := []aoc.Pt{p.start}

	pos := first[0]
	for pos != p.start {
		visited.Add(pos)
		path = append(path, pos)
		next, ok := p.nextStep(pos, visited)
		if !ok {
			return nil, &TopologyError{Pos: pos}
		}
		pos = next
	}
	return path, nil
}

// nextStep picks the connection of pos that has not been visited yet. When
// there is none, the walk can only close back at the start.
func (p *Pipes) nextStep(pos aoc.Pt, visited set.Set[aoc.Pt]) (aoc.Pt, bool) {
	conns := p.Connections(pos)
	for _, n := range conns {
		if !visited.Contains(n) {
			return n, true
		}
	}
	// Never close straight back through the tile we just left.
	if len(visited) > 2 && p.conns.HasEdge(pos, p.start) {
		return p.start, true
	}
	return aoc.Pt{}, false
}

// LoopSet returns the tiles of the loop through the start.
func (p *Pipes) LoopSet() (set.Set[aoc.Pt], error) {
	path, err := p.Loop()
	if err != nil {
		return nil, err
	}
	s := make(set.Set[aoc.Pt], len(path))
	for _, pos := range path {
		s.Add(pos)
	}
	return s, nil
}

// MaxSteps returns the number of steps along the loop from the start to the
// tile farthest from it.
func (p *Pipes) MaxSteps() (int, error) {
	path, err := p.Loop()
	if err != nil {
		return 0, err
	}
	return len(path) / 2, nil
}
