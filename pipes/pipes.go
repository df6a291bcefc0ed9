// Package pipes solves the pipe maze puzzle: it finds the single closed loop
// of pipes running through the start tile and the tiles it encloses.
//
// A map looks like:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// Starting at S, the reachable pipes form a loop of eight tiles, the
// farthest of which is four steps away. One tile is enclosed.
package pipes

import (
	"errors"
	"slices"

	aoc "github.com/qthibeault/advent-of-code-2023"
)

// ErrMissingStart is returned by Parse when the map has no start tile.
var ErrMissingStart = errors.New("pipes: no start tile in map")

// Pipes is a parsed pipe map. It is immutable once returned by Parse.
type Pipes struct {
	grid      aoc.Grid[Tile]
	start     aoc.Pt
	startTile Tile

	// conns holds a node for every pipe tile and the start, and an edge
	// between two tiles that open towards each other. The start is joined
	// to every pipe that opens towards it.
	conns aoc.Graph[aoc.Pt]
}

// Parse reads a pipe map. Surrounding whitespace on the text and on each
// line is ignored. Rows are assumed to be the same length.
func Parse(text string) (*Pipes, error) {
	p := &Pipes{
		grid: aoc.ParseGrid(text, parseTile),
	}

	// First pass: where every pipe points. The last start marker wins.
	ends := make(map[aoc.Pt][2]aoc.Pt)
	foundStart := false
	p.grid.ForEach(func(pos aoc.Pt, t Tile) {
		if t == Start {
			p.start = pos
			foundStart = true
			return
		}
		if dirs, ok := t.Ends(); ok {
			ends[pos] = [2]aoc.Pt{pos.Step(dirs[0]), pos.Step(dirs[1])}
		}
	})
	if !foundStart {
		return nil, ErrMissingStart
	}

	// Second pass: keep only connections declared from both sides.
	for pos, e := range ends {
		p.conns.AddNode(pos)
		for _, other := range e {
			if oe, ok := ends[other]; ok && (oe[0] == pos || oe[1] == pos) {
				p.conns.AddEdge(pos, other, 1)
			}
		}
	}

	// The start's shape is unknown, so it takes every pipe that points at it.
	p.conns.AddNode(p.start)
	var startDirs []aoc.Direction
	for _, d := range aoc.Directions {
		n := p.start.Step(d)
		t, ok := p.grid.AtOk(n)
		if !ok {
			continue
		}
		if dirs, ok := t.Ends(); ok && slices.Contains(dirs[:], d.Opposite()) {
			p.conns.AddEdge(p.start, n, 1)
			startDirs = append(startDirs, d)
		}
	}
	p.startTile = tileFor(startDirs)
	return p, nil
}

// Start returns the position of the start tile.
func (p *Pipes) Start() aoc.Pt { return p.start }

// StartTile returns the pipe shape the start tile stands in for, derived
// from the pipes that connect to it. It is Start if the start does not
// connect to exactly two pipes.
func (p *Pipes) StartTile() Tile { return p.startTile }

// Grid returns the parsed map. The caller must not modify it.
func (p *Pipes) Grid() aoc.Grid[Tile] { return p.grid }

// Graph returns a copy of the connection graph between pipe tiles.
func (p *Pipes) Graph() *aoc.Graph[aoc.Pt] { return p.conns.Clone() }

// Connections returns the tiles connected to pos, in row major order.
func (p *Pipes) Connections(pos aoc.Pt) []aoc.Pt {
	ns := p.conns.Neighbors(pos)
	slices.SortFunc(ns, aoc.Pt.Compare)
	return ns
}

// tileAt returns the tile at pos, with the start replaced by its shape.
func (p *Pipes) tileAt(pos aoc.Pt) Tile {
	t := p.grid.At(pos)
	if t == Start && pos == p.start {
		return p.startTile
	}
	return t
}
