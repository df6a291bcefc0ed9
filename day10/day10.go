// Command day10 solves the pipe maze puzzle.
package main

import (
	_ "embed"

	aoc "github.com/qthibeault/advent-of-code-2023"
	"github.com/qthibeault/advent-of-code-2023/pipes"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed day10.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) parse() *pipes.Pipes {
	return aoc.MustGet(pipes.Parse(s.InputString()))
}

/*
want=8

7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
*/
func (s solver) D10p1() any {
	return aoc.MustGet(s.parse().MaxSteps())
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	p := s.parse()
	tiles := aoc.MustGet(p.ContainedTiles())
	s.Debugf("start %v is %v, %d tiles contained", p.Start(), p.StartTile(), tiles.Len())
	return tiles.Len()
}
