package pipes

import (
	"slices"
	"unicode"

	aoc "github.com/qthibeault/advent-of-code-2023"
)

// Tile is a single cell of the pipe map.
type Tile byte

const (
	Vertical   Tile = '|'
	Horizontal Tile = '-'
	NorthEast  Tile = 'L'
	NorthWest  Tile = 'J'
	SouthWest  Tile = '7'
	SouthEast  Tile = 'F'
	Start      Tile = 'S'
	Ground     Tile = '.'
)

// tileEnds holds the two directions each pipe shape opens towards, sorted.
var tileEnds = map[Tile][2]aoc.Direction{
	Vertical:   {aoc.Up, aoc.Down},
	Horizontal: {aoc.Right, aoc.Left},
	NorthEast:  {aoc.Up, aoc.Right},
	NorthWest:  {aoc.Up, aoc.Left},
	SouthWest:  {aoc.Down, aoc.Left},
	SouthEast:  {aoc.Right, aoc.Down},
}

var tileByEnds = func() map[[2]aoc.Direction]Tile {
	m := make(map[[2]aoc.Direction]Tile, len(tileEnds))
	for t, ends := range tileEnds {
		m[ends] = t
	}
	return m
}()

// parseTile converts a rune from the input into a Tile. Anything that is not
// a pipe or the start marker is ground.
func parseTile(r rune) Tile {
	if r > unicode.MaxASCII {
		return Ground
	}
	t := Tile(r)
	if t == Start || t.IsPipe() {
		return t
	}
	return Ground
}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool {
	_, ok := tileEnds[t]
	return ok
}

// Ends returns the two directions t connects to. ok is false for tiles that
// are not pipes, including Start.
func (t Tile) Ends() (ends [2]aoc.Direction, ok bool) {
	ends, ok = tileEnds[t]
	return ends, ok
}

func (t Tile) String() string {
	return string(rune(t))
}

// tileFor returns the pipe shape that opens towards exactly dirs. It returns
// Start when dirs does not describe a pipe.
func tileFor(dirs []aoc.Direction) Tile {
	if len(dirs) != 2 {
		return Start
	}
	key := [2]aoc.Direction{dirs[0], dirs[1]}
	slices.Sort(key[:])
	if t, ok := tileByEnds[key]; ok {
		return t
	}
	return Start
}
