package aoc

import (
	"cmp"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row major 2D grid; g[y][x]. Rows are not required to be the
// same length.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// AtOk is like At but reports false instead of panicking when p is outside
// the grid. Each row is bounds checked on its own.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// ParseGrid builds a grid from text, one row per line. The text and each
// line are trimmed of surrounding whitespace first. conv maps each rune to
// a cell value.
func ParseGrid[T any](text string, conv func(rune) T) Grid[T] {
	text = strings.TrimSpace(text)
	if text == "" {
		return Grid[T]{}
	}
	lines := strings.Split(text, "\n")
	out := make(Grid[T], 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, conv(r))
		}
		out = append(out, row)
	}
	return out
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a deep hash of the grid contents. It is safe for concurrent use.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		InitMap(&hashers)
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Size returns the width of the first row and the number of rows.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions in clockwise order from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the point one cell away from p in direction d. Up decreases Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// DirTo returns the direction of the immediate neighbor b from p.
// ok is false if b is not orthogonally adjacent to p.
func (p Pt2[T]) DirTo(b Pt2[T]) (d Direction, ok bool) {
	for _, dir := range Directions {
		if p.Step(dir) == b {
			return dir, true
		}
	}
	return 0, false
}

// Compare orders points row major: by Y, then by X.
func (a Pt2[T]) Compare(b Pt2[T]) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
