package pipes

import (
	aoc "github.com/qthibeault/advent-of-code-2023"
	"tailscale.com/util/set"
)

// ContainedTiles returns the tiles strictly inside the loop.
//
// Each row is scanned left to right, flipping between outside and inside
// at every crossing of the loop. Pipes that are not part of the loop are
// ignored: they never flip the scan and are never reported as contained.
func (p *Pipes) ContainedTiles() (set.Set[aoc.Pt], error) {
	loop, err := p.LoopSet()
	if err != nil {
		return nil, err
	}

	contained := set.Set[aoc.Pt]{}
	for y, row := range p.grid {
		s := outside
		for x := range row {
			pos := aoc.Pt{X: x, Y: y}
			if loop.Contains(pos) {
				s, _ = s.next(p.tileAt(pos))
				continue
			}
			if t := row[x]; t.IsPipe() || t == Start {
				continue
			}
			if s.inside() {
				contained.Add(pos)
			}
		}
	}
	return contained, nil
}
