package pipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"tailscale.com/util/set"

	aoc "github.com/qthibeault/advent-of-code-2023"
)

func TestContainedTiles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []aoc.Pt
	}{
		{
			name: "simple",
			text: simpleLoop,
			want: []aoc.Pt{rc(2, 2)},
		},
		{
			name: "double-walled",
			text: doubleWalled,
			want: []aoc.Pt{rc(6, 2), rc(6, 3), rc(6, 7), rc(6, 8)},
		},
		{
			name: "squeezed",
			text: squeezed,
			want: []aoc.Pt{rc(6, 2), rc(6, 3), rc(6, 6), rc(6, 7)},
		},
		{
			name: "larger",
			text: larger,
			want: []aoc.Pt{
				rc(3, 14),
				rc(4, 7), rc(4, 8), rc(4, 9),
				rc(5, 7), rc(5, 8),
				rc(6, 6), rc(6, 14),
			},
		},
		{
			name: "junk",
			text: junk,
			want: []aoc.Pt{
				rc(3, 14),
				rc(4, 10), rc(4, 11), rc(4, 12), rc(4, 13),
				rc(5, 11), rc(5, 12), rc(5, 13),
				rc(6, 13), rc(6, 14),
			},
		},
		{
			name: "vertical start",
			text: ".....\n.F-7.\n.S.|.\n.L-J.\n.....",
			want: []aoc.Pt{rc(2, 2)},
		},
		{
			name: "horizontal start",
			text: ".....\n.FS7.\n.|.|.\n.L-J.\n.....",
			want: []aoc.Pt{rc(2, 2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.text)
			got, err := p.ContainedTiles()
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, maps.Keys(got))
		})
	}
}

func TestContainedTilesSkipsClutter(t *testing.T) {
	// The | at row 2, col 3 is not on the loop. Counting it as a crossing
	// would put row 2, col 4 outside.
	p := mustParse(t, `
.......
.S---7.
.|.|.|.
.|...|.
.L---J.
.......
`)
	got, err := p.ContainedTiles()
	require.NoError(t, err)
	assert.ElementsMatch(t, []aoc.Pt{
		rc(2, 2), rc(2, 4),
		rc(3, 2), rc(3, 3), rc(3, 4),
	}, maps.Keys(got))
	assert.False(t, got.Contains(rc(2, 3)))

	// The noisy loops enclose only a stray pipe each.
	for _, text := range []string{noisyLoop, noisyComplexLoop} {
		p = mustParse(t, text)
		got, err = p.ContainedTiles()
		require.NoError(t, err)
		assert.Zero(t, got.Len())
	}
}

func TestContainedTilesDisjointFromLoop(t *testing.T) {
	for name, text := range wellFormed {
		t.Run(name, func(t *testing.T) {
			p := mustParse(t, text)
			loop, err := p.LoopSet()
			require.NoError(t, err)
			in, err := p.ContainedTiles()
			require.NoError(t, err)
			for pos := range in {
				assert.False(t, loop.Contains(pos), "%v", pos)
				assert.False(t, p.Grid().At(pos).IsPipe(), "%v", pos)
			}
		})
	}
}

// enclosedClutter counts pipe tiles that are not on the loop but lie inside
// it, found with a scan that treats them as ground.
func enclosedClutter(t *testing.T, p *Pipes, loop set.Set[aoc.Pt]) int {
	t.Helper()
	var n int
	for y, row := range p.Grid() {
		s := outside
		for x, tile := range row {
			pos := aoc.Pt{X: x, Y: y}
			if loop.Contains(pos) {
				s, _ = s.next(p.tileAt(pos))
				continue
			}
			if tile.IsPipe() && s.inside() {
				n++
			}
		}
	}
	return n
}

func TestContainedTilesMatchesPicksTheorem(t *testing.T) {
	wantClutter := map[string]int{
		"noisy":         1,
		"noisy-complex": 1,
	}
	for name, text := range wellFormed {
		t.Run(name, func(t *testing.T) {
			p := mustParse(t, text)
			path, err := p.Loop()
			require.NoError(t, err)
			loop, err := p.LoopSet()
			require.NoError(t, err)
			in, err := p.ContainedTiles()
			require.NoError(t, err)

			clutter := enclosedClutter(t, p, loop)
			if want, ok := wantClutter[name]; ok {
				assert.Equal(t, want, clutter)
			}
			polygon := append(path, path[0])
			assert.Equal(t, aoc.PolygonInteriorPoints(polygon), in.Len()+clutter)
		})
	}
}

func TestContainedTilesDoesNotModifyGrid(t *testing.T) {
	p := mustParse(t, junk)
	before := p.Grid().Hash()
	_, err := p.ContainedTiles()
	require.NoError(t, err)
	_, err = p.MaxSteps()
	require.NoError(t, err)
	assert.Equal(t, before, p.Grid().Hash())
	assert.Equal(t, Start, p.Grid().At(p.Start()))
}
