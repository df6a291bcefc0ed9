package aoc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

func TestParseGrid(t *testing.T) {
	g := ParseGrid("\n  ab\n\tcd  \n e\n", func(r rune) rune { return r })
	require.Len(t, g, 3)
	assert.Equal(t, Pt{X: 2, Y: 3}, g.Size())
	assert.Equal(t, 'c', g.At(Pt{X: 0, Y: 1}))
	assert.Equal(t, 'e', g.At(Pt{X: 0, Y: 2}))

	_, ok := g.AtOk(Pt{X: 1, Y: 2})
	assert.False(t, ok, "short row")
	for _, p := range []Pt{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, ok := g.AtOk(p)
		assert.False(t, ok, "%v", p)
	}
	v, ok := g.AtOk(Pt{X: 1, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, 'b', v)

	assert.Empty(t, ParseGrid("  \n ", func(r rune) rune { return r }))
}

func TestGridForEach(t *testing.T) {
	g := Grid[int]{{0, 1}, {2, 0}}
	var order []Pt
	var sum int
	g.ForEach(func(p Pt, v int) {
		order = append(order, p)
		sum += v
	})
	assert.Equal(t, []Pt{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, order)
	assert.Equal(t, 3, sum)
}

func TestGridHash(t *testing.T) {
	a := ParseGrid("ab\ncd", func(r rune) rune { return r })
	b := ParseGrid("ab\ncd", func(r rune) rune { return r })
	assert.Equal(t, a.Hash(), b.Hash())
	b[1][1] = 'x'
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestGridHashConcurrent(t *testing.T) {
	g := ParseGrid("ab\ncd", func(r rune) rune { return r })
	want := g.Hash()

	var wg sync.WaitGroup
	got := make([]deephash.Sum, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// A fresh element type each time exercises the hasher cache too.
			if i%2 == 0 {
				ParseGrid("ab", func(r rune) int { return int(r) }).Hash()
			}
			got[i] = g.Hash()
		}(i)
	}
	wg.Wait()
	for _, h := range got {
		assert.Equal(t, want, h)
	}
}

func TestStep(t *testing.T) {
	p := Pt{X: 3, Y: 3}
	assert.Equal(t, Pt{X: 3, Y: 2}, p.Step(Up))
	assert.Equal(t, Pt{X: 4, Y: 3}, p.Step(Right))
	assert.Equal(t, Pt{X: 3, Y: 4}, p.Step(Down))
	assert.Equal(t, Pt{X: 2, Y: 3}, p.Step(Left))

	for _, d := range Directions {
		assert.Equal(t, p, p.Step(d).Step(d.Opposite()), "%v", d)
		got, ok := p.DirTo(p.Step(d))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := p.DirTo(Pt{X: 4, Y: 4})
	assert.False(t, ok)
	_, ok = p.DirTo(p)
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Pt{X: 5, Y: 0}.Compare(Pt{X: 0, Y: 1}))
	assert.Positive(t, Pt{X: 1, Y: 1}.Compare(Pt{X: 0, Y: 1}))
	assert.Zero(t, Pt{X: 1, Y: 1}.Compare(Pt{X: 1, Y: 1}))
	assert.Equal(t, 7, Pt{X: 1, Y: 1}.MDist(Pt{X: -2, Y: 5}))
}
