package aoc

import (
	"golang.org/x/exp/maps"
)

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Graph is an undirected weighted graph stored as adjacency maps.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

// Neighbors returns the nodes sharing an edge with a, in no particular order.
func (g *Graph[K]) Neighbors(a K) []K {
	return maps.Keys(g.Edges[a])
}

// Degree returns the number of edges at a.
func (g *Graph[K]) Degree(a K) int {
	return len(g.Edges[a])
}

func (g *Graph[K]) HasEdge(a, b K) bool {
	_, ok := g.Edges[a][b]
	return ok
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}
