package datastructure

import (
	"cmp"
	"slices"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
)

// StronglyConnectedComponents runs kosaraju's algorithm over the intersections, respecting one-way edges.
// components are sorted by size, largest first. node ids inside a component are ascending.
func (g *Graph) StronglyConnectedComponents() [][]uint64 {
	vertices := g.Intersections()

	order := make([]uint64, 0, len(vertices))
	visited := make(map[uint64]bool, len(vertices))
	for _, v := range vertices {
		if !visited[v] {
			g.dfs(v, &order, visited, false)
		}
	}

	order = util.ReverseG(order)

	// reset visited
	visited = make(map[uint64]bool, len(vertices))
	components := make([][]uint64, 0, 10)
	for _, v := range order {
		if !visited[v] {
			component := make([]uint64, 0, 10)
			g.dfs(v, &component, visited, true)
			slices.Sort(component)
			components = append(components, component)
		}
	}

	slices.SortFunc(components, func(a, b []uint64) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return cmp.Compare(a[0], b[0])
	})
	return components
}

func (g *Graph) dfs(v uint64, output *[]uint64, visited map[uint64]bool, reversed bool) {
	visited[v] = true

	for _, edgeID := range g.nodes[v].edges {
		e := g.edges[edgeID]
		w, ok := e.Other(v)
		if !ok || w == v || visited[w] {
			continue
		}
		if !reversed && !e.TraversableFrom(v) {
			continue
		}
		// for reversed dfs, follow edges that lead from w into v
		if reversed && !e.TraversableFrom(w) {
			continue
		}
		g.dfs(w, output, visited, reversed)
	}

	*output = append(*output, v)
}
