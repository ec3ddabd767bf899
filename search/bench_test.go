package search_test

import (
	"strings"
	"testing"

	"github.com/quistella/amaze/heuristic"
	"github.com/quistella/amaze/maze"
	"github.com/quistella/amaze/search"
)

// benchGrid builds an open n×n maze with S in one corner and G in the
// opposite one.
func benchGrid(b *testing.B, n int) *maze.Grid {
	b.Helper()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == n-1 && c == n-1:
				sb.WriteByte('G')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	g, err := maze.ParseGrid(strings.NewReader(sb.String()))
	if err != nil {
		b.Fatalf("ParseGrid: %v", err)
	}

	return g
}

func BenchmarkBFS_Open50(b *testing.B) {
	g := benchGrid(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BFS(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS_Open50(b *testing.B) {
	g := benchGrid(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.DFS(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar_Open50(b *testing.B) {
	g := benchGrid(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar(g, heuristic.Manhattan); err != nil {
			b.Fatal(err)
		}
	}
}
