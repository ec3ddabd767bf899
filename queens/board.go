package queens

import (
	"fmt"
	"math/rand"
	"strings"
)

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	copy(c, b)

	return c
}

// String renders the board as N rows of 'Q' and '.' runes.
func (b Board) String() string {
	n := len(b)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b[c] == r {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
			if c < n-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// validateBoard checks the one-queen-per-column invariant bounds:
// non-empty, every row value in [0, n).
func validateBoard(b Board) error {
	if len(b) == 0 {
		return ErrEmptyBoard
	}
	for col, row := range b {
		if row < 0 || row >= len(b) {
			return fmt.Errorf("%w: column %d has row %d, board size %d", ErrRowOutOfRange, col, row, len(b))
		}
	}

	return nil
}

// RandomBoard returns a uniformly random n-column board drawn from rng
// (each column's row chosen independently). A nil rng falls back to the
// default deterministic stream.
//
// Complexity: O(n).
func RandomBoard(n int, rng *rand.Rand) Board {
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}
	b := make(Board, n)
	for col := range b {
		b[col] = r.Intn(n)
	}

	return b
}

// Conflicts counts the unordered queen pairs that attack each other:
// same row, or same diagonal (|Δrow| == |Δcol|). Zero conflicts means a
// valid N-queens solution.
//
// Complexity: O(n²).
func Conflicts(b Board) int {
	n := len(b)
	c := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dr := b[i] - b[j]
			if dr < 0 {
				dr = -dr
			}
			if b[i] == b[j] || dr == j-i {
				c++
			}
		}
	}

	return c
}

// move is one neighbor in the row-reassignment neighborhood: place the
// queen of column col on row row.
type move struct {
	col, row int
}

// forEachNeighbor enumerates the full row-reassignment neighborhood of b —
// every column, every alternative row, N×(N−1) moves — in deterministic
// column-major order, calling fn with the move and the resulting conflict
// count. fn returning true stops the enumeration (first-improvement uses
// this). The scratch board is reused across calls; fn must not retain it.
//
// The neighborhood is deliberately NOT swap-based: row reassignment and
// column swapping induce different search landscapes, and this package
// commits to the former.
//
// Complexity: O(n² · n²) per full scan (n² neighbors, O(n²) count each).
func forEachNeighbor(b Board, fn func(mv move, conflicts int) (stop bool)) {
	n := len(b)
	scratch := b.Clone()
	for col := 0; col < n; col++ {
		orig := scratch[col]
		for row := 0; row < n; row++ {
			if row == orig {
				continue
			}
			scratch[col] = row
			if fn(move{col: col, row: row}, Conflicts(scratch)) {
				scratch[col] = orig

				return
			}
		}
		scratch[col] = orig
	}
}
