// Package board implements the letter grid: a dense N×N arrangement of
// tiles with a precomputed 8-adjacency table and path scoring.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gridrush/gridrush/tiles"
)

// ErrInvalidBoard is returned for malformed construction input: wrong tile
// count, unrecognized letter, or unrecognized bonus. Fatal, never retried.
var ErrInvalidBoard = errors.New("invalid board")

// ErrOutOfBounds is returned when a position outside [0,N)×[0,N) is
// requested. Given correct adjacency logic this is unreachable; hitting it
// means an invariant was violated somewhere upstream.
var ErrOutOfBounds = errors.New("position out of bounds")

// neighbour offsets, 8-directional.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// A Grid owns exactly N² tiles in row-major order. The adjacency table maps
// each linear cell index to the linear indexes of its neighbours; it is
// built once at construction so the search never redoes coordinate math.
type Grid struct {
	n         int
	squares   []*tiles.Tile
	adjacency [][]int
}

// NewGrid builds an n×n grid from exactly n² (letter, bonus) pairs in
// row-major order.
func NewGrid(n int, specs []tiles.Spec) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidBoard, n)
	}
	if len(specs) != n*n {
		return nil, fmt.Errorf("%w: expected %d tiles for a %d×%d grid, got %d",
			ErrInvalidBoard, n*n, n, n, len(specs))
	}
	g := &Grid{
		n:       n,
		squares: make([]*tiles.Tile, n*n),
	}
	for i, spec := range specs {
		t, err := tiles.New(spec.Letter, spec.Bonus)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
		}
		if err := t.Place(tiles.Pos{Row: i / n, Col: i % n}); err != nil {
			return nil, err
		}
		g.squares[i] = t
	}
	g.adjacency = buildAdjacency(n)
	log.Debug().Int("size", n).Msg("built-grid")
	return g, nil
}

// buildAdjacency precomputes, for each linear cell index, the linear
// indexes of every cell within Chebyshev distance 1.
func buildAdjacency(n int) [][]int {
	adj := make([][]int, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			ns := make([]int, 0, 8)
			for _, off := range offsets {
				r, c := row+off[0], col+off[1]
				if r < 0 || r >= n || c < 0 || c >= n {
					continue
				}
				ns = append(ns, r*n+c)
			}
			adj[idx] = ns
		}
	}
	return adj
}

// Size returns N, the side length.
func (g *Grid) Size() int {
	return g.n
}

// NumCells returns N².
func (g *Grid) NumCells() int {
	return g.n * g.n
}

// TileAt returns the tile at p.
func (g *Grid) TileAt(p tiles.Pos) (*tiles.Tile, error) {
	if p.Row < 0 || p.Row >= g.n || p.Col < 0 || p.Col >= g.n {
		return nil, fmt.Errorf("%w: %v on a %d×%d grid", ErrOutOfBounds, p, g.n, g.n)
	}
	return g.squares[p.Row*g.n+p.Col], nil
}

// Neighbours returns the positions adjacent to p (orthogonal + diagonal),
// clipped to the grid.
func (g *Grid) Neighbours(p tiles.Pos) ([]tiles.Pos, error) {
	if p.Row < 0 || p.Row >= g.n || p.Col < 0 || p.Col >= g.n {
		return nil, fmt.Errorf("%w: %v on a %d×%d grid", ErrOutOfBounds, p, g.n, g.n)
	}
	idxs := g.adjacency[p.Row*g.n+p.Col]
	ns := make([]tiles.Pos, len(idxs))
	for i, idx := range idxs {
		ns[i] = g.PosOf(idx)
	}
	return ns, nil
}

// AdjacentTo returns the precomputed neighbour list for a linear cell
// index. The returned slice is shared; callers must not mutate it.
func (g *Grid) AdjacentTo(idx int) []int {
	return g.adjacency[idx]
}

// LetterAt returns the letter at a linear cell index.
func (g *Grid) LetterAt(idx int) byte {
	return g.squares[idx].Letter()
}

// PosOf converts a linear cell index to a position.
func (g *Grid) PosOf(idx int) tiles.Pos {
	return tiles.Pos{Row: idx / g.n, Col: idx % g.n}
}

// Score computes the points earned by following path. The base is the sum
// of each tile's value with its letter bonus applied; the total is then
// doubled for every DoubleWord tile and tripled for every TripleWord tile
// on the path. Word multipliers compound across all such tiles.
func (g *Grid) Score(path []tiles.Pos) (int, error) {
	base := 0
	doubles, triples := 0, 0
	for _, p := range path {
		t, err := g.TileAt(p)
		if err != nil {
			return 0, err
		}
		base += t.Points()
		switch t.Bonus() {
		case tiles.DoubleWord:
			doubles++
		case tiles.TripleWord:
			triples++
		}
	}
	total := base
	for i := 0; i < doubles; i++ {
		total *= 2
	}
	for i := 0; i < triples; i++ {
		total *= 3
	}
	return total, nil
}

// ScoreCells is Score for a path given as linear cell indexes, which the
// search already holds. Indexes must be in range.
func (g *Grid) ScoreCells(idxs []int) int {
	base := 0
	doubles, triples := 0, 0
	for _, idx := range idxs {
		t := g.squares[idx]
		base += t.Points()
		switch t.Bonus() {
		case tiles.DoubleWord:
			doubles++
		case tiles.TripleWord:
			triples++
		}
	}
	total := base
	for i := 0; i < doubles; i++ {
		total *= 2
	}
	for i := 0; i < triples; i++ {
		total *= 3
	}
	return total
}

// Word returns the string spelled by following path.
func (g *Grid) Word(path []tiles.Pos) (string, error) {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, p := range path {
		t, err := g.TileAt(p)
		if err != nil {
			return "", err
		}
		sb.WriteByte(t.Letter())
	}
	return sb.String(), nil
}

// String renders the grid one row per line, letters only.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			sb.WriteByte(g.squares[row*g.n+col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
