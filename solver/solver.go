// Package solver enumerates every vocabulary word traceable on a grid by a
// non-repeating 8-adjacent path, scores each path, and keeps the best
// occurrence per word.
package solver

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gridrush/gridrush/board"
	"github.com/gridrush/gridrush/tiles"
)

// A PrefixIndex answers the two membership queries the search needs. It
// must be read-only for the duration of a solve; implementations are
// shared across workers without synchronization.
type PrefixIndex interface {
	// Contains reports exact full-word membership.
	Contains(word string) bool
	// HasPrefix reports whether any indexed word starts with prefix,
	// including prefix itself.
	HasPrefix(prefix string) bool
}

type Solver struct {
	grid    *board.Grid
	index   PrefixIndex
	workers int
}

type Option func(*Solver)

// WithWorkers caps how many start-cell subtrees run concurrently.
// Zero or negative means one worker per CPU.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

func New(grid *board.Grid, index PrefixIndex, opts ...Option) *Solver {
	s := &Solver{grid: grid, index: index}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the search from every starting cell and returns the
// discovered words. Each start cell's subtree is independent, so they fan
// out across workers; the merge into the shared ResultSet is the only
// synchronized step. The context is checked before each subtree, which
// bounds cancellation latency to one subtree.
func (s *Solver) Solve(ctx context.Context) (*ResultSet, error) {
	rs := NewResultSet()
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	cells := s.grid.NumCells()
	for start := 0; start < cells; start++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := &branch{
				word:    make([]byte, 0, cells),
				path:    make([]int, 0, cells),
				visited: make([]bool, cells),
			}
			s.explore(start, b, rs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("words", rs.Len()).Msg("search-complete")
	return rs, nil
}

// branch is the per-worker search state: the letters and cells of the
// in-flight path, and which cells it has already used.
type branch struct {
	word    []byte
	path    []int
	visited []bool
}

// explore extends the branch onto cell idx, records the current word if it
// is in the vocabulary, and recurses into every unvisited neighbour whose
// extended string is still a viable prefix. The word check is independent
// of whether the branch keeps extending, so a word and a longer word
// sharing its prefix are both found on the same line of recursion.
func (s *Solver) explore(idx int, b *branch, rs *ResultSet) {
	b.visited[idx] = true
	b.word = append(b.word, s.grid.LetterAt(idx))
	b.path = append(b.path, idx)

	word := string(b.word)
	if s.index.Contains(word) {
		rs.Record(word, s.positions(b.path), s.grid.ScoreCells(b.path))
	}
	for _, n := range s.grid.AdjacentTo(idx) {
		if b.visited[n] {
			continue
		}
		if !s.index.HasPrefix(word + string(s.grid.LetterAt(n))) {
			continue
		}
		s.explore(n, b, rs)
	}

	b.path = b.path[:len(b.path)-1]
	b.word = b.word[:len(b.word)-1]
	b.visited[idx] = false
}

func (s *Solver) positions(path []int) []tiles.Pos {
	ps := make([]tiles.Pos, len(path))
	for i, idx := range path {
		ps[i] = s.grid.PosOf(idx)
	}
	return ps
}
