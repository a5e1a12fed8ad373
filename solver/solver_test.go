package solver

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/gridrush/gridrush/board"
	"github.com/gridrush/gridrush/tiles"
)

// dict is a linear-scan PrefixIndex, fine for tiny test vocabularies.
type dict []string

func (d dict) Contains(word string) bool {
	for _, w := range d {
		if w == word {
			return true
		}
	}
	return false
}

func (d dict) HasPrefix(prefix string) bool {
	for _, w := range d {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func mustGrid(t *testing.T, n int, letters string, bonuses map[int]tiles.Bonus) *board.Grid {
	t.Helper()
	specs := make([]tiles.Spec, len(letters))
	for i, r := range letters {
		specs[i] = tiles.Spec{Letter: r, Bonus: bonuses[i]}
	}
	g, err := board.NewGrid(n, specs)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func resultByWord(rs *ResultSet, word string) (WordResult, bool) {
	for _, r := range rs.Ranked() {
		if r.Word == word {
			return r, true
		}
	}
	return WordResult{}, false
}

func TestSolveEndToEnd(t *testing.T) {
	is := is.New(t)
	// c a
	// t x
	g := mustGrid(t, 2, "catx", nil)
	s := New(g, dict{"cat", "at", "ca"})

	rs, err := s.Solve(context.Background())
	is.NoErr(err)
	is.Equal(rs.Len(), 3)

	for word, want := range map[string]int{"cat": 5, "at": 2, "ca": 4} {
		r, ok := resultByWord(rs, word)
		is.True(ok)
		is.Equal(r.Score, want)
		is.True(len(r.Path) >= 2 && len(r.Path) <= 3)
	}
}

func TestSolveResultsAreValid(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 3, "catsdogse", nil)
	index := dict{"cat", "cats", "at", "dog", "dogs", "sad", "toad", "ca"}
	s := New(g, index)

	rs, err := s.Solve(context.Background())
	is.NoErr(err)

	for _, r := range rs.Ranked() {
		is.True(index.Contains(r.Word)) // only vocabulary words come back

		// The path spells the word.
		w, err := g.Word(r.Path)
		is.NoErr(err)
		is.Equal(w, r.Word)

		// No repeated position.
		seen := map[tiles.Pos]bool{}
		for _, p := range r.Path {
			is.True(!seen[p])
			seen[p] = true
		}

		// Consecutive positions are 8-adjacent.
		for i := 1; i < len(r.Path); i++ {
			dr := r.Path[i].Row - r.Path[i-1].Row
			dc := r.Path[i].Col - r.Path[i-1].Col
			is.True(dr >= -1 && dr <= 1)
			is.True(dc >= -1 && dc <= 1)
			is.True(!(dr == 0 && dc == 0))
		}
	}
}

func TestWordAndExtensionBothFound(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 2, "catx", nil)
	s := New(g, dict{"ca", "cat"})

	rs, err := s.Solve(context.Background())
	is.NoErr(err)

	_, okShort := resultByWord(rs, "ca")
	_, okLong := resultByWord(rs, "cat")
	is.True(okShort)
	is.True(okLong)
}

func TestMaxScoreRetention(t *testing.T) {
	is := is.New(t)
	// a b
	// a x   with a double word bonus on the bottom-left a. "ab" is
	// reachable from both a's; only the bonused path's score must be kept.
	g := mustGrid(t, 2, "abax", map[int]tiles.Bonus{2: tiles.DoubleWord})
	s := New(g, dict{"ab"})

	rs, err := s.Solve(context.Background())
	is.NoErr(err)
	r, ok := resultByWord(rs, "ab")
	is.True(ok)
	is.Equal(r.Score, 8) // (1+3)×2, not the plain 4
	is.Equal(r.Path[0], tiles.Pos{Row: 1, Col: 0})
}

func TestDeterministicRanking(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 2, "abba", nil)
	s := New(g, dict{"ab", "ba", "abba", "baab"}, WithWorkers(4))

	first, err := s.Solve(context.Background())
	is.NoErr(err)
	second, err := s.Solve(context.Background())
	is.NoErr(err)

	fr, sr := first.Ranked(), second.Ranked()
	is.Equal(len(fr), len(sr))
	for i := range fr {
		is.Equal(fr[i].Word, sr[i].Word)
		is.Equal(fr[i].Score, sr[i].Score)
	}
}

func TestRankedTieBreak(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 2, "abxx", nil)
	s := New(g, dict{"ab", "ba"})

	rs, err := s.Solve(context.Background())
	is.NoErr(err)
	ranked := rs.Ranked()
	is.Equal(len(ranked), 2)
	is.Equal(ranked[0].Score, ranked[1].Score)
	is.Equal(ranked[0].Word, "ab") // equal scores rank alphabetically
	is.Equal(ranked[1].Word, "ba")
}

func TestSolveCancelled(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 2, "catx", nil)
	s := New(g, dict{"cat"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Solve(ctx)
	is.True(err != nil)
}

func TestPrefixPruningSkipsDeadBranches(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, 2, "zzzz", nil)
	index := &countingIndex{inner: dict{"cat"}}
	s := New(g, index, WithWorkers(1))

	rs, err := s.Solve(context.Background())
	is.NoErr(err)
	is.Equal(rs.Len(), 0)
	// Every single-letter extension fails the prefix test, so no branch
	// goes deeper than two letters.
	is.True(index.maxLen <= 2)
}

type countingIndex struct {
	inner  dict
	maxLen int
}

func (c *countingIndex) Contains(word string) bool {
	return c.inner.Contains(word)
}

func (c *countingIndex) HasPrefix(prefix string) bool {
	if len(prefix) > c.maxLen {
		c.maxLen = len(prefix)
	}
	return c.inner.HasPrefix(prefix)
}
