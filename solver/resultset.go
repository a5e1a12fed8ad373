package solver

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/gridrush/gridrush/tiles"
)

// A WordResult is a discovered word with its best-known path and that
// path's score.
type WordResult struct {
	Word  string
	Path  []tiles.Pos
	Score int
}

// A ResultSet keeps at most one WordResult per distinct word: the
// highest-scoring occurrence seen so far, whichever branch or worker found
// it. Record is safe for concurrent use.
type ResultSet struct {
	mu   sync.Mutex
	best map[string]WordResult
}

func NewResultSet() *ResultSet {
	return &ResultSet{best: make(map[string]WordResult)}
}

// Record inserts or updates the result for word. The stored path and score
// are replaced only when score is strictly greater than what is already
// held, so a word reachable by several paths reports its maximum.
func (rs *ResultSet) Record(word string, path []tiles.Pos, score int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if cur, ok := rs.best[word]; ok && cur.Score >= score {
		return
	}
	rs.best[word] = WordResult{Word: word, Path: path, Score: score}
}

// Len returns how many distinct words have been recorded.
func (rs *ResultSet) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.best)
}

// Ranked returns the results sorted by descending score, ties broken by
// ascending word, so output is deterministic.
func (rs *ResultSet) Ranked() []WordResult {
	rs.mu.Lock()
	results := lo.Values(rs.best)
	rs.mu.Unlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word < results[j].Word
	})
	return results
}
