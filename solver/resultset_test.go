package solver

import (
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/gridrush/gridrush/tiles"
)

func TestRecordKeepsMaxScore(t *testing.T) {
	is := is.New(t)
	rs := NewResultSet()

	short := []tiles.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	long := []tiles.Pos{{Row: 1, Col: 0}, {Row: 0, Col: 1}}

	rs.Record("ab", short, 4)
	rs.Record("ab", long, 8)
	rs.Record("ab", short, 4) // lower score again, must not regress
	is.Equal(rs.Len(), 1)

	ranked := rs.Ranked()
	is.Equal(ranked[0].Score, 8)
	is.Equal(ranked[0].Path, long)
}

func TestRecordEqualScoreKeepsFirst(t *testing.T) {
	is := is.New(t)
	rs := NewResultSet()

	first := []tiles.Pos{{Row: 0, Col: 0}}
	second := []tiles.Pos{{Row: 1, Col: 1}}
	rs.Record("a", first, 1)
	rs.Record("a", second, 1)
	is.Equal(rs.Ranked()[0].Path, first)
}

func TestRecordConcurrent(t *testing.T) {
	is := is.New(t)
	rs := NewResultSet()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			rs.Record("word", []tiles.Pos{{Row: 0, Col: 0}}, score)
		}(i)
	}
	wg.Wait()
	is.Equal(rs.Len(), 1)
	is.Equal(rs.Ranked()[0].Score, 31)
}
