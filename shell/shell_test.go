package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/gridrush/gridrush/solver"
	"github.com/gridrush/gridrush/tiles"
)

func TestResultRow(t *testing.T) {
	is := is.New(t)
	row := resultRow(solver.WordResult{
		Word:  "cat",
		Path:  []tiles.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
		Score: 5,
	})
	is.Equal(row, "    5 CAT              (0,0) (0,1) (1,0)")
}
