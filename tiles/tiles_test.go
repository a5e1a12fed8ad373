package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseBonus(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		code string
		want Bonus
	}{
		{"", NoBonus},
		{"G", DoubleLetter},
		{"B", TripleLetter},
		{"Y", DoubleWord},
		{"R", TripleWord},
	}
	for _, c := range cases {
		got, err := ParseBonus(c.code)
		is.NoErr(err)
		is.Equal(got, c.want)
		is.Equal(got.Code(), c.code)
	}
}

func TestParseBonusUnrecognized(t *testing.T) {
	is := is.New(t)
	_, err := ParseBonus("Z")
	is.True(err != nil)
}

func TestNewRejectsNonLetters(t *testing.T) {
	is := is.New(t)
	for _, r := range []rune{'A', '1', ' ', 'é'} {
		_, err := New(r, NoBonus)
		is.True(err != nil)
	}
}

func TestPoints(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		letter rune
		bonus  Bonus
		want   int
	}{
		{'a', NoBonus, 1},
		{'a', DoubleLetter, 2},
		{'a', TripleLetter, 3},
		{'c', NoBonus, 3},
		{'d', DoubleLetter, 4},
		{'q', NoBonus, 10},
		// word bonuses do not change the tile's own value
		{'a', DoubleWord, 1},
		{'a', TripleWord, 1},
	}
	for _, c := range cases {
		tile, err := New(c.letter, c.bonus)
		is.NoErr(err)
		is.Equal(tile.Points(), c.want)
	}
}

func TestPlaceOnce(t *testing.T) {
	is := is.New(t)
	tile, err := New('a', NoBonus)
	is.NoErr(err)
	is.NoErr(tile.Place(Pos{Row: 1, Col: 2}))
	is.Equal(tile.Pos(), Pos{Row: 1, Col: 2})
	is.True(tile.Place(Pos{Row: 0, Col: 0}) != nil)
	is.Equal(tile.Pos(), Pos{Row: 1, Col: 2})
}

func TestParseSpecs(t *testing.T) {
	is := is.New(t)
	specs, err := ParseSpecs("cat", []string{"", "Y", "G"})
	is.NoErr(err)
	is.Equal(len(specs), 3)
	is.Equal(specs[0], Spec{Letter: 'c'})
	is.Equal(specs[1], Spec{Letter: 'a', Bonus: DoubleWord})
	is.Equal(specs[2], Spec{Letter: 't', Bonus: DoubleLetter})

	_, err = ParseSpecs("cat", []string{"", "Y"})
	is.True(err != nil)

	_, err = ParseSpecs("cat", []string{"", "Y", "?"})
	is.True(err != nil)
}

func TestDeal(t *testing.T) {
	is := is.New(t)
	specs := EnglishLetterDistribution().Deal(4)
	is.Equal(len(specs), 16)
	bonuses := 0
	for _, s := range specs {
		is.True(s.Letter >= 'a' && s.Letter <= 'z')
		if s.Bonus != NoBonus {
			bonuses++
		}
	}
	is.Equal(bonuses, len(dealBonuses))
}
