// Package tiles models the individual letter tiles on a board: the letter,
// its point value, and any bonus marker the square carries.
package tiles

import "fmt"

// A Bonus is a bonus marker on a tile (duh). Letter bonuses multiply the
// tile's own value; word bonuses multiply the whole word's total.
type Bonus uint8

const (
	NoBonus Bonus = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// Bonus colour codes as they appear in board input. These match the
// original game's tile colours: green and blue for letter bonuses,
// yellow and red for word bonuses.
const (
	codeNone         = ""
	codeDoubleLetter = "G"
	codeTripleLetter = "B"
	codeDoubleWord   = "Y"
	codeTripleWord   = "R"
)

func (b Bonus) String() string {
	switch b {
	case NoBonus:
		return "none"
	case DoubleLetter:
		return "2L"
	case TripleLetter:
		return "3L"
	case DoubleWord:
		return "2W"
	case TripleWord:
		return "3W"
	}
	return "?"
}

// ParseBonus maps a colour code from board input to a Bonus.
func ParseBonus(code string) (Bonus, error) {
	switch code {
	case codeNone:
		return NoBonus, nil
	case codeDoubleLetter:
		return DoubleLetter, nil
	case codeTripleLetter:
		return TripleLetter, nil
	case codeDoubleWord:
		return DoubleWord, nil
	case codeTripleWord:
		return TripleWord, nil
	}
	return NoBonus, fmt.Errorf("unrecognized bonus code %q", code)
}

// Code returns the colour code for this bonus, the inverse of ParseBonus.
func (b Bonus) Code() string {
	switch b {
	case DoubleLetter:
		return codeDoubleLetter
	case TripleLetter:
		return codeTripleLetter
	case DoubleWord:
		return codeDoubleWord
	case TripleWord:
		return codeTripleWord
	}
	return codeNone
}

// letterValues holds the base point value for each letter 'a' through 'z'.
var letterValues = [26]int{
	1,  // a
	3,  // b
	3,  // c
	2,  // d
	1,  // e
	4,  // f
	2,  // g
	4,  // h
	1,  // i
	8,  // j
	5,  // k
	1,  // l
	3,  // m
	1,  // n
	1,  // o
	3,  // p
	10, // q
	1,  // r
	1,  // s
	1,  // t
	1,  // u
	4,  // v
	4,  // w
	8,  // x
	4,  // y
	10, // z
}

// A Pos is a (row, col) coordinate on a board.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// A Tile is a single board square. It is immutable after construction
// except for its position, which the owning grid assigns exactly once.
type Tile struct {
	letter byte
	bonus  Bonus
	pos    Pos
	placed bool
}

// New creates a tile for the given letter and bonus. The letter must be a
// lowercase ASCII letter.
func New(letter rune, bonus Bonus) (*Tile, error) {
	if letter < 'a' || letter > 'z' {
		return nil, fmt.Errorf("unrecognized letter %q", letter)
	}
	return &Tile{letter: byte(letter), bonus: bonus}, nil
}

// Place assigns the tile's board position. Called once by the owning grid.
func (t *Tile) Place(p Pos) error {
	if t.placed {
		return fmt.Errorf("tile %q already placed at %v", t.letter, t.pos)
	}
	t.pos = p
	t.placed = true
	return nil
}

func (t *Tile) Letter() byte {
	return t.letter
}

func (t *Tile) Bonus() Bonus {
	return t.bonus
}

func (t *Tile) Pos() Pos {
	return t.pos
}

// Points returns the tile's value with its letter bonus applied. Word
// bonuses are not applied here; they multiply the whole path's total.
func (t *Tile) Points() int {
	v := letterValues[t.letter-'a']
	switch t.bonus {
	case DoubleLetter:
		return v * 2
	case TripleLetter:
		return v * 3
	}
	return v
}

func (t *Tile) String() string {
	return string(t.letter)
}
