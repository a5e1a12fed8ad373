package tiles

import (
	"fmt"

	"lukechampine.com/frand"
)

// A LetterDistribution holds how many of each letter a full bag contains.
// Used to draw random boards that feel like real game deals.
type LetterDistribution struct {
	counts map[rune]int
}

// EnglishLetterDistribution returns the standard English tile distribution.
func EnglishLetterDistribution() LetterDistribution {
	return LetterDistribution{counts: map[rune]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12, 'f': 2, 'g': 3, 'h': 2,
		'i': 9, 'j': 1, 'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8, 'p': 2,
		'q': 1, 'r': 6, 's': 4, 't': 6, 'u': 4, 'v': 2, 'w': 2, 'x': 1,
		'y': 2, 'z': 1,
	}}
}

// bag returns a shuffled bag of letters from the distribution.
func (ld LetterDistribution) bag() []rune {
	n := 0
	for _, ct := range ld.counts {
		n += ct
	}
	bag := make([]rune, 0, n)
	for rn, ct := range ld.counts {
		for j := 0; j < ct; j++ {
			bag = append(bag, rn)
		}
	}
	frand.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// Standard bonus deal for a random board: one of each word bonus, two of
// each letter bonus.
var dealBonuses = []Bonus{
	DoubleWord, TripleWord, DoubleLetter, DoubleLetter, TripleLetter, TripleLetter,
}

// Deal draws n*n letters from a fresh shuffled bag and scatters the
// standard bonus set over distinct squares.
func (ld LetterDistribution) Deal(n int) []Spec {
	bag := ld.bag()
	specs := make([]Spec, n*n)
	for i := range specs {
		specs[i] = Spec{Letter: bag[i%len(bag)]}
	}
	if len(dealBonuses) <= len(specs) {
		for i, b := range frand.Perm(len(specs))[:len(dealBonuses)] {
			specs[b].Bonus = dealBonuses[i]
		}
	}
	return specs
}

// A Spec is one (letter, bonus) pair of board construction input.
type Spec struct {
	Letter rune
	Bonus  Bonus
}

// ParseSpecs converts a string of letters and a parallel slice of bonus
// colour codes into construction input. codes may be nil for a plain board.
func ParseSpecs(letters string, codes []string) ([]Spec, error) {
	rs := []rune(letters)
	if codes != nil && len(codes) != len(rs) {
		return nil, fmt.Errorf("%d letters but %d bonus codes", len(rs), len(codes))
	}
	specs := make([]Spec, len(rs))
	for i, r := range rs {
		specs[i] = Spec{Letter: r}
		if codes != nil {
			b, err := ParseBonus(codes[i])
			if err != nil {
				return nil, err
			}
			specs[i].Bonus = b
		}
	}
	return specs, nil
}
