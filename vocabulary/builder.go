package vocabulary

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// node is a temporary type used while building an index. It is not used
// when loading one.
type node struct {
	arcs     map[byte]*node
	terminal bool
	// assigned during serialization
	offset uint32
}

// A Builder accumulates normalized words and serializes them into the flat
// node array a Vocabulary queries.
type Builder struct {
	root  *node
	words int
}

func NewBuilder() *Builder {
	return &Builder{root: &node{arcs: map[byte]*node{}}}
}

// Add inserts a word. The word must already be normalized to lowercase
// ASCII letters; anything else is rejected.
func (b *Builder) Add(word string) error {
	if len(word) == 0 {
		return fmt.Errorf("empty word")
	}
	cur := b.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return fmt.Errorf("word %q contains non-letter %q", word, c)
		}
		next, ok := cur.arcs[c]
		if !ok {
			next = &node{arcs: map[byte]*node{}}
			cur.arcs[c] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		b.words++
	}
	return nil
}

// WordCount returns how many distinct words have been added.
func (b *Builder) WordCount() int {
	return b.words
}

// Vocabulary serializes the accumulated words into a queryable index.
// sourceSum is the checksum of the text source the words came from; it is
// carried in the persisted form for staleness detection.
func (b *Builder) Vocabulary(language string, sourceSum uint64) (*Vocabulary, error) {
	if b.words == 0 {
		return nil, fmt.Errorf("no words added for language %q", language)
	}
	// First pass: breadth-first offset assignment. Each node occupies one
	// descriptor element plus one element per arc.
	queue := []*node{b.root}
	var next uint32
	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		n.offset = next
		next += 1 + uint32(len(n.arcs))
		for _, c := range sortedArcLetters(n) {
			queue = append(queue, n.arcs[c])
		}
	}
	if next > targetBitMask {
		return nil, fmt.Errorf("index too large: %d elements exceeds the 24-bit node index", next)
	}
	// Second pass: emit descriptors and arcs.
	elems := make([]uint32, 0, next)
	for _, n := range queue {
		desc := uint32(len(n.arcs)) << arcCountBitLoc
		if n.terminal {
			desc |= terminalBitMask
		}
		elems = append(elems, desc)
		for _, c := range sortedArcLetters(n) {
			elems = append(elems, uint32(c-'a')<<letterBitLoc|n.arcs[c].offset)
		}
	}
	log.Debug().
		Str("language", language).
		Int("words", b.words).
		Int("elements", len(elems)).
		Msg("serialized-vocabulary")
	return &Vocabulary{
		nodes:     elems,
		language:  language,
		wordCount: b.words,
		sourceSum: sourceSum,
	}, nil
}

func sortedArcLetters(n *node) []byte {
	letters := make([]byte, 0, len(n.arcs))
	for c := range n.arcs {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
