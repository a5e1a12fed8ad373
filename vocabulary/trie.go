package vocabulary

// The vocabulary index is a flat slice of 32-bit elements, queried in
// place. Schema:
//
//   node descriptor: bits 31-24 arc count, bit 23 terminal flag
//   followed by [arc count] arcs, sorted by letter:
//     bits 31-24 letter ('a'-relative, 0-25), bits 23-0 target node index
//
// Indexes are element offsets into the slice; the root node is element 0.

const (
	arcCountBitLoc  = 24
	terminalBitMask = 1 << 23
	letterBitLoc    = 24
	targetBitMask   = (1 << letterBitLoc) - 1
)

// A Vocabulary answers exact-word and prefix membership over a fixed set
// of lowercase ASCII words. It is read-only after construction and safe to
// share across concurrent searches.
type Vocabulary struct {
	nodes     []uint32
	language  string
	wordCount int
	sourceSum uint64
}

// Language returns the language this vocabulary was built for.
func (v *Vocabulary) Language() string {
	return v.language
}

// WordCount returns how many words the index holds.
func (v *Vocabulary) WordCount() int {
	return v.wordCount
}

// Contains reports whether word is an indexed word.
func (v *Vocabulary) Contains(word string) bool {
	idx, ok := v.walk(word)
	return ok && v.nodes[idx]&terminalBitMask != 0
}

// HasPrefix reports whether at least one indexed word starts with prefix,
// including prefix itself.
func (v *Vocabulary) HasPrefix(prefix string) bool {
	_, ok := v.walk(prefix)
	return ok
}

// walk follows s letter by letter from the root, returning the index of
// the node reached, or false if the path does not exist. The empty string
// reaches the root only if the index is nonempty.
func (v *Vocabulary) walk(s string) (uint32, bool) {
	if len(v.nodes) == 0 {
		return 0, false
	}
	var idx uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, false
		}
		next, ok := v.arcFor(idx, c-'a')
		if !ok {
			return 0, false
		}
		idx = next
	}
	return idx, true
}

// arcFor scans the arcs of the node at idx for the given letter code.
func (v *Vocabulary) arcFor(idx uint32, letter byte) (uint32, bool) {
	numArcs := v.nodes[idx] >> arcCountBitLoc
	for i := idx + 1; i <= idx+numArcs; i++ {
		if byte(v.nodes[i]>>letterBitLoc) == letter {
			return v.nodes[i] & targetBitMask, true
		}
	}
	return 0, false
}
