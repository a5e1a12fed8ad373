package vocabulary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Persisted index layout, all little-endian after the magic:
//
//   magic "GWVC" (4 bytes)
//   format version  uint32
//   source checksum uint64 (xxhash64 of the text wordlist)
//   word count      uint32
//   element count   uint32
//   elements        []uint32 (see trie.go for the node schema)

const vocabMagicNumber = "GWVC"
const formatVersion = 1

// WriteTo serializes the index.
func (v *Vocabulary) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, vocabMagicNumber); err != nil {
		return err
	}
	for _, field := range []any{
		uint32(formatVersion),
		v.sourceSum,
		uint32(v.wordCount),
		uint32(len(v.nodes)),
	} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, v.nodes)
}

// ScanVocabulary reads a serialized index.
func ScanVocabulary(data io.Reader, language string) (*Vocabulary, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(data, magic); err != nil {
		return nil, err
	}
	if string(magic) != vocabMagicNumber {
		return nil, fmt.Errorf("bad magic number %q, not a vocabulary index", magic)
	}
	var version uint32
	var sourceSum uint64
	var wordCount, elements uint32
	if err := binary.Read(data, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("unsupported index format version %d", version)
	}
	if err := binary.Read(data, binary.LittleEndian, &sourceSum); err != nil {
		return nil, err
	}
	if err := binary.Read(data, binary.LittleEndian, &wordCount); err != nil {
		return nil, err
	}
	if err := binary.Read(data, binary.LittleEndian, &elements); err != nil {
		return nil, err
	}
	nodes := make([]uint32, elements)
	if err := binary.Read(data, binary.LittleEndian, &nodes); err != nil {
		return nil, err
	}
	log.Debug().Str("language", language).Uint32("elements", elements).Msg("loaded-index")
	return &Vocabulary{
		nodes:     nodes,
		language:  language,
		wordCount: int(wordCount),
		sourceSum: sourceSum,
	}, nil
}
