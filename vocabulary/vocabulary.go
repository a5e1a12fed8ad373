// Package vocabulary builds, persists, and queries the word index the
// solver searches against: exact membership and prefix membership over a
// set of lowercase ASCII words, one index per language.
package vocabulary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/gridrush/gridrush/cache"
	"github.com/gridrush/gridrush/config"
)

// ErrVocabularyUnavailable means neither a wordlist nor a cached index
// exists for the requested language (or the wordlist is empty). A search
// cannot run against nothing; callers must surface this instead of
// reporting zero words found.
var ErrVocabularyUnavailable = errors.New("vocabulary unavailable")

// CacheExt is the extension of persisted index files.
const CacheExt = ".gwv"

// Load returns the vocabulary for a language. The persisted index under
// the data path is used when present and built from the current wordlist;
// otherwise the index is rebuilt from the text source under the vocabulary
// path and re-persisted.
func Load(cfg *config.Config, language string) (*Vocabulary, error) {
	sourcePath := filepath.Join(cfg.VocabularyPath, language)
	cachePath := filepath.Join(cfg.DataPath, language+CacheExt)

	var sourceSum uint64
	source, srcErr := os.ReadFile(sourcePath)
	if srcErr == nil {
		sourceSum = xxhash.Sum64(source)
	}

	if f, err := os.Open(cachePath); err == nil {
		v, err := ScanVocabulary(f, language)
		f.Close()
		switch {
		case err != nil:
			log.Warn().Err(err).Str("path", cachePath).Msg("unreadable cached index, rebuilding")
		case srcErr != nil || v.sourceSum == sourceSum:
			log.Info().Str("language", language).Int("words", v.wordCount).
				Msg("vocabulary loaded from cached index")
			return v, nil
		default:
			log.Info().Str("language", language).Msg("cached index is stale, rebuilding")
		}
	}

	if srcErr != nil {
		return nil, fmt.Errorf("%w: no wordlist at %s and no cached index at %s",
			ErrVocabularyUnavailable, sourcePath, cachePath)
	}

	v, err := BuildFromText(language, source, sourceSum)
	if err != nil {
		return nil, err
	}
	if err := persist(cachePath, v); err != nil {
		// The in-memory index is fine; next run just rebuilds again.
		log.Warn().Err(err).Str("path", cachePath).Msg("could not persist index")
	} else {
		log.Info().Str("path", cachePath).Msg("vocabulary saved")
	}
	return v, nil
}

// Get is like Load but caches loaded vocabularies process-wide, so
// repeated solves in the same language share one read-only index.
func Get(cfg *config.Config, language string) (*Vocabulary, error) {
	obj, err := cache.Load(cfg, "vocabulary:"+language, func(cfg *config.Config, key string) (any, error) {
		return Load(cfg, language)
	})
	if err != nil {
		return nil, err
	}
	v, ok := obj.(*Vocabulary)
	if !ok {
		return nil, errors.New("could not read vocabulary from cache")
	}
	return v, nil
}

// BuildFromText builds an index from a newline-delimited wordlist. Words
// are normalized to lowercase base ASCII letters; lines that still contain
// non-letters after normalization are skipped.
func BuildFromText(language string, source []byte, sourceSum uint64) (*Vocabulary, error) {
	b := NewBuilder()
	skipped := 0
	sc := bufio.NewScanner(bytes.NewReader(source))
	for sc.Scan() {
		word, ok := Normalize(sc.Text())
		if !ok {
			skipped++
			continue
		}
		if err := b.Add(word); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning wordlist for %q: %w", language, err)
	}
	if b.WordCount() == 0 {
		return nil, fmt.Errorf("%w: wordlist for %q contains no usable words",
			ErrVocabularyUnavailable, language)
	}
	log.Info().Str("language", language).
		Int("words", b.WordCount()).
		Int("skipped", skipped).
		Msg("vocabulary built from text")
	return b.Vocabulary(language, sourceSum)
}

func persist(path string, v *Vocabulary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := v.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
