package decompound

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// ErrNoEntries is returned when a dictionary would end up empty.
var ErrNoEntries = errors.New("decompound: no dictionary entries")

// WordReader streams the words of a word list. Next returns io.EOF after
// the last word.
type WordReader interface {
	Next() (string, error)
}

// CompileEntries reads words from all sources and returns the sorted,
// de-duplicated keys of a surface-form index. Every word contributes a
// forward key ("wort>") and a reversed key ("trow<"). Words are folded
// (see Fold); words containing an orientation marker are skipped.
func CompileEntries(sources ...WordReader) ([]string, error) {
	staged := trie.New()
	var keys []string
	words, skipped := 0, 0
	for _, src := range sources {
		for {
			word, err := src.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			word = Fold(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			if strings.ContainsRune(word, ForwardMarker) || strings.ContainsRune(word, ReverseMarker) {
				skipped++
				continue
			}
			words++
			for _, key := range []string{forwardKey(word), reverseKey(word)} {
				if _, dup := staged.Find(key); dup {
					continue
				}
				staged.Add(key, nil)
				keys = append(keys, key)
			}
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoEntries
	}
	sort.Strings(keys)
	tracer().Debugf("compiled %d keys from %d words, skipped %d", len(keys), words, skipped)
	return keys, nil
}

func forwardKey(word string) string {
	return word + string(ForwardMarker)
}

func reverseKey(word string) string {
	return reverseString(word) + string(ReverseMarker)
}
