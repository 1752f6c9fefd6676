package decompound

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Splitter decomposes words against a Dictionary. It is safe for concurrent
// use.
type Splitter struct {
	dict  *Dictionary
	cache *lru.Cache[string, []Decomposition]
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter) error

// WithCache keeps the ranked decompositions of up to size words.
func WithCache(size int) SplitterOption {
	return func(s *Splitter) error {
		cache, err := lru.New[string, []Decomposition](size)
		if err != nil {
			return fmt.Errorf("decompound: split cache: %w", err)
		}
		s.cache = cache
		return nil
	}
}

// NewSplitter creates a splitter for dict.
func NewSplitter(dict *Dictionary, opts ...SplitterOption) (*Splitter, error) {
	if dict == nil {
		return nil, fmt.Errorf("decompound: splitter needs a dictionary")
	}
	s := &Splitter{dict: dict}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dictionary returns the dictionary the splitter works on.
func (s *Splitter) Dictionary() *Dictionary { return s.dict }

// Search returns all distinct decompositions of word in discovery order,
// unranked. Terms are folded (see Fold).
func (s *Splitter) Search(word string) []Decomposition {
	return s.dict.search(Fold(word))
}

// Split returns the ranked decompositions of word. The result is empty if
// the word cannot be decomposed into at least one known word other than
// itself.
func (s *Splitter) Split(word string) []Decomposition {
	folded := Fold(word)
	if s.cache != nil {
		if ds, ok := s.cache.Get(folded); ok {
			return clone(ds)
		}
	}
	ds := s.dict.search(folded)
	Rank(ds)
	if s.cache != nil {
		s.cache.Add(folded, clone(ds))
	}
	return ds
}

func clone(ds []Decomposition) []Decomposition {
	if ds == nil {
		return nil
	}
	out := make([]Decomposition, len(ds))
	for i, d := range ds {
		out[i] = slices.Clone(d)
	}
	return out
}
