package decompound

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/decompound/dat"
)

// DefaultGlueMorphemes are the German linking morphemes tried between words.
var DefaultGlueMorphemes = []string{"e", "es", "en", "er", "n", "ens", "ns", "s"}

// Dictionary is a pair of read-only automata used for decomposition:
//   - the surface-form index, holding every word forward and reversed,
//     terminated by an orientation marker
//   - the glue index, holding linking morphemes reversed, without marker.
//
// A Dictionary is immutable and may be shared between goroutines.
type Dictionary struct {
	surface    Automaton
	glue       Automaton
	closer     io.Closer // set for memory-mapped surface indexes
	Identifier string    // Identifies the dictionary
}

// NewDictionary compiles a dictionary in memory from word lists.
// If glue is nil, DefaultGlueMorphemes are used.
func NewDictionary(name string, glue []string, sources ...WordReader) (*Dictionary, error) {
	keys, err := CompileEntries(sources...)
	if err != nil {
		return nil, err
	}
	surface, err := dat.Build(keys)
	if err != nil {
		return nil, err
	}
	return newDictionary(name, surface, nil, glue)
}

// LoadDictionary memory-maps a compiled surface-form index (see Save).
// The dictionary must be closed after use.
func LoadDictionary(path string, glue []string) (*Dictionary, error) {
	mapped, err := dat.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	dict, err := newDictionary(path, mapped.DAT, mapped, glue)
	if err != nil {
		_ = mapped.Close()
		return nil, err
	}
	return dict, nil
}

// ReadDictionary reads a compiled surface-form index into memory.
func ReadDictionary(name string, r io.Reader, glue []string) (*Dictionary, error) {
	surface, err := dat.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", name, err)
	}
	return newDictionary(name, surface, nil, glue)
}

// NewDictionaryFromAutomata wraps existing automata. surface must contain
// reversed entries terminated by ReverseMarker; glue must accept reversed
// morphemes with NoTerminal.
func NewDictionaryFromAutomata(name string, surface, glue Automaton) *Dictionary {
	assert(surface != nil && glue != nil, "dictionary automata must not be nil")
	return &Dictionary{surface: surface, glue: glue, Identifier: name}
}

func newDictionary(name string, surface *dat.DAT, closer io.Closer, glue []string) (*Dictionary, error) {
	if glue == nil {
		glue = DefaultGlueMorphemes
	}
	glueIndex, err := buildGlue(glue)
	if err != nil {
		return nil, err
	}
	dict := &Dictionary{
		surface:    surface,
		glue:       glueIndex,
		closer:     closer,
		Identifier: name,
	}
	stats := surface.Stats()
	tracer().Infof("dictionary %s: surface states=%d used=%d fill=%.2f sigma=%d keys=%d, %d glue morphemes",
		name, stats.TotalSlots, stats.UsedSlots, stats.FillRatio(), stats.Sigma, stats.Finals, len(glue))
	return dict, nil
}

// buildGlue stores folded glue morphemes reversed.
func buildGlue(glue []string) (*dat.DAT, error) {
	seen := make(map[string]bool, len(glue))
	keys := make([]string, 0, len(glue))
	for _, g := range glue {
		g = Fold(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		keys = append(keys, reverseString(g))
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: empty glue morpheme list", ErrNoEntries)
	}
	sort.Strings(keys)
	return dat.Build(keys)
}

// Contains reports whether word is an entry of the dictionary, using the
// forward-oriented entries.
func (dict *Dictionary) Contains(word string) bool {
	if dict.surface == nil {
		return false
	}
	word = Fold(word)
	if word == "" {
		return false
	}
	state := dict.surface.Initial()
	for _, r := range word {
		next, ok := dict.surface.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return dict.surface.Accepts(state, ForwardMarker)
}

// Save writes the compiled surface-form index. The glue index is not saved;
// it is rebuilt from the morpheme list at load time.
func (dict *Dictionary) Save(w io.Writer) error {
	if dict.surface == nil {
		return errors.New("decompound: dictionary is closed")
	}
	wt, ok := dict.surface.(io.WriterTo)
	if !ok {
		return errors.New("decompound: surface index cannot be serialized")
	}
	_, err := wt.WriteTo(w)
	return err
}

// Close releases a memory-mapped surface index. A closed memory-mapped
// dictionary has no entries. Close is a no-op for dictionaries held in memory.
func (dict *Dictionary) Close() error {
	if dict.closer == nil {
		return nil
	}
	err := dict.closer.Close()
	dict.closer = nil
	dict.surface = nil
	return err
}
