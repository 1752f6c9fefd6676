/*
Package analysis connects decomposition to token streams.

A CompoundFilter reads words from an upstream TokenStream and replaces every
decomposable word by its token lattice:

	(Finanzgrundsatzangelegenheiten,len:3,inc:1)
	  (finanz,len:1,inc:0) -> (grundsatz,len:1,inc:1) -> (angelegenheiten,len:1,inc:1)
	  (finanzgrundsatz,len:2,inc:0) -------------------> (angelegenheiten,len:1,inc:0)

Words shorter than the configured minimum size, and words without
decomposition, are passed through unchanged.
*/
package analysis

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/decompound"
)

// tracer writes to trace with key 'decompound.analysis'
func tracer() tracing.Trace {
	return tracing.Select("decompound.analysis")
}

// CompoundFilter is a TokenStream decomposing the tokens of its input.
// It is not safe for concurrent use; create one filter per stream.
type CompoundFilter struct {
	input    TokenStream
	splitter *decompound.Splitter
	config   Config
	queue    []decompound.Token
}

// NewCompoundFilter wraps input.
func NewCompoundFilter(input TokenStream, splitter *decompound.Splitter, config Config) *CompoundFilter {
	return &CompoundFilter{
		input:    input,
		splitter: splitter,
		config:   config,
	}
}

// Next returns the next token. Tokens of one decomposed word are delivered
// in lattice order before the next input token is read.
func (f *CompoundFilter) Next() (decompound.Token, error) {
	if len(f.queue) == 0 {
		tok, err := f.input.Next()
		if err != nil {
			return decompound.Token{}, err
		}
		f.queue = f.decompose(tok)
	}
	tok := f.queue[0]
	f.queue = f.queue[1:]
	return tok, nil
}

func (f *CompoundFilter) decompose(tok decompound.Token) []decompound.Token {
	if utf8.RuneCountInString(tok.Term) < f.config.MinWordSize {
		return []decompound.Token{tok}
	}
	ranked := f.splitter.Split(tok.Term)
	lattice := decompound.BuildLattice(tok, ranked, decompound.LatticeOptions{
		OnlyLongestMatch: f.config.OnlyLongestMatch,
		PreserveOriginal: f.config.PreserveOriginal,
	})
	tokens := lattice.Tokens()
	if lattice.Decomposed() {
		tracer().Debugf("%s: %d decompositions, %d tokens", tok.Term, len(ranked), len(tokens))
	}
	return tokens
}

// Collect drains a token stream.
func Collect(ts TokenStream) ([]decompound.Token, error) {
	var tokens []decompound.Token
	for {
		tok, err := ts.Next()
		if err != nil {
			if err == io.EOF {
				return tokens, nil
			}
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}
