package analysis

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/decompound"
)

// TokenStream yields tokens one at a time. Next returns io.EOF when the
// stream is exhausted.
type TokenStream interface {
	Next() (decompound.Token, error)
}

// WhitespaceTokenizer splits text at Unicode white space. Offsets count
// code points from the start of the input.
type WhitespaceTokenizer struct {
	input  *bufio.Reader
	offset int
	term   strings.Builder
}

// NewWhitespaceTokenizer creates a tokenizer reading from r.
func NewWhitespaceTokenizer(r io.Reader) *WhitespaceTokenizer {
	return &WhitespaceTokenizer{input: bufio.NewReader(r)}
}

// Next returns the next token with position increment 1 and position
// length 1.
func (t *WhitespaceTokenizer) Next() (decompound.Token, error) {
	t.term.Reset()
	start := -1
	for {
		r, _, err := t.input.ReadRune()
		if err != nil {
			if err == io.EOF && start >= 0 {
				break
			}
			return decompound.Token{}, err
		}
		if unicode.IsSpace(r) {
			t.offset++
			if start >= 0 {
				break
			}
			continue
		}
		if start < 0 {
			start = t.offset
		}
		t.term.WriteRune(r)
		t.offset++
	}
	term := t.term.String()
	return decompound.Token{
		Term:   term,
		Start:  start,
		End:    start + utf8.RuneCountInString(term),
		PosInc: 1,
		PosLen: 1,
	}, nil
}
