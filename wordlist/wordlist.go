/*
Package wordlist reads plain-text word lists as used to compile
decomposition dictionaries.

A word list holds one word per line. Lines starting with '#' (after leading
white space) are comments. Anything after the first run of white space is
ignored, which allows frequency columns or morphological annotations:

	# nouns
	Anwendung   NN
	Betreuer    NN
	Ecke
*/
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/npillmayer/decompound"
)

const maxLineLength = 1 << 20

// tracer writes to trace with key 'decompound'
func tracer() tracing.Trace {
	return tracing.Select("decompound")
}

// Reader streams lowercased words from a word list. Consecutive duplicates
// are skipped.
type Reader struct {
	scanner *bufio.Scanner
	lower   cases.Caser
	last    string
	lines   int
	words   int
}

var _ decompound.WordReader = (*Reader)(nil)

// NewReader creates a reader for a word list.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Reader{
		scanner: scanner,
		lower:   cases.Lower(language.German),
	}
}

// Next returns the next word. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.lines++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := r.lower.String(strings.Fields(line)[0])
		if word == r.last {
			continue
		}
		r.last = word
		r.words++
		return word, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	tracer().Debugf("word list: %d lines, %d words", r.lines, r.words)
	return "", io.EOF
}

// Lines returns the number of lines read so far.
func (r *Reader) Lines() int { return r.lines }

// LoadDictionary compiles a dictionary from word lists, using the default
// glue morphemes.
func LoadDictionary(name string, lists ...io.Reader) (*decompound.Dictionary, error) {
	readers := make([]decompound.WordReader, len(lists))
	for i, l := range lists {
		readers[i] = NewReader(l)
	}
	return decompound.NewDictionary(name, nil, readers...)
}
