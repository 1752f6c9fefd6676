package decompound

import (
	"fmt"
	"unicode/utf8"
)

// Token is a term together with its character offsets and its place in a
// token graph. Offsets count code points. PosInc is the distance in
// positions from the previous token's start; PosLen the number of positions
// the token spans.
type Token struct {
	Term   string
	Start  int
	End    int
	PosInc int
	PosLen int
}

func (t Token) String() string {
	return fmt.Sprintf("(%s,%d-%d,inc:%d,len:%d)", t.Term, t.Start, t.End, t.PosInc, t.PosLen)
}

// LatticeOptions control lattice construction.
type LatticeOptions struct {
	// OnlyLongestMatch keeps a single decomposition: the last one in rank
	// order, which has the fewest and longest terms.
	OnlyLongestMatch bool
	// PreserveOriginal emits the original word as the first token, spanning
	// all positions of the reference decomposition.
	PreserveOriginal bool
}

// Lattice is the token graph of one word. Row 0 (the reference row) holds the
// decomposition with the most terms, one position per term; every other row
// is aligned to the row before it.
type Lattice struct {
	original Token
	rows     [][]Token
	opts     LatticeOptions
}

// Arc is a term placed between two lattice nodes. Nodes are numbered from 0
// (before the word) to Span() (after it).
type Arc struct {
	Term     string
	From, To int
}

// BuildLattice arranges ranked decompositions of word into a lattice. Every
// sub-token inherits the offsets of word.
func BuildLattice(word Token, ranked []Decomposition, opts LatticeOptions) *Lattice {
	if opts.OnlyLongestMatch && len(ranked) > 1 {
		ranked = ranked[len(ranked)-1:]
	}
	l := &Lattice{original: word, opts: opts}
	var prev []Token
	for _, d := range ranked {
		if len(d) == 0 {
			continue
		}
		var row []Token
		if prev == nil {
			row = l.referenceRow(d)
		} else {
			row = l.alignedRow(d, prev)
		}
		l.rows = append(l.rows, row)
		prev = row
	}
	return l
}

func (l *Lattice) subToken(term string) Token {
	return Token{Term: term, Start: l.original.Start, End: l.original.End}
}

func (l *Lattice) referenceRow(d Decomposition) []Token {
	row := make([]Token, len(d))
	for i, term := range d {
		row[i] = l.subToken(term)
		row[i].PosLen = 1
		row[i].PosInc = 1
		if i == 0 && l.opts.PreserveOriginal {
			row[i].PosInc = 0
		}
	}
	return row
}

// alignedRow infers position lengths for d by comparing term lengths with the
// previous row. Every term spans at least one position and the row as a whole
// spans exactly as many positions as the previous row.
func (l *Lattice) alignedRow(d Decomposition, prev []Token) []Token {
	assert(len(d) <= len(prev), "decomposition has more terms than the row before it")
	lengthRemain := 0
	for _, t := range prev {
		lengthRemain += t.PosLen
	}
	row := make([]Token, len(d))
	for i, term := range d {
		tok := l.subToken(term)
		termsRemain := len(d) - i - 1
		if termsRemain == 0 {
			assert(lengthRemain >= 1, "no position left for the last term of a row")
			tok.PosLen = lengthRemain
			row[i] = tok
			break
		}
		posLen := min(max(1, inferPosLen(term, prev[i:])), lengthRemain-termsRemain)
		lengthRemain -= posLen
		tok.PosLen = posLen
		row[i] = tok
	}
	return row
}

// inferPosLen is the number of positions of prev a term covers: the position
// length of prev[0] if the term is not longer, else the positions of all
// tokens needed to cover its length.
func inferPosLen(term string, prev []Token) int {
	termLen := utf8.RuneCountInString(term)
	if termLen <= termLength(prev[0]) {
		return prev[0].PosLen
	}
	covered, spanned := 0, 0
	for _, p := range prev {
		covered += termLength(p)
		spanned += p.PosLen
		if covered >= termLen {
			break
		}
	}
	return spanned
}

func termLength(t Token) int {
	return utf8.RuneCountInString(t.Term)
}

// Decomposed reports whether the word has at least one decomposition.
func (l *Lattice) Decomposed() bool { return len(l.rows) > 0 }

// Span is the number of positions covered by the word: the term count of the
// reference row, or 1 if the word has not been decomposed.
func (l *Lattice) Span() int {
	if len(l.rows) == 0 {
		return 1
	}
	return len(l.rows[0])
}

// Rows returns a copy of the annotated decomposition rows.
func (l *Lattice) Rows() [][]Token {
	rows := make([][]Token, len(l.rows))
	for i, r := range l.rows {
		rows[i] = append([]Token(nil), r...)
	}
	return rows
}

// Tokens flattens the lattice into the order tokens are emitted: the
// original word (if preserved), then the rows column by column. A word
// without decomposition yields just itself.
func (l *Lattice) Tokens() []Token {
	if len(l.rows) == 0 {
		orig := l.original
		orig.PosLen = 1
		return []Token{orig}
	}
	var tokens []Token
	if l.opts.PreserveOriginal {
		orig := l.original
		orig.PosLen = l.Span()
		tokens = append(tokens, orig)
	}
	for col := 0; col < len(l.rows[0]); col++ {
		for _, row := range l.rows {
			if col < len(row) {
				tokens = append(tokens, row[col])
			}
		}
	}
	return tokens
}

// Arcs returns the lattice as an explicit graph. Each row is a path from
// node 0; a term starts where the previous term of its row ends. The
// original word, if preserved, spans all nodes.
func (l *Lattice) Arcs() []Arc {
	if len(l.rows) == 0 {
		return []Arc{{Term: l.original.Term, From: 0, To: 1}}
	}
	var arcs []Arc
	if l.opts.PreserveOriginal {
		arcs = append(arcs, Arc{Term: l.original.Term, From: 0, To: l.Span()})
	}
	for _, row := range l.rows {
		pos := 0
		for _, t := range row {
			arcs = append(arcs, Arc{Term: t.Term, From: pos, To: pos + t.PosLen})
			pos += t.PosLen
		}
	}
	return arcs
}
