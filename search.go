package decompound

import (
	"math"
	"strings"
)

// Decomposition is one split of a word into dictionary words, left to right.
// Glue morphemes are not part of it.
type Decomposition []string

func (d Decomposition) String() string {
	return strings.Join(d, "+")
}

type chunkKind uint8

const (
	chunkWord chunkKind = iota
	chunkGlue
)

// chunk is a half-open span of the reversed word buffer.
type chunk struct {
	start, end int
	kind       chunkKind
}

// searchState is owned by a single search call.
type searchState struct {
	dict     *Dictionary
	buf      []rune // folded word, reversed
	whole    string // folded word
	path     []chunk
	minParts []int // by chunk end: fewest chunks seen so far on a path reaching it
	found    []Decomposition
	seen     map[string]bool // joined terms of found
}

// search collects all decompositions of a folded word, in discovery order.
// Words are matched from the end of the compound, longest candidate first.
func (dict *Dictionary) search(word string) []Decomposition {
	buf := []rune(word)
	if len(buf) == 0 || dict.surface == nil {
		return nil
	}
	reverseRunes(buf)
	st := &searchState{
		dict:     dict,
		buf:      buf,
		whole:    word,
		minParts: make([]int, len(buf)+1),
		seen:     make(map[string]bool),
	}
	for i := range st.minParts {
		st.minParts[i] = math.MaxInt
	}
	st.matchWord(0)
	tracer().Debugf("search %q: %d decompositions", word, len(st.found))
	return st.found
}

func (st *searchState) matchWord(offset int) {
	surface := st.dict.surface
	state := surface.Initial()
	var candidates []chunk
	for i := offset; i < len(st.buf); i++ {
		next, ok := surface.Step(state, st.buf[i])
		if !ok {
			break
		}
		state = next
		if surface.Accepts(state, ReverseMarker) {
			candidates = append(candidates, chunk{start: offset, end: i + 1, kind: chunkWord})
		}
	}
	for j := len(candidates) - 1; j >= 0; j-- {
		c := candidates[j]
		parts := len(st.path) + 1
		if parts > st.minParts[c.end] {
			continue
		}
		st.minParts[c.end] = parts
		st.push(c)
		if c.end == len(st.buf) {
			st.emit()
		} else {
			st.matchWord(c.end)
			st.matchGlue(c.end)
		}
		st.pop()
	}
}

func (st *searchState) matchGlue(offset int) {
	glue := st.dict.glue
	state := glue.Initial()
	for i := offset; i < len(st.buf); i++ {
		next, ok := glue.Step(state, st.buf[i])
		if !ok {
			return
		}
		state = next
		if !glue.Accepts(state, NoTerminal) {
			continue
		}
		st.push(chunk{start: offset, end: i + 1, kind: chunkGlue})
		if i+1 < len(st.buf) {
			st.matchWord(i + 1)
		}
		st.pop()
	}
}

func (st *searchState) push(c chunk) { st.path = append(st.path, c) }

func (st *searchState) pop() { st.path = st.path[:len(st.path)-1] }

// emit records the current path. The path starts at the end of the word,
// so it is read backwards to produce left-to-right order. Paths differing
// only in which chunks are glue may yield the same terms; those are recorded
// once.
func (st *searchState) emit() {
	var d Decomposition
	for i := len(st.path) - 1; i >= 0; i-- {
		c := st.path[i]
		if c.kind != chunkWord {
			continue
		}
		term := st.text(c)
		if term == st.whole {
			continue
		}
		d = append(d, term)
	}
	if len(d) == 0 {
		return
	}
	key := strings.Join(d, "\x00")
	if st.seen[key] {
		return
	}
	st.seen[key] = true
	st.found = append(st.found, d)
}

func (st *searchState) text(c chunk) string {
	r := make([]rune, c.end-c.start)
	copy(r, st.buf[c.start:c.end])
	reverseRunes(r)
	return string(r)
}
