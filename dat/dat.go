package dat

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// NoTerminal asks Accepts to test the state itself for finality.
const NoTerminal rune = 0

// DAT is a frozen double-array trie used as a deterministic acceptor over
// Unicode code points.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//   - Final is a bitset over states; a set bit marks the end of a key.
//
// A DAT is immutable once frozen and may be traversed by any number of
// goroutines concurrently.
type DAT struct {
	// Root state index (always 1 for DATs created by a Builder).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint32

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Final holds one bit per state.
	Final []uint64

	// Alphabet maps code points to dense IDs [0..Sigma].
	Alphabet PagedMap
}

// tracer writes to trace with key 'decompound.dat'
func tracer() tracing.Trace {
	return tracing.Select("decompound.dat")
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint32) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := int64(d.Base[state]) + int64(dense)
	if t <= 0 || t >= int64(len(d.Check)) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Initial returns the start state.
func (d *DAT) Initial() uint32 { return d.Root }

// Step advances from state by code point r.
func (d *DAT) Step(state uint32, r rune) (uint32, bool) {
	return d.Transition(state, d.Alphabet.Dense(r))
}

// IsFinal reports whether a key ends at state.
func (d *DAT) IsFinal(state uint32) bool {
	w := int(state >> 6)
	if w >= len(d.Final) {
		return false
	}
	return d.Final[w]&(1<<(state&63)) != 0
}

// Accepts reports whether the prefix leading to state, extended by terminal,
// is a complete key. With terminal == NoTerminal the prefix itself is tested.
func (d *DAT) Accepts(state uint32, terminal rune) bool {
	if terminal == NoTerminal {
		return d.IsFinal(state)
	}
	next, ok := d.Step(state, terminal)
	return ok && d.IsFinal(next)
}

// Contains reports whether key has been added to the trie.
func (d *DAT) Contains(key string) bool {
	if key == "" {
		return false
	}
	state := d.Root
	for _, r := range key {
		next, ok := d.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}

// Stats reports density metrics for a DAT.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	Finals     int
	Sigma      int
	Pages      int
}

// FillRatio is the share of used slots in the double-array.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats counts used slots and final states.
func (d *DAT) Stats() Stats {
	stats := Stats{
		TotalSlots: d.NStates(),
		Sigma:      int(d.Sigma),
		Pages:      d.Alphabet.NumPages(),
	}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
		}
	}
	for s := 0; s < len(d.Base); s++ {
		if d.IsFinal(uint32(s)) {
			stats.Finals++
		}
	}
	return stats
}

func (d *DAT) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d)", d.NStates(), d.Sigma)
}

func (d *DAT) setFinal(state uint32) {
	d.Final[state>>6] |= 1 << (state & 63)
}

func validKey(key string) bool {
	if key == "" || !utf8.ValidString(key) {
		return false
	}
	for _, r := range key {
		if r == NoTerminal {
			return false
		}
	}
	return true
}
