package decompound

import "github.com/npillmayer/decompound/dat"

// Automaton is a deterministic, read-only acceptor over code points.
// *dat.DAT and *dat.Mapped implement it.
type Automaton interface {
	Initial() uint32
	Step(state uint32, r rune) (uint32, bool)
	// Accepts reports whether the input leading to state, followed by
	// terminal, is a complete entry. NoTerminal tests the state alone.
	Accepts(state uint32, terminal rune) bool
}

// NoTerminal is the terminal argument for entries without orientation marker.
const NoTerminal = dat.NoTerminal

// Orientation markers terminating entries of the surface-form index.
const (
	ForwardMarker rune = '>'
	ReverseMarker rune = '<'
)

var (
	_ Automaton = (*dat.DAT)(nil)
	_ Automaton = (*dat.Mapped)(nil)
)
