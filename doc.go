/*
Package decompound splits German compound words into their constituent words
and arranges competing splits as a token lattice.

A Dictionary holds two read-only automata: the surface-form index, where
every lowercased word is stored twice (forward with terminal '>' and reversed
with terminal '<'), and a small index of glue morphemes ("Fugenelemente" such
as -s- or -en-), stored reversed. Searching walks the reversed word from its
end, so the head of a German compound is matched first. Glue morphemes are
consumed between words but never reported.

Decompositions are ranked (more parts first, then shorter leading part) and
handed to BuildLattice, which assigns each sub-term a position increment and a
position length so that alternative splits of the same word form parallel
paths of a token graph. Package analysis wraps this into a token filter.

Dictionaries are compiled from plain word lists and saved as double-array
tries (package dat), which can be memory-mapped at load time.

Further Reading

	https://lucene.apache.org/core/9_0_0/core/org/apache/lucene/util/graph/package-summary.html
	https://en.wikipedia.org/wiki/Interfix

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package decompound

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'decompound'
func tracer() tracing.Trace {
	return tracing.Select("decompound")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
