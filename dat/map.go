package dat

import "unicode"

const (
	pageBits = 8
	pageSize = 1 << pageBits
	topSize  = (unicode.MaxRune >> pageBits) + 1 // 0x1100 pages cover all of Unicode
)

// PagedMap maps Unicode code points (0..0x10FFFF) to dense alphabet IDs.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 4352 * 4 = 17 KB
//   - Each populated page: 256 * 4 = 1 KB
//
// German text touches only a handful of pages (Basic Latin, Latin-1, Latin Extended-A).
type PagedMap struct {
	Top   []uint32 // page index (1-based); 0 means none; len == topSize once used
	Pages []uint32 // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a code point.
// Returns 0 if absent.
func (m *PagedMap) Dense(r rune) uint32 {
	if r < 0 || r > unicode.MaxRune {
		return 0
	}
	hi := int(r >> pageBits)
	if hi >= len(m.Top) {
		return 0
	}
	pi := m.Top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << pageBits
	return m.Pages[base+int(r&(pageSize-1))]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> pageBits }

// ensurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (m *PagedMap) ensurePage(hi int) uint32 {
	if m.Top == nil {
		m.Top = make([]uint32, topSize)
	}
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint32, pageSize)...)
	pi = uint32(len(m.Pages) >> pageBits)
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> dense (dense may be 0 to clear).
// Code points outside of Unicode are ignored.
func (m *PagedMap) Set(r rune, dense uint32) {
	if r < 0 || r > unicode.MaxRune {
		return
	}
	hi := int(r >> pageBits)
	var pi uint32
	if m.Top != nil {
		pi = m.Top[hi]
	}
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << pageBits
	m.Pages[base+int(r&(pageSize-1))] = dense
}
