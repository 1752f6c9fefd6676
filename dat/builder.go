package dat

import (
	"errors"
	"fmt"
	"sort"
)

// ErrFrozen is returned when adding keys to a builder which has already
// produced its DAT.
var ErrFrozen = errors.New("dat: builder is frozen")

// ErrUnsorted is returned for keys which are not strictly greater than the
// key added before.
var ErrUnsorted = errors.New("dat: keys must be added in strictly increasing order")

type buildNode struct {
	state    uint32
	final    bool
	children map[uint32]*buildNode
}

// Builder collects keys into a temporary pointer trie and lays them out into
// a double-array on Freeze.
type Builder struct {
	root      *buildNode
	nextDense uint32
	last      string
	keys      int
	firstFree int // slots below are known to be occupied
	compiled  *DAT
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root:      &buildNode{children: make(map[uint32]*buildNode)},
		firstFree: 2,
		compiled:  &DAT{Root: 1},
	}
}

// Keys returns the number of keys added so far.
func (b *Builder) Keys() int { return b.keys }

// Add inserts a key. Keys must be added in sorted order (byte-wise, which for
// UTF-8 equals code point order) without duplicates.
func (b *Builder) Add(key string) error {
	if b.root == nil {
		return ErrFrozen
	}
	if !validKey(key) {
		return fmt.Errorf("dat: invalid key %q", key)
	}
	if b.keys > 0 && key <= b.last {
		return fmt.Errorf("%w: %q after %q", ErrUnsorted, key, b.last)
	}
	n := b.root
	for _, r := range key {
		c := b.dense(r)
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[uint32]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	n.final = true
	b.last = key
	b.keys++
	return nil
}

func (b *Builder) dense(r rune) uint32 {
	c := b.compiled.Alphabet.Dense(r)
	if c == 0 {
		b.nextDense++
		c = b.nextDense
		b.compiled.Alphabet.Set(r, c)
	}
	return c
}

// Freeze lays out the trie breadth-first and returns the finished DAT.
// The builder cannot be used afterwards; calling Freeze again returns the
// same DAT.
func (b *Builder) Freeze() *DAT {
	if b.root == nil {
		return b.compiled
	}
	d := b.compiled
	d.Sigma = b.nextDense
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	b.root.state = d.Root
	var finals []uint32
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.final {
			finals = append(finals, n.state)
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := b.findBase(labels)
		b.ensureIndex(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
		b.advanceFirstFree()
	}
	d.Final = make([]uint64, (len(d.Base)+63)/64)
	for _, s := range finals {
		d.setFinal(s)
	}
	b.root = nil
	stats := d.Stats()
	tracer().Debugf("froze DAT with %d keys: %d states, fill ratio %.2f, sigma %d",
		b.keys, stats.TotalSlots, stats.FillRatio(), stats.Sigma)
	return d
}

func sortedLabels(children map[uint32]*buildNode) []uint32 {
	labels := make([]uint32, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the first base for which all label slots are free.
// The root slot never has a Check entry, but labels start at 1 and bases at 1,
// so no child can land on it.
func (b *Builder) findBase(labels []uint32) int {
	check := b.compiled.Check
	base := b.firstFree - int(labels[0])
	if base < 1 {
		base = 1
	}
	for ; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func (b *Builder) advanceFirstFree() {
	check := b.compiled.Check
	for b.firstFree < len(check) && check[b.firstFree] != 0 {
		b.firstFree++
	}
}

func (b *Builder) ensureIndex(idx int) {
	d := b.compiled
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

// Build is a convenience which adds all keys (already sorted and
// de-duplicated) and freezes the result.
func Build(keys []string) (*DAT, error) {
	b := NewBuilder()
	for _, k := range keys {
		if err := b.Add(k); err != nil {
			return nil, err
		}
	}
	return b.Freeze(), nil
}
