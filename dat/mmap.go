package dat

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Mapped is a DAT whose arrays live in a read-only memory mapping of its
// asset file. It must be closed to release the mapping; the embedded DAT is
// invalid afterwards.
type Mapped struct {
	*DAT
	mm mmap.MMap
}

// Open memory-maps a serialized DAT.
func Open(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < headerSize {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrFormat, path, info.Size())
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	d, err := Decode(mm)
	if err != nil {
		_ = mm.Unmap()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("mapped %s (%d bytes, %d states)", path, len(mm), d.NStates())
	return &Mapped{DAT: d, mm: mm}, nil
}

// Close unmaps the asset file. Calling Close more than once is a no-op.
func (m *Mapped) Close() error {
	if m.mm == nil {
		return nil
	}
	err := m.mm.Unmap()
	m.mm = nil
	m.DAT = nil
	return err
}
