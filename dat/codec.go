package dat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unsafe"
)

// ErrFormat is returned for data which is not a valid serialized DAT.
var ErrFormat = errors.New("dat: invalid or truncated data")

const (
	magic         = "DCMP"
	formatVersion = 1
	headerSize    = 32
)

// header is the fixed-size prefix of a serialized DAT. All integers are
// little endian; every array section following it starts 8-byte aligned.
type header struct {
	Magic    [4]byte
	Version  uint32
	Root     uint32
	Sigma    uint32
	States   uint32
	Pages    uint32
	FinalLen uint32
	_        uint32
}

// WriteTo serializes d. Layout: header, Top, Pages, Base, Check, Final.
func (d *DAT) WriteTo(w io.Writer) (int64, error) {
	top := d.Alphabet.Top
	if top == nil {
		top = make([]uint32, topSize)
	}
	h := header{
		Version:  formatVersion,
		Root:     d.Root,
		Sigma:    d.Sigma,
		States:   uint32(len(d.Base)),
		Pages:    uint32(d.Alphabet.NumPages()),
		FinalLen: uint32(len(d.Final)),
	}
	copy(h.Magic[:], magic)
	cw := &countingWriter{w: w}
	sections := []any{h, top, d.Alphabet.Pages, d.Base, d.Check, d.Final}
	for _, s := range sections {
		if p, ok := s.([]uint32); ok && len(p) == 0 {
			continue
		}
		if err := binary.Write(cw, binary.LittleEndian, s); err != nil {
			return cw.n, err
		}
		if pad := cw.n % 8; pad != 0 {
			if _, err := cw.Write(make([]byte, 8-pad)); err != nil {
				return cw.n, err
			}
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Read reads a serialized DAT completely into memory.
func Read(r io.Reader) (*DAT, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode interprets data as a serialized DAT. On little endian hosts the
// arrays of the result alias data, which therefore must not be modified or
// released while the DAT is in use.
func Decode(data []byte) (*DAT, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFormat, len(data))
	}
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if string(h.Magic[:]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, h.Magic[:])
	}
	if h.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, h.Version)
	}
	sizes := []int64{
		topSize * 4,
		int64(h.Pages) * pageSize * 4,
		int64(h.States) * 4,
		int64(h.States) * 4,
		int64(h.FinalLen) * 8,
	}
	offsets := make([]int64, len(sizes))
	off := int64(headerSize)
	for i, sz := range sizes {
		offsets[i] = off
		off += align8(sz)
	}
	if off > int64(len(data)) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrFormat, off, len(data))
	}
	if int64(h.FinalLen)*64 < int64(h.States) || h.Root >= h.States {
		return nil, fmt.Errorf("%w: inconsistent header", ErrFormat)
	}
	section := func(i int) []byte {
		return data[offsets[i] : offsets[i]+sizes[i]]
	}
	d := &DAT{
		Root:  h.Root,
		Sigma: h.Sigma,
		Alphabet: PagedMap{
			Top:   sliceOf[uint32](section(0)),
			Pages: sliceOf[uint32](section(1)),
		},
		Base:  sliceOf[int32](section(2)),
		Check: sliceOf[int32](section(3)),
		Final: sliceOf[uint64](section(4)),
	}
	for _, pi := range d.Alphabet.Top {
		if pi > h.Pages {
			return nil, fmt.Errorf("%w: page index %d out of range", ErrFormat, pi)
		}
	}
	return d, nil
}

func align8(n int64) int64 {
	return (n + 7) &^ 7
}

var littleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// sliceOf views b as a slice of T if host byte order and alignment allow it,
// otherwise it decodes a copy.
func sliceOf[T uint32 | int32 | uint64](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := len(b) / size
	if n == 0 {
		return nil
	}
	if littleEndian && uintptr(unsafe.Pointer(&b[0]))%uintptr(size) == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
	}
	s := make([]T, n)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, s)
	return s
}
