// Package bitpack converts between byte payloads and sequences of per-grid
// transform indices. The payload is framed with a 32-bit big-endian bit
// length so trailing zero padding in the last chunk is distinguishable from
// data, then split into CapacityBits-sized integers.
package bitpack

import (
	"errors"
	"fmt"
	"math/bits"

	"svw.info/sudokode/internal/canonical"
)

// ErrFraming covers chunk streams that no Pack call could have produced.
var ErrFraming = errors.New("corrupt chunk framing")

const lengthBits = 32

// capacityBits is the payload capacity of one grid: the largest b with
// 2^b <= GroupOrder, so every chunk value indexes a distinct transform.
var capacityBits = bits.Len64(canonical.GroupOrder) - 1

// CapacityBits returns the number of payload bits one grid carries.
func CapacityBits() int { return capacityBits }

// ChunkCount returns the number of chunks Pack produces for n payload bytes.
func ChunkCount(n int) int {
	return (lengthBits + 8*n + capacityBits - 1) / capacityBits
}

// Pack splits data into chunk values in [0, 2^CapacityBits). The stream is
// the bit length followed by the payload bits, zero-padded to a chunk
// boundary. Empty input still produces one chunk holding the zero length.
func Pack(data []byte) []uint64 {
	w := writer{chunks: make([]uint64, ChunkCount(len(data)))}
	w.write(uint64(8*len(data)), lengthBits)
	for _, b := range data {
		w.write(uint64(b), 8)
	}
	return w.chunks
}

// Unpack is the exact inverse of Pack. It fails if the length header is
// inconsistent with the chunk count or any chunk is out of range.
func Unpack(chunks []uint64) ([]byte, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: missing length header", ErrFraming)
	}
	for i, c := range chunks {
		if c >= 1<<uint(capacityBits) {
			return nil, fmt.Errorf("%w: chunk %d out of range", ErrFraming, i)
		}
	}
	r := reader{chunks: chunks}
	payloadBits := int(r.read(lengthBits))
	if payloadBits%8 != 0 {
		return nil, fmt.Errorf("%w: payload length %d bits is not byte aligned", ErrFraming, payloadBits)
	}
	n := payloadBits / 8
	if want := ChunkCount(n); want != len(chunks) {
		return nil, fmt.Errorf("%w: got %d chunks, want %d for %d bytes", ErrFraming, len(chunks), want, n)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.read(8))
	}
	return out, nil
}

// writer appends bits most-significant first across the chunk sequence.
// Within a chunk, earlier stream bits occupy higher bit positions.
type writer struct {
	chunks []uint64
	pos    int
}

func (w *writer) write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			w.chunks[w.pos/capacityBits] |= 1 << uint(capacityBits-1-w.pos%capacityBits)
		}
		w.pos++
	}
}

type reader struct {
	chunks []uint64
	pos    int
}

func (r *reader) read(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		bit := r.chunks[r.pos/capacityBits] >> uint(capacityBits-1-r.pos%capacityBits) & 1
		v = v<<1 | bit
		r.pos++
	}
	return v
}
