package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

// Reader decodes fields from a byte slice using a local cursor.
type Reader struct {
	buf []byte
	pos int
	err error
}

// NewReader creates a reader over buf. The reader never writes to buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Offset returns the current read offset.
func (r *Reader) Offset() int {
	return r.pos
}

// Err returns the first error recorded by any read.
func (r *Reader) Err() error {
	return r.err
}

// Fail records err unless an earlier error is already held.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// take returns the next n bytes, or nil after recording an underrun.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > r.Remaining() {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", protocol.ErrUnderrun, n, r.pos, r.Remaining())
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// U24 reads a 16-bit high part then an 8-bit low part.
func (r *Reader) U24() uint32 {
	hi := r.U16()
	lo := r.U8()
	return uint32(hi)<<8 | uint32(lo)
}

func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

// Bool treats any non-zero byte as true.
func (r *Reader) Bool() bool {
	return r.U8() != 0
}
