package wire

import (
	"encoding/binary"
	"math"
)

// Writer appends encoded fields to an internal buffer.
type Writer struct {
	buf []byte
	err error
}

// NewWriter creates a writer with a small initial capacity.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// Bytes returns the encoded bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Err returns the first error recorded by any write.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an earlier error is already held.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) U8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

func (w *Writer) U16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *Writer) U32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// U24 writes the high 16 bits of a 24-bit value followed by the low 8 bits.
// Bits above 24 are discarded.
func (w *Writer) U24(v uint32) {
	w.U16(uint16(v >> 8))
	w.U8(uint8(v))
}

func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

func (w *Writer) raw(b []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, b...)
}
