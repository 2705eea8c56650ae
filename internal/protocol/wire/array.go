package wire

import (
	"fmt"
	"math"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

const (
	MaxSmallArray = math.MaxUint8
	MaxLargeArray = math.MaxUint16
)

// WriteSmallArray writes a u8 element count followed by each element.
// More than MaxSmallArray elements is an error; nothing is truncated.
func WriteSmallArray[T any](w *Writer, items []T, enc func(*Writer, T)) {
	if len(items) > MaxSmallArray {
		w.Fail(fmt.Errorf("%w: %d elements, small array holds %d", protocol.ErrArrayTooLarge, len(items), MaxSmallArray))
		return
	}
	w.U8(uint8(len(items)))
	for _, item := range items {
		enc(w, item)
	}
}

// WriteLargeArray writes a u16 element count followed by each element.
func WriteLargeArray[T any](w *Writer, items []T, enc func(*Writer, T)) {
	if len(items) > MaxLargeArray {
		w.Fail(fmt.Errorf("%w: %d elements, large array holds %d", protocol.ErrArrayTooLarge, len(items), MaxLargeArray))
		return
	}
	w.U16(uint16(len(items)))
	for _, item := range items {
		enc(w, item)
	}
}

// ReadSmallArray reads a u8 count then exactly that many elements.
func ReadSmallArray[T any](r *Reader, dec func(*Reader) T) []T {
	return readArray(r, int(r.U8()), dec)
}

// ReadLargeArray reads a u16 count then exactly that many elements.
func ReadLargeArray[T any](r *Reader, dec func(*Reader) T) []T {
	return readArray(r, int(r.U16()), dec)
}

func readArray[T any](r *Reader, n int, dec func(*Reader) T) []T {
	if r.err != nil || n == 0 {
		return nil
	}
	// Every element occupies at least one byte, so a count larger than the
	// remaining input cannot be satisfied.
	capHint := n
	if capHint > r.Remaining() {
		capHint = r.Remaining()
	}
	out := make([]T, 0, capHint)
	for i := 0; i < n; i++ {
		item := dec(r)
		if r.err != nil {
			return nil
		}
		out = append(out, item)
	}
	return out
}
