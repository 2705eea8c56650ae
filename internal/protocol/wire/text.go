package wire

import (
	"fmt"
	"unicode/utf8"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

// Text writes s as a small byte array, so at most 255 bytes of UTF-8.
func (w *Writer) Text(s string) {
	if len(s) > MaxSmallArray {
		w.Fail(fmt.Errorf("%w: text of %d bytes, small text holds %d", protocol.ErrArrayTooLarge, len(s), MaxSmallArray))
		return
	}
	w.U8(uint8(len(s)))
	w.raw([]byte(s))
}

// TextBig writes s as a large byte array, at most 65535 bytes.
func (w *Writer) TextBig(s string) {
	if len(s) > MaxLargeArray {
		w.Fail(fmt.Errorf("%w: text of %d bytes, large text holds %d", protocol.ErrArrayTooLarge, len(s), MaxLargeArray))
		return
	}
	w.U16(uint16(len(s)))
	w.raw([]byte(s))
}

func (r *Reader) Text() string {
	return r.text(int(r.U8()))
}

func (r *Reader) TextBig() string {
	return r.text(int(r.U16()))
}

func (r *Reader) text(n int) string {
	if r.err != nil {
		return ""
	}
	start := r.pos
	b := r.take(n)
	if r.err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		r.err = fmt.Errorf("%w: %d bytes at offset %d", protocol.ErrInvalidUTF8, n, start)
		return ""
	}
	return string(b)
}
