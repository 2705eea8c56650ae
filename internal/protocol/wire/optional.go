package wire

import (
	"math"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

const (
	lowResCell = 128
	lowResBias = 128
)

// WriteOptionalID writes id with zero standing in for "no entity". A present
// id of zero is indistinguishable from nil on the wire.
func WriteOptionalID[T ~uint16](w *Writer, id *T) {
	if id == nil {
		w.U16(0)
		return
	}
	w.U16(uint16(*id))
}

// ReadOptionalID returns nil for a zero id.
func ReadOptionalID[T ~uint16](r *Reader) *T {
	v := r.U16()
	if v == 0 {
		return nil
	}
	id := T(v)
	return &id
}

// LowResPosition writes an optional position as one byte per axis on a
// 128-unit grid biased by 128. Nil is written as (0, 0).
func (w *Writer) LowResPosition(p *protocol.Position) {
	if p == nil {
		w.U8(0)
		w.U8(0)
		return
	}
	w.U8(lowResEncode(p.X))
	w.U8(lowResEncode(p.Y))
}

// LowResPosition returns nil when both bytes are zero. A real position in
// the (0, 0) cell reads back as nil; clients rely on that collision.
func (r *Reader) LowResPosition() *protocol.Position {
	x := r.U8()
	y := r.U8()
	if r.err != nil || (x == 0 && y == 0) {
		return nil
	}
	return &protocol.Position{X: lowResDecode(x), Y: lowResDecode(y)}
}

func lowResEncode(v float32) uint8 {
	return uint8(int64(math.Round(float64(v)/lowResCell)) + lowResBias)
}

func lowResDecode(b uint8) float32 {
	return float32((int32(b) - lowResBias) * lowResCell)
}
