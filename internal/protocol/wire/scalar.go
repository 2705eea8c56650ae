package wire

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/quant"
)

// Quantized scalars. Each method is the field-level form of a quant pair.

func (w *Writer) Coord(v float32)    { w.U16(quant.EncodeCoord(v)) }
func (w *Writer) Coord24(v float32)  { w.U24(quant.EncodeCoord24(v)) }
func (w *Writer) Rotation(v float32) { w.U16(quant.EncodeRotation(v)) }
func (w *Writer) Speed(v float32)    { w.U16(quant.EncodeSpeed(v)) }
func (w *Writer) Accel(v float32)    { w.U16(quant.EncodeAccel(v)) }
func (w *Writer) Health(v float32)   { w.U8(quant.EncodeHealth(v)) }
func (w *Writer) Energy(v float32)   { w.U8(quant.EncodeEnergy(v)) }
func (w *Writer) Regen(v float32)    { w.U16(quant.EncodeRegen(v)) }

func (r *Reader) Coord() float32    { return quant.DecodeCoord(r.U16()) }
func (r *Reader) Coord24() float32  { return quant.DecodeCoord24(r.U24()) }
func (r *Reader) Rotation() float32 { return quant.DecodeRotation(r.U16()) }
func (r *Reader) Speed() float32    { return quant.DecodeSpeed(r.U16()) }
func (r *Reader) Accel() float32    { return quant.DecodeAccel(r.U16()) }
func (r *Reader) Health() float32   { return quant.DecodeHealth(r.U8()) }
func (r *Reader) Energy() float32   { return quant.DecodeEnergy(r.U8()) }
func (r *Reader) Regen() float32    { return quant.DecodeRegen(r.U16()) }

// Vectors are always written X then Y.

// Position writes a coarse 16-bit-per-axis position.
func (w *Writer) Position(p protocol.Position) {
	w.Coord(p.X)
	w.Coord(p.Y)
}

// Position24 writes a fine 24-bit-per-axis position.
func (w *Writer) Position24(p protocol.Position) {
	w.Coord24(p.X)
	w.Coord24(p.Y)
}

// PositionF32 writes a position losslessly as two IEEE-754 floats.
func (w *Writer) PositionF32(p protocol.Position) {
	w.F32(p.X)
	w.F32(p.Y)
}

func (w *Writer) Velocity(v protocol.Velocity) {
	w.Speed(v.X)
	w.Speed(v.Y)
}

func (w *Writer) AccelVec(a protocol.Accel) {
	w.Accel(a.X)
	w.Accel(a.Y)
}

func (r *Reader) Position() protocol.Position {
	x := r.Coord()
	y := r.Coord()
	return protocol.Position{X: x, Y: y}
}

func (r *Reader) Position24() protocol.Position {
	x := r.Coord24()
	y := r.Coord24()
	return protocol.Position{X: x, Y: y}
}

func (r *Reader) PositionF32() protocol.Position {
	x := r.F32()
	y := r.F32()
	return protocol.Position{X: x, Y: y}
}

func (r *Reader) Velocity() protocol.Velocity {
	x := r.Speed()
	y := r.Speed()
	return protocol.Velocity{X: x, Y: y}
}

func (r *Reader) AccelVec() protocol.Accel {
	x := r.Accel()
	y := r.Accel()
	return protocol.Accel{X: x, Y: y}
}

// Upgrades writes the packed upgrade byte. It panics on a speed that does not
// fit its 3-bit field.
func (w *Writer) Upgrades(u protocol.Upgrades) { w.U8(u.Pack()) }

func (r *Reader) Upgrades() protocol.Upgrades { return protocol.UnpackUpgrades(r.U8()) }

func (w *Writer) KeyState(k protocol.KeyState) { w.U8(uint8(k)) }

func (r *Reader) KeyState() protocol.KeyState { return protocol.KeyState(r.U8()) }
