// Package quant maps physical quantities to the fixed-width integers carried
// on the wire and back.
//
// Every pair follows encoded = trunc(v*mult) + shift and
// value = (encoded - shift) / mult. Nothing is clamped: a value outside a
// codec's range wraps through the integer conversion, and clients depend on
// that exact bit pattern.
package quant

import "math"

const (
	coordShift = 32768
	coordMult  = 4.0

	coord24Shift = 8388608
	coord24Mult  = 512.0

	rotationMult = 6553.6

	speedShift = 32768
	speedMult  = 1638.4

	accelShift = 32768
	accelMult  = 32768.0

	healthMult = 255.0

	regenShift = 32768
	regenMult  = 1.0e6
)

// Quantization steps, the largest error a single round trip may introduce.
const (
	CoordStep    = 1 / coordMult
	Coord24Step  = 1 / coord24Mult
	RotationStep = 1 / rotationMult
	SpeedStep    = 1 / speedMult
	AccelStep    = 1 / accelMult
	HealthStep   = 1 / healthMult
	RegenStep    = 1 / regenMult
)

// Coord24Max is the largest raw value of a 24-bit coordinate.
const Coord24Max = 1<<24 - 1

// scaled truncates v*mult toward zero, computed in float64.
func scaled(v float32, mult float64) int64 {
	return int64(float64(v) * mult)
}

// unscaled returns the float32 nearest raw/mult, stepped one ulp away from
// zero when the nearest value would truncate back to raw-1.
func unscaled(raw int64, mult float64) float32 {
	v := float32(float64(raw) / mult)
	if scaled(v, mult) == raw {
		return v
	}
	if raw > 0 {
		return math.Nextafter32(v, float32(math.Inf(1)))
	}
	return math.Nextafter32(v, float32(math.Inf(-1)))
}

func EncodeCoord(v float32) uint16 {
	return uint16(scaled(v, coordMult) + coordShift)
}

func DecodeCoord(raw uint16) float32 {
	return unscaled(int64(raw)-coordShift, coordMult)
}

// EncodeCoord24 returns a value in the low 24 bits of the result.
func EncodeCoord24(v float32) uint32 {
	return uint32(scaled(v, coord24Mult)+coord24Shift) & Coord24Max
}

// DecodeCoord24 ignores bits above the low 24.
func DecodeCoord24(raw uint32) float32 {
	return unscaled(int64(raw&Coord24Max)-coord24Shift, coord24Mult)
}

// EncodeRotation has no offset: negative angles wrap to the top of the
// uint16 range and decode back as large positive angles.
func EncodeRotation(v float32) uint16 {
	return uint16(scaled(v, rotationMult))
}

func DecodeRotation(raw uint16) float32 {
	return unscaled(int64(raw), rotationMult)
}

func EncodeSpeed(v float32) uint16 {
	return uint16(scaled(v, speedMult) + speedShift)
}

func DecodeSpeed(raw uint16) float32 {
	return unscaled(int64(raw)-speedShift, speedMult)
}

func EncodeAccel(v float32) uint16 {
	return uint16(scaled(v, accelMult) + accelShift)
}

func DecodeAccel(raw uint16) float32 {
	return unscaled(int64(raw)-accelShift, accelMult)
}

// EncodeHealth quantizes a 0..1 fraction.
func EncodeHealth(v float32) uint8 {
	return uint8(scaled(v, healthMult))
}

func DecodeHealth(raw uint8) float32 {
	return unscaled(int64(raw), healthMult)
}

// Energy shares the health encoding.
func EncodeEnergy(v float32) uint8   { return EncodeHealth(v) }
func DecodeEnergy(raw uint8) float32 { return DecodeHealth(raw) }

// EncodeRegen quantizes a per-tick regeneration rate.
func EncodeRegen(v float32) uint16 {
	return uint16(scaled(v, regenMult) + regenShift)
}

func DecodeRegen(raw uint16) float32 {
	return unscaled(int64(raw)-regenShift, regenMult)
}
