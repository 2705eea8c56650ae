package quant

import (
	"math"
	"testing"
)

func TestHealthLiterals(t *testing.T) {
	if got := EncodeHealth(1.0); got != 255 {
		t.Fatalf("EncodeHealth(1.0) = %d, want 255", got)
	}
	if got := DecodeHealth(255); got != 1.0 {
		t.Fatalf("DecodeHealth(255) = %v, want 1.0", got)
	}
	if got := EncodeHealth(0.0); got != 0 {
		t.Fatalf("EncodeHealth(0.0) = %d, want 0", got)
	}
	if EncodeEnergy(0.5) != EncodeHealth(0.5) || DecodeEnergy(200) != DecodeHealth(200) {
		t.Fatalf("energy must share the health codec")
	}
}

func TestSpeedLiterals(t *testing.T) {
	if got := DecodeSpeed(32768); got != 0.0 {
		t.Fatalf("DecodeSpeed(32768) = %v, want 0", got)
	}
	if got := EncodeSpeed(0.0); got != 32768 {
		t.Fatalf("EncodeSpeed(0.0) = %d, want 32768", got)
	}
}

func TestShiftedCodecsCenterOnZero(t *testing.T) {
	if EncodeCoord(0) != 32768 || EncodeAccel(0) != 32768 || EncodeRegen(0) != 32768 {
		t.Fatalf("16-bit shifted codecs must map 0 to 32768")
	}
	if EncodeCoord24(0) != 8388608 {
		t.Fatalf("EncodeCoord24(0) = %d, want 8388608", EncodeCoord24(0))
	}
	if EncodeRotation(0) != 0 {
		t.Fatalf("EncodeRotation(0) = %d, want 0", EncodeRotation(0))
	}
}

func TestTruncatesTowardZero(t *testing.T) {
	// -1.3*4 = -5.2 truncates to -5, not -6.
	if got := EncodeCoord(-1.3); got != 32763 {
		t.Fatalf("EncodeCoord(-1.3) = %d, want 32763", got)
	}
	if got := EncodeCoord(1.3); got != 32773 {
		t.Fatalf("EncodeCoord(1.3) = %d, want 32773", got)
	}
	if got := EncodeHealth(0.999); got != 254 {
		t.Fatalf("EncodeHealth(0.999) = %d, want 254", got)
	}
}

func TestOutOfRangeWraps(t *testing.T) {
	// 8192*4 + 32768 = 65536 wraps to 0.
	if got := EncodeCoord(8192); got != 0 {
		t.Fatalf("EncodeCoord(8192) = %d, want 0", got)
	}
	// -0.1 rad -> trunc(-655.36) = -655 -> 65536-655.
	if got := EncodeRotation(-0.1); got != 64881 {
		t.Fatalf("EncodeRotation(-0.1) = %d, want 64881", got)
	}
	if got := DecodeRotation(64881); math.Abs(float64(got)-64881/6553.6) > RotationStep {
		t.Fatalf("DecodeRotation must be a plain divide, got %v", got)
	}
	if got := EncodeHealth(2.0); got != 254 {
		t.Fatalf("EncodeHealth(2.0) = %d, want 510 mod 256 = 254", got)
	}
}

type codec16 struct {
	name   string
	encode func(float32) uint16
	decode func(uint16) float32
	step   float64
	shift  int64
	mult   float64
}

var codecs16 = []codec16{
	{"coord", EncodeCoord, DecodeCoord, CoordStep, coordShift, coordMult},
	{"rotation", EncodeRotation, DecodeRotation, RotationStep, 0, rotationMult},
	{"speed", EncodeSpeed, DecodeSpeed, SpeedStep, speedShift, speedMult},
	{"accel", EncodeAccel, DecodeAccel, AccelStep, accelShift, accelMult},
	{"regen", EncodeRegen, DecodeRegen, RegenStep, regenShift, regenMult},
}

func TestQuantizationIsIdempotent16(t *testing.T) {
	for _, c := range codecs16 {
		for n := 0; n <= math.MaxUint16; n++ {
			raw := uint16(n)
			v := c.decode(raw)
			if got := c.encode(v); got != raw {
				t.Fatalf("%s: encode(decode(%d)) = %d", c.name, raw, got)
			}
			exact := float64(int64(raw)-c.shift) / c.mult
			if math.Abs(float64(v)-exact) > c.step {
				t.Fatalf("%s: decode(%d) = %v, want within %v of %v", c.name, raw, v, c.step, exact)
			}
		}
	}
}

func TestHealthIsIdempotent(t *testing.T) {
	for n := 0; n <= math.MaxUint8; n++ {
		raw := uint8(n)
		if got := EncodeHealth(DecodeHealth(raw)); got != raw {
			t.Fatalf("encode(decode(%d)) = %d", raw, got)
		}
	}
}

func TestCoord24IsIdempotent(t *testing.T) {
	for n := 0; n <= Coord24Max; n += 97 {
		raw := uint32(n)
		if got := EncodeCoord24(DecodeCoord24(raw)); got != raw {
			t.Fatalf("encode(decode(%d)) = %d", raw, got)
		}
	}
}

func TestRoundTripWithinStep(t *testing.T) {
	values := []float32{0, 1, -1, 0.3, -0.3, 123.456, -4096.75, 8000.1}
	for _, v := range values {
		if got := DecodeCoord(EncodeCoord(v)); math.Abs(float64(got-v)) >= CoordStep {
			t.Fatalf("coord %v -> %v", v, got)
		}
		if got := DecodeCoord24(EncodeCoord24(v)); math.Abs(float64(got-v)) >= Coord24Step {
			t.Fatalf("coord24 %v -> %v", v, got)
		}
	}
	speeds := []float32{0, 1.5, -1.5, 10, -19.9}
	for _, v := range speeds {
		if got := DecodeSpeed(EncodeSpeed(v)); math.Abs(float64(got-v)) >= SpeedStep {
			t.Fatalf("speed %v -> %v", v, got)
		}
	}
	accels := []float32{0, 0.25, -0.9, 0.105}
	for _, v := range accels {
		if got := DecodeAccel(EncodeAccel(v)); math.Abs(float64(got-v)) >= AccelStep {
			t.Fatalf("accel %v -> %v", v, got)
		}
	}
	rotations := []float32{0, 1, 3.14159, 6.2}
	for _, v := range rotations {
		if got := DecodeRotation(EncodeRotation(v)); math.Abs(float64(got-v)) >= RotationStep {
			t.Fatalf("rotation %v -> %v", v, got)
		}
	}
	if got := EncodeRegen(0.0005); got != 33268 {
		t.Fatalf("EncodeRegen(0.0005) = %d, want 33268", got)
	}
}

func TestCoord24MasksHighBits(t *testing.T) {
	if DecodeCoord24(0xFF000000|8388608) != 0 {
		t.Fatalf("bits above 24 must be ignored")
	}
	if EncodeCoord24(-16384) != 0 {
		t.Fatalf("EncodeCoord24(-16384) = %d, want 0", EncodeCoord24(-16384))
	}
}

// Inputs whose exact product lies just below an integer. Each must
// truncate to the integer below; a lower-precision multiply rounds them up.
func TestEncodeNearTruncationBoundary(t *testing.T) {
	rotations := []struct {
		in   float32
		want uint16
	}{
		{0.00015258788, 0},
		{0.50003046, 3276},
		{3.1416318, 20588},
		{6.282806, 41174},
	}
	for _, tc := range rotations {
		if got := EncodeRotation(tc.in); got != tc.want {
			t.Fatalf("EncodeRotation(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}

	speeds := []struct {
		in   float32
		want uint16
	}{
		{0.0006103515, 32768},
		{0.9997558, 34405},
		{-1.0003661, 31130},
		{9.999999, 49151},
		{-9.999999, 16385},
		{10, 49152},
		{-10, 16384},
	}
	for _, tc := range speeds {
		if got := EncodeSpeed(tc.in); got != tc.want {
			t.Fatalf("EncodeSpeed(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
