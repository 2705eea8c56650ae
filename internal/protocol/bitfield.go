package protocol

import "fmt"

const maxUpgradeSpeed = 7

// Upgrades packs a player's visible upgrade state into one byte:
// bits 0-2 speed level, bit 3 shield, bit 4 inferno.
type Upgrades struct {
	Speed   uint8
	Shield  bool
	Inferno bool
}

// Pack returns the wire byte. Speed above 7 cannot be represented and is a
// caller bug, so Pack panics rather than silently dropping bits.
func (u Upgrades) Pack() uint8 {
	if u.Speed > maxUpgradeSpeed {
		panic(fmt.Sprintf("protocol: upgrades speed %d exceeds 3-bit field", u.Speed))
	}
	b := u.Speed
	if u.Shield {
		b |= 1 << 3
	}
	if u.Inferno {
		b |= 1 << 4
	}
	return b
}

// UnpackUpgrades is the inverse of Pack. Bits 5-7 are ignored.
func UnpackUpgrades(b uint8) Upgrades {
	return Upgrades{
		Speed:   b & maxUpgradeSpeed,
		Shield:  b&(1<<3) != 0,
		Inferno: b&(1<<4) != 0,
	}
}

// KeyState is the server-side view of a player's held keys and modes.
type KeyState uint8

const (
	KeyStateUp KeyState = 1 << iota
	KeyStateDown
	KeyStateLeft
	KeyStateRight
	KeyStateBoost
	KeyStateStrafe
	KeyStateStealth
	KeyStateFlagSpeed
)

// Has reports whether every bit of flag is set.
func (k KeyState) Has(flag KeyState) bool {
	return k&flag == flag
}
