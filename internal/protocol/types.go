package protocol

// PlayerID identifies a player. Zero is an ordinary id except where a
// field is declared as an optional reference.
type PlayerID uint16

// MobID identifies a mob (missile, powerup, upgrade box).
type MobID uint16

// TeamID identifies a team.
type TeamID uint16

// FlagID identifies a CTF flag.
type FlagID uint16

// Score is a player's score.
type Score uint32

// Level is a player's account level.
type Level uint8

// Position is a world-space location.
type Position struct {
	X float32
	Y float32
}

// Velocity is a per-axis speed.
type Velocity struct {
	X float32
	Y float32
}

// Accel is a per-axis acceleration.
type Accel struct {
	X float32
	Y float32
}
