package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

type PlayerNew struct {
	ID       protocol.PlayerID
	Status   protocol.PlayerStatus
	Name     string
	Type     protocol.PlaneType
	Team     protocol.TeamID
	Pos      protocol.Position
	Rot      float32
	Flag     protocol.FlagCode
	Upgrades protocol.Upgrades
}

func (*PlayerNew) Kind() Kind { return KindPlayerNew }

func (p *PlayerNew) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Status))
	w.Text(p.Name)
	w.U8(uint8(p.Type))
	w.U16(uint16(p.Team))
	w.Position(p.Pos)
	w.Rotation(p.Rot)
	w.U16(uint16(p.Flag))
	w.Upgrades(p.Upgrades)
}

func (p *PlayerNew) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Status = protocol.PlayerStatus(r.U8())
	p.Name = r.Text()
	p.Type = protocol.PlaneType(r.U8())
	p.Team = protocol.TeamID(r.U16())
	p.Pos = r.Position()
	p.Rot = r.Rotation()
	p.Flag = protocol.FlagCode(r.U16())
	p.Upgrades = r.Upgrades()
}

type PlayerLeave struct {
	ID protocol.PlayerID
}

func (*PlayerLeave) Kind() Kind { return KindPlayerLeave }

func (p *PlayerLeave) encode(w *wire.Writer) { w.U16(uint16(p.ID)) }
func (p *PlayerLeave) decode(r *wire.Reader) { p.ID = protocol.PlayerID(r.U16()) }

// PlayerUpdate is the per-tick movement update and uses the fine position
// encoding.
type PlayerUpdate struct {
	Clock    uint32
	ID       protocol.PlayerID
	Keystate protocol.KeyState
	Upgrades protocol.Upgrades
	Pos      protocol.Position
	Rot      float32
	Speed    protocol.Velocity
}

func (*PlayerUpdate) Kind() Kind { return KindPlayerUpdate }

func (p *PlayerUpdate) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.KeyState(p.Keystate)
	w.Upgrades(p.Upgrades)
	w.Position24(p.Pos)
	w.Rotation(p.Rot)
	w.Velocity(p.Speed)
}

func (p *PlayerUpdate) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.PlayerID(r.U16())
	p.Keystate = r.KeyState()
	p.Upgrades = r.Upgrades()
	p.Pos = r.Position24()
	p.Rot = r.Rotation()
	p.Speed = r.Velocity()
}

type PlayerFire struct {
	Clock       uint32
	ID          protocol.PlayerID
	Energy      float32
	EnergyRegen float32
	Projectiles []PlayerFireProjectile
}

type PlayerFireProjectile struct {
	ID       protocol.MobID
	Type     protocol.MobType
	Pos      protocol.Position
	Speed    protocol.Velocity
	Accel    protocol.Accel
	MaxSpeed float32
}

func (*PlayerFire) Kind() Kind { return KindPlayerFire }

func (p *PlayerFire) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.Energy(p.Energy)
	w.Regen(p.EnergyRegen)
	wire.WriteSmallArray(w, p.Projectiles, writeProjectile)
}

func (p *PlayerFire) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.PlayerID(r.U16())
	p.Energy = r.Energy()
	p.EnergyRegen = r.Regen()
	p.Projectiles = wire.ReadSmallArray(r, readProjectile)
}

func writeProjectile(w *wire.Writer, p PlayerFireProjectile) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.Position(p.Pos)
	w.Velocity(p.Speed)
	w.AccelVec(p.Accel)
	w.Speed(p.MaxSpeed)
}

func readProjectile(r *wire.Reader) PlayerFireProjectile {
	var p PlayerFireProjectile
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
	p.Pos = r.Position()
	p.Speed = r.Velocity()
	p.Accel = r.AccelVec()
	p.MaxSpeed = r.Speed()
	return p
}

// PlayerHit reports a missile hitting one or more players.
type PlayerHit struct {
	ID      protocol.MobID
	Type    protocol.MobType
	Pos     protocol.Position
	Owner   protocol.PlayerID
	Players []PlayerHitPlayer
}

type PlayerHitPlayer struct {
	ID          protocol.PlayerID
	Health      float32
	HealthRegen float32
}

func (*PlayerHit) Kind() Kind { return KindPlayerHit }

func (p *PlayerHit) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.Position(p.Pos)
	w.U16(uint16(p.Owner))
	wire.WriteSmallArray(w, p.Players, writeHitPlayer)
}

func (p *PlayerHit) decode(r *wire.Reader) {
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
	p.Pos = r.Position()
	p.Owner = protocol.PlayerID(r.U16())
	p.Players = wire.ReadSmallArray(r, readHitPlayer)
}

func writeHitPlayer(w *wire.Writer, p PlayerHitPlayer) {
	w.U16(uint16(p.ID))
	w.Health(p.Health)
	w.Regen(p.HealthRegen)
}

func readHitPlayer(r *wire.Reader) PlayerHitPlayer {
	var p PlayerHitPlayer
	p.ID = protocol.PlayerID(r.U16())
	p.Health = r.Health()
	p.HealthRegen = r.Regen()
	return p
}

type PlayerRespawn struct {
	ID       protocol.PlayerID
	Pos      protocol.Position
	Rot      float32
	Upgrades protocol.Upgrades
}

func (*PlayerRespawn) Kind() Kind { return KindPlayerRespawn }

func (p *PlayerRespawn) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.Position24(p.Pos)
	w.Rotation(p.Rot)
	w.Upgrades(p.Upgrades)
}

func (p *PlayerRespawn) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Pos = r.Position24()
	p.Rot = r.Rotation()
	p.Upgrades = r.Upgrades()
}

type PlayerFlag struct {
	ID   protocol.PlayerID
	Flag protocol.FlagCode
}

func (*PlayerFlag) Kind() Kind { return KindPlayerFlag }

func (p *PlayerFlag) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U16(uint16(p.Flag))
}

func (p *PlayerFlag) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Flag = protocol.FlagCode(r.U16())
}

// PlayerKill reports a death. Killer is nil when no player caused it.
type PlayerKill struct {
	ID     protocol.PlayerID
	Killer *protocol.PlayerID
	Pos    protocol.Position
}

func (*PlayerKill) Kind() Kind { return KindPlayerKill }

func (p *PlayerKill) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	wire.WriteOptionalID(w, p.Killer)
	w.Position(p.Pos)
}

func (p *PlayerKill) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Killer = wire.ReadOptionalID[protocol.PlayerID](r)
	p.Pos = r.Position()
}

// PlayerUpgrade is sent to the upgrading player only.
type PlayerUpgrade struct {
	Upgrades uint16
	Type     protocol.UpgradeType
	Speed    uint8
	Defense  uint8
	Energy   uint8
	Missile  uint8
}

func (*PlayerUpgrade) Kind() Kind { return KindPlayerUpgrade }

func (p *PlayerUpgrade) encode(w *wire.Writer) {
	w.U16(p.Upgrades)
	w.U8(uint8(p.Type))
	w.U8(p.Speed)
	w.U8(p.Defense)
	w.U8(p.Energy)
	w.U8(p.Missile)
}

func (p *PlayerUpgrade) decode(r *wire.Reader) {
	p.Upgrades = r.U16()
	p.Type = protocol.UpgradeType(r.U8())
	p.Speed = r.U8()
	p.Defense = r.U8()
	p.Energy = r.U8()
	p.Missile = r.U8()
}

type PlayerType struct {
	ID   protocol.PlayerID
	Type protocol.PlaneType
}

func (*PlayerType) Kind() Kind { return KindPlayerType }

func (p *PlayerType) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
}

func (p *PlayerType) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Type = protocol.PlaneType(r.U8())
}

type PlayerPowerup struct {
	Type     protocol.PowerupType
	Duration uint32
}

func (*PlayerPowerup) Kind() Kind { return KindPlayerPowerup }

func (p *PlayerPowerup) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.U32(p.Duration)
}

func (p *PlayerPowerup) decode(r *wire.Reader) {
	p.Type = protocol.PowerupType(r.U8())
	p.Duration = r.U32()
}

type PlayerLevel struct {
	ID    protocol.PlayerID
	Type  protocol.PlayerLevelType
	Level protocol.Level
}

func (*PlayerLevel) Kind() Kind { return KindPlayerLevel }

func (p *PlayerLevel) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.U8(uint8(p.Level))
}

func (p *PlayerLevel) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Type = protocol.PlayerLevelType(r.U8())
	p.Level = protocol.Level(r.U8())
}

type PlayerReteam struct {
	Players []PlayerReteamPlayer
}

type PlayerReteamPlayer struct {
	ID   protocol.PlayerID
	Team protocol.TeamID
}

func (*PlayerReteam) Kind() Kind { return KindPlayerReteam }

func (p *PlayerReteam) encode(w *wire.Writer) {
	wire.WriteLargeArray(w, p.Players, func(w *wire.Writer, e PlayerReteamPlayer) {
		w.U16(uint16(e.ID))
		w.U16(uint16(e.Team))
	})
}

func (p *PlayerReteam) decode(r *wire.Reader) {
	p.Players = wire.ReadLargeArray(r, func(r *wire.Reader) PlayerReteamPlayer {
		id := protocol.PlayerID(r.U16())
		team := protocol.TeamID(r.U16())
		return PlayerReteamPlayer{ID: id, Team: team}
	})
}
