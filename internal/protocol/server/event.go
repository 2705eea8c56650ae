package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// EventRepel is emitted when a goliath repels nearby players and missiles.
type EventRepel struct {
	Clock       uint32
	ID          protocol.PlayerID
	Pos         protocol.Position
	Rot         float32
	Speed       protocol.Velocity
	Energy      float32
	EnergyRegen float32
	Players     []EventRepelPlayer
	Mobs        []EventRepelMob
}

type EventRepelPlayer struct {
	ID          protocol.PlayerID
	Keystate    protocol.KeyState
	Pos         protocol.Position
	Rot         float32
	Speed       protocol.Velocity
	Energy      float32
	EnergyRegen float32
	Health      float32
	HealthRegen float32
}

type EventRepelMob struct {
	ID       protocol.MobID
	Type     protocol.MobType
	Pos      protocol.Position
	Speed    protocol.Velocity
	Accel    protocol.Accel
	MaxSpeed float32
}

func (*EventRepel) Kind() Kind { return KindEventRepel }

func (p *EventRepel) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.Position(p.Pos)
	w.Rotation(p.Rot)
	w.Velocity(p.Speed)
	w.Energy(p.Energy)
	w.Regen(p.EnergyRegen)
	wire.WriteSmallArray(w, p.Players, writeRepelPlayer)
	wire.WriteSmallArray(w, p.Mobs, writeRepelMob)
}

func (p *EventRepel) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.PlayerID(r.U16())
	p.Pos = r.Position()
	p.Rot = r.Rotation()
	p.Speed = r.Velocity()
	p.Energy = r.Energy()
	p.EnergyRegen = r.Regen()
	p.Players = wire.ReadSmallArray(r, readRepelPlayer)
	p.Mobs = wire.ReadSmallArray(r, readRepelMob)
}

func writeRepelPlayer(w *wire.Writer, p EventRepelPlayer) {
	w.U16(uint16(p.ID))
	w.KeyState(p.Keystate)
	w.Position(p.Pos)
	w.Rotation(p.Rot)
	w.Velocity(p.Speed)
	w.Energy(p.Energy)
	w.Regen(p.EnergyRegen)
	w.Health(p.Health)
	w.Regen(p.HealthRegen)
}

func readRepelPlayer(r *wire.Reader) EventRepelPlayer {
	var p EventRepelPlayer
	p.ID = protocol.PlayerID(r.U16())
	p.Keystate = r.KeyState()
	p.Pos = r.Position()
	p.Rot = r.Rotation()
	p.Speed = r.Velocity()
	p.Energy = r.Energy()
	p.EnergyRegen = r.Regen()
	p.Health = r.Health()
	p.HealthRegen = r.Regen()
	return p
}

// Repelled mobs share the projectile layout of PlayerFire.
func writeRepelMob(w *wire.Writer, m EventRepelMob) {
	writeProjectile(w, PlayerFireProjectile(m))
}

func readRepelMob(r *wire.Reader) EventRepelMob {
	return EventRepelMob(readProjectile(r))
}

type EventBoost struct {
	Clock       uint32
	ID          protocol.PlayerID
	Boost       bool
	Pos         protocol.Position
	Rot         float32
	Speed       protocol.Velocity
	Energy      float32
	EnergyRegen float32
}

func (*EventBoost) Kind() Kind { return KindEventBoost }

func (p *EventBoost) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.Bool(p.Boost)
	w.Position24(p.Pos)
	w.Rotation(p.Rot)
	w.Velocity(p.Speed)
	w.Energy(p.Energy)
	w.Regen(p.EnergyRegen)
}

func (p *EventBoost) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.PlayerID(r.U16())
	p.Boost = r.Bool()
	p.Pos = r.Position24()
	p.Rot = r.Rotation()
	p.Speed = r.Velocity()
	p.Energy = r.Energy()
	p.EnergyRegen = r.Regen()
}

type EventBounce struct {
	Clock    uint32
	ID       protocol.PlayerID
	Keystate protocol.KeyState
	Pos      protocol.Position
	Rot      float32
	Speed    protocol.Velocity
}

func (*EventBounce) Kind() Kind { return KindEventBounce }

func (p *EventBounce) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.KeyState(p.Keystate)
	w.Position24(p.Pos)
	w.Rotation(p.Rot)
	w.Velocity(p.Speed)
}

func (p *EventBounce) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.PlayerID(r.U16())
	p.Keystate = r.KeyState()
	p.Pos = r.Position24()
	p.Rot = r.Rotation()
	p.Speed = r.Velocity()
}

type EventStealth struct {
	ID          protocol.PlayerID
	State       bool
	Energy      float32
	EnergyRegen float32
}

func (*EventStealth) Kind() Kind { return KindEventStealth }

func (p *EventStealth) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.Bool(p.State)
	w.Energy(p.Energy)
	w.Regen(p.EnergyRegen)
}

func (p *EventStealth) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.State = r.Bool()
	p.Energy = r.Energy()
	p.EnergyRegen = r.Regen()
}

// EventLeaveHorizon carries either a player or a mob id depending on Type,
// so ID is left untyped.
type EventLeaveHorizon struct {
	Type protocol.LeaveHorizonType
	ID   uint16
}

func (*EventLeaveHorizon) Kind() Kind { return KindEventLeaveHorizon }

func (p *EventLeaveHorizon) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.U16(p.ID)
}

func (p *EventLeaveHorizon) decode(r *wire.Reader) {
	p.Type = protocol.LeaveHorizonType(r.U8())
	p.ID = r.U16()
}
