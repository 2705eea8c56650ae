package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

type MobUpdate struct {
	Clock    uint32
	ID       protocol.MobID
	Type     protocol.MobType
	Pos      protocol.Position
	Speed    protocol.Velocity
	Accel    protocol.Accel
	MaxSpeed float32
}

func (*MobUpdate) Kind() Kind { return KindMobUpdate }

func (p *MobUpdate) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.Position(p.Pos)
	w.Velocity(p.Speed)
	w.AccelVec(p.Accel)
	w.Speed(p.MaxSpeed)
}

func (p *MobUpdate) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
	p.Pos = r.Position()
	p.Speed = r.Velocity()
	p.Accel = r.AccelVec()
	p.MaxSpeed = r.Speed()
}

// MobUpdateStationary places a powerup or other static mob. Its position is
// sent unquantized.
type MobUpdateStationary struct {
	ID   protocol.MobID
	Type protocol.MobType
	Pos  protocol.Position
}

func (*MobUpdateStationary) Kind() Kind { return KindMobUpdateStationary }

func (p *MobUpdateStationary) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.PositionF32(p.Pos)
}

func (p *MobUpdateStationary) decode(r *wire.Reader) {
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
	p.Pos = r.PositionF32()
}

type MobDespawn struct {
	ID   protocol.MobID
	Type protocol.MobType
}

func (*MobDespawn) Kind() Kind { return KindMobDespawn }

func (p *MobDespawn) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
}

func (p *MobDespawn) decode(r *wire.Reader) {
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
}

type MobDespawnCoords struct {
	ID   protocol.MobID
	Type protocol.MobType
	Pos  protocol.Position
}

func (*MobDespawnCoords) Kind() Kind { return KindMobDespawnCoords }

func (p *MobDespawnCoords) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Type))
	w.Position(p.Pos)
}

func (p *MobDespawnCoords) decode(r *wire.Reader) {
	p.ID = protocol.MobID(r.U16())
	p.Type = protocol.MobType(r.U8())
	p.Pos = r.Position()
}
