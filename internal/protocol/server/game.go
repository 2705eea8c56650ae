package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// GameFlag moves a CTF flag. ID is the carrier, nil when the flag is free.
type GameFlag struct {
	Type     protocol.FlagUpdateType
	Flag     protocol.FlagID
	ID       *protocol.PlayerID
	Pos      protocol.Position
	BlueTeam uint8
	RedTeam  uint8
}

func (*GameFlag) Kind() Kind { return KindGameFlag }

func (p *GameFlag) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.U16(uint16(p.Flag))
	wire.WriteOptionalID(w, p.ID)
	w.Position24(p.Pos)
	w.U8(p.BlueTeam)
	w.U8(p.RedTeam)
}

func (p *GameFlag) decode(r *wire.Reader) {
	p.Type = protocol.FlagUpdateType(r.U8())
	p.Flag = protocol.FlagID(r.U16())
	p.ID = wire.ReadOptionalID[protocol.PlayerID](r)
	p.Pos = r.Position24()
	p.BlueTeam = r.U8()
	p.RedTeam = r.U8()
}

type GameSpectate struct {
	ID protocol.PlayerID
}

func (*GameSpectate) Kind() Kind { return KindGameSpectate }

func (p *GameSpectate) encode(w *wire.Writer) { w.U16(uint16(p.ID)) }
func (p *GameSpectate) decode(r *wire.Reader) { p.ID = protocol.PlayerID(r.U16()) }

type GamePlayersAlive struct {
	Players uint16
}

func (*GamePlayersAlive) Kind() Kind { return KindGamePlayersAlive }

func (p *GamePlayersAlive) encode(w *wire.Writer) { w.U16(p.Players) }
func (p *GamePlayersAlive) decode(r *wire.Reader) { p.Players = r.U16() }

// GameFirewall describes the shrinking battle-royale boundary. Radius and
// Speed are sent as raw float32.
type GameFirewall struct {
	Type   protocol.FirewallUpdateType
	Status protocol.FirewallStatus
	Pos    protocol.Position
	Radius float32
	Speed  float32
}

func (*GameFirewall) Kind() Kind { return KindGameFirewall }

func (p *GameFirewall) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.U8(uint8(p.Status))
	w.Position(p.Pos)
	w.F32(p.Radius)
	w.F32(p.Speed)
}

func (p *GameFirewall) decode(r *wire.Reader) {
	p.Type = protocol.FirewallUpdateType(r.U8())
	p.Status = protocol.FirewallStatus(r.U8())
	p.Pos = r.Position()
	p.Radius = r.F32()
	p.Speed = r.F32()
}
