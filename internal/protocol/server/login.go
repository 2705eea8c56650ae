package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// Login answers a client Login with the session state and every player
// already in the game.
type Login struct {
	Success bool
	ID      protocol.PlayerID
	Team    protocol.TeamID
	Clock   uint32
	Token   string
	Type    protocol.GameType
	Room    string
	Players []LoginPlayer
}

// LoginPlayer is one entry of Login.Players.
type LoginPlayer struct {
	ID       protocol.PlayerID
	Status   protocol.PlayerStatus
	Level    protocol.Level
	Name     string
	Type     protocol.PlaneType
	Team     protocol.TeamID
	Pos      protocol.Position
	Rot      float32
	Flag     protocol.FlagCode
	Upgrades protocol.Upgrades
}

func (*Login) Kind() Kind { return KindLogin }

func (p *Login) encode(w *wire.Writer) {
	w.Bool(p.Success)
	w.U16(uint16(p.ID))
	w.U16(uint16(p.Team))
	w.U32(p.Clock)
	w.Text(p.Token)
	w.U8(uint8(p.Type))
	w.Text(p.Room)
	wire.WriteLargeArray(w, p.Players, writeLoginPlayer)
}

func (p *Login) decode(r *wire.Reader) {
	p.Success = r.Bool()
	p.ID = protocol.PlayerID(r.U16())
	p.Team = protocol.TeamID(r.U16())
	p.Clock = r.U32()
	p.Token = r.Text()
	p.Type = protocol.GameType(r.U8())
	p.Room = r.Text()
	p.Players = wire.ReadLargeArray(r, readLoginPlayer)
}

func writeLoginPlayer(w *wire.Writer, p LoginPlayer) {
	w.U16(uint16(p.ID))
	w.U8(uint8(p.Status))
	w.U8(uint8(p.Level))
	w.Text(p.Name)
	w.U8(uint8(p.Type))
	w.U16(uint16(p.Team))
	w.Position(p.Pos)
	w.Rotation(p.Rot)
	w.U16(uint16(p.Flag))
	w.Upgrades(p.Upgrades)
}

func readLoginPlayer(r *wire.Reader) LoginPlayer {
	var p LoginPlayer
	p.ID = protocol.PlayerID(r.U16())
	p.Status = protocol.PlayerStatus(r.U8())
	p.Level = protocol.Level(r.U8())
	p.Name = r.Text()
	p.Type = protocol.PlaneType(r.U8())
	p.Team = protocol.TeamID(r.U16())
	p.Pos = r.Position()
	p.Rot = r.Rotation()
	p.Flag = protocol.FlagCode(r.U16())
	p.Upgrades = r.Upgrades()
	return p
}

type Backup struct{}

func (*Backup) Kind() Kind { return KindBackup }
func (*Backup) encode(w *wire.Writer) {}
func (*Backup) decode(r *wire.Reader) {}

type Ping struct {
	Clock uint32
	Num   uint32
}

func (*Ping) Kind() Kind { return KindPing }

func (p *Ping) encode(w *wire.Writer) {
	w.U32(p.Clock)
	w.U32(p.Num)
}

func (p *Ping) decode(r *wire.Reader) {
	p.Clock = r.U32()
	p.Num = r.U32()
}

type PingResult struct {
	Ping         uint16
	PlayersTotal uint32
	PlayersGame  uint32
}

func (*PingResult) Kind() Kind { return KindPingResult }

func (p *PingResult) encode(w *wire.Writer) {
	w.U16(p.Ping)
	w.U32(p.PlayersTotal)
	w.U32(p.PlayersGame)
}

func (p *PingResult) decode(r *wire.Reader) {
	p.Ping = r.U16()
	p.PlayersTotal = r.U32()
	p.PlayersGame = r.U32()
}

type Ack struct{}

func (*Ack) Kind() Kind { return KindAck }
func (*Ack) encode(w *wire.Writer) {}
func (*Ack) decode(r *wire.Reader) {}

type Error struct {
	Error protocol.ErrorType
}

func (*Error) Kind() Kind { return KindError }

func (p *Error) encode(w *wire.Writer) { w.U8(uint8(p.Error)) }
func (p *Error) decode(r *wire.Reader) { p.Error = protocol.ErrorType(r.U8()) }

// CommandReply carries console output; the text may exceed 255 bytes.
type CommandReply struct {
	Type protocol.CommandReplyType
	Text string
}

func (*CommandReply) Kind() Kind { return KindCommandReply }

func (p *CommandReply) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.TextBig(p.Text)
}

func (p *CommandReply) decode(r *wire.Reader) {
	p.Type = protocol.CommandReplyType(r.U8())
	p.Text = r.TextBig()
}

type ServerMessage struct {
	Type     protocol.ServerMessageType
	Duration uint32
	Text     string
}

func (*ServerMessage) Kind() Kind { return KindServerMessage }

func (p *ServerMessage) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.U32(p.Duration)
	w.TextBig(p.Text)
}

func (p *ServerMessage) decode(r *wire.Reader) {
	p.Type = protocol.ServerMessageType(r.U8())
	p.Duration = r.U32()
	p.Text = r.TextBig()
}

// ServerCustom carries a game-mode specific payload, usually JSON.
type ServerCustom struct {
	Type protocol.ServerCustomType
	Data string
}

func (*ServerCustom) Kind() Kind { return KindServerCustom }

func (p *ServerCustom) encode(w *wire.Writer) {
	w.U8(uint8(p.Type))
	w.TextBig(p.Data)
}

func (p *ServerCustom) decode(r *wire.Reader) {
	p.Type = protocol.ServerCustomType(r.U8())
	p.Data = r.TextBig()
}
