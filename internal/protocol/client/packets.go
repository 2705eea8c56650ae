package client

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// Login is the first packet of a session.
type Login struct {
	Protocol uint8
	Name     string
	Session  string
	HorizonX uint16
	HorizonY uint16
	Flag     string
}

func (*Login) Kind() Kind { return KindLogin }

func (p *Login) encode(w *wire.Writer) {
	w.U8(p.Protocol)
	w.Text(p.Name)
	w.Text(p.Session)
	w.U16(p.HorizonX)
	w.U16(p.HorizonY)
	w.Text(p.Flag)
}

func (p *Login) decode(r *wire.Reader) {
	p.Protocol = r.U8()
	p.Name = r.Text()
	p.Session = r.Text()
	p.HorizonX = r.U16()
	p.HorizonY = r.U16()
	p.Flag = r.Text()
}

// Backup opens a secondary connection bound to an existing session token.
type Backup struct {
	Token string
}

func (*Backup) Kind() Kind { return KindBackup }

func (p *Backup) encode(w *wire.Writer) { w.Text(p.Token) }
func (p *Backup) decode(r *wire.Reader) { p.Token = r.Text() }

// Horizon reports the client's visible area.
type Horizon struct {
	HorizonX uint16
	HorizonY uint16
}

func (*Horizon) Kind() Kind { return KindHorizon }

func (p *Horizon) encode(w *wire.Writer) {
	w.U16(p.HorizonX)
	w.U16(p.HorizonY)
}

func (p *Horizon) decode(r *wire.Reader) {
	p.HorizonX = r.U16()
	p.HorizonY = r.U16()
}

type Ack struct{}

func (*Ack) Kind() Kind { return KindAck }
func (*Ack) encode(w *wire.Writer) {}
func (*Ack) decode(r *wire.Reader) {}

// Pong answers a server Ping.
type Pong struct {
	Num uint32
}

func (*Pong) Kind() Kind { return KindPong }

func (p *Pong) encode(w *wire.Writer) { w.U32(p.Num) }
func (p *Pong) decode(r *wire.Reader) { p.Num = r.U32() }

// Key reports a key press or release.
type Key struct {
	Seq   uint32
	Key   protocol.KeyCode
	State bool
}

func (*Key) Kind() Kind { return KindKey }

func (p *Key) encode(w *wire.Writer) {
	w.U32(p.Seq)
	w.U8(uint8(p.Key))
	w.Bool(p.State)
}

func (p *Key) decode(r *wire.Reader) {
	p.Seq = r.U32()
	p.Key = protocol.KeyCode(r.U8())
	p.State = r.Bool()
}

// Command carries a console command such as "respawn" or "spectate".
type Command struct {
	Com  string
	Data string
}

func (*Command) Kind() Kind { return KindCommand }

func (p *Command) encode(w *wire.Writer) {
	w.Text(p.Com)
	w.Text(p.Data)
}

func (p *Command) decode(r *wire.Reader) {
	p.Com = r.Text()
	p.Data = r.Text()
}

type ScoreDetailed struct{}

func (*ScoreDetailed) Kind() Kind { return KindScoreDetailed }
func (*ScoreDetailed) encode(w *wire.Writer) {}
func (*ScoreDetailed) decode(r *wire.Reader) {}

type Chat struct {
	Text string
}

func (*Chat) Kind() Kind { return KindChat }

func (p *Chat) encode(w *wire.Writer) { w.Text(p.Text) }
func (p *Chat) decode(r *wire.Reader) { p.Text = r.Text() }

type Whisper struct {
	ID   protocol.PlayerID
	Text string
}

func (*Whisper) Kind() Kind { return KindWhisper }

func (p *Whisper) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.Text(p.Text)
}

func (p *Whisper) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Text = r.Text()
}

type Say struct {
	Text string
}

func (*Say) Kind() Kind { return KindSay }

func (p *Say) encode(w *wire.Writer) { w.Text(p.Text) }
func (p *Say) decode(r *wire.Reader) { p.Text = r.Text() }

type TeamChat struct {
	Text string
}

func (*TeamChat) Kind() Kind { return KindTeamChat }

func (p *TeamChat) encode(w *wire.Writer) { w.Text(p.Text) }
func (p *TeamChat) decode(r *wire.Reader) { p.Text = r.Text() }

type VoteMute struct {
	ID protocol.PlayerID
}

func (*VoteMute) Kind() Kind { return KindVoteMute }

func (p *VoteMute) encode(w *wire.Writer) { w.U16(uint16(p.ID)) }
func (p *VoteMute) decode(r *wire.Reader) { p.ID = protocol.PlayerID(r.U16()) }

// LocalPing is used by same-host tooling to probe the server.
type LocalPing struct {
	Auth uint32
}

func (*LocalPing) Kind() Kind { return KindLocalPing }

func (p *LocalPing) encode(w *wire.Writer) { w.U32(p.Auth) }
func (p *LocalPing) decode(r *wire.Reader) { p.Auth = r.U32() }
