package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

type ChatPublic struct {
	ID   protocol.PlayerID
	Text string
}

func (*ChatPublic) Kind() Kind { return KindChatPublic }

func (p *ChatPublic) encode(w *wire.Writer) { writeChat(w, p.ID, p.Text) }
func (p *ChatPublic) decode(r *wire.Reader) { p.ID, p.Text = readChat(r) }

type ChatTeam struct {
	ID   protocol.PlayerID
	Text string
}

func (*ChatTeam) Kind() Kind { return KindChatTeam }

func (p *ChatTeam) encode(w *wire.Writer) { writeChat(w, p.ID, p.Text) }
func (p *ChatTeam) decode(r *wire.Reader) { p.ID, p.Text = readChat(r) }

// ChatSay is a speech bubble above the speaker's plane.
type ChatSay struct {
	ID   protocol.PlayerID
	Text string
}

func (*ChatSay) Kind() Kind { return KindChatSay }

func (p *ChatSay) encode(w *wire.Writer) { writeChat(w, p.ID, p.Text) }
func (p *ChatSay) decode(r *wire.Reader) { p.ID, p.Text = readChat(r) }

type ChatWhisper struct {
	From protocol.PlayerID
	To   protocol.PlayerID
	Text string
}

func (*ChatWhisper) Kind() Kind { return KindChatWhisper }

func (p *ChatWhisper) encode(w *wire.Writer) {
	w.U16(uint16(p.From))
	w.U16(uint16(p.To))
	w.Text(p.Text)
}

func (p *ChatWhisper) decode(r *wire.Reader) {
	p.From = protocol.PlayerID(r.U16())
	p.To = protocol.PlayerID(r.U16())
	p.Text = r.Text()
}

type ChatVoteMutePassed struct {
	ID protocol.PlayerID
}

func (*ChatVoteMutePassed) Kind() Kind { return KindChatVoteMutePassed }

func (p *ChatVoteMutePassed) encode(w *wire.Writer) { w.U16(uint16(p.ID)) }
func (p *ChatVoteMutePassed) decode(r *wire.Reader) { p.ID = protocol.PlayerID(r.U16()) }

type ChatVoteMuted struct{}

func (*ChatVoteMuted) Kind() Kind { return KindChatVoteMuted }
func (*ChatVoteMuted) encode(w *wire.Writer) {}
func (*ChatVoteMuted) decode(r *wire.Reader) {}

func writeChat(w *wire.Writer, id protocol.PlayerID, text string) {
	w.U16(uint16(id))
	w.Text(text)
}

func readChat(r *wire.Reader) (protocol.PlayerID, string) {
	id := protocol.PlayerID(r.U16())
	return id, r.Text()
}
