// Package client holds the catalog of packets a game client sends to the
// server, and their dispatch by discriminant.
package client

import (
	"fmt"
	"sort"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// Kind is the leading discriminant byte of a client packet.
type Kind uint8

const (
	KindLogin         Kind = 0
	KindBackup        Kind = 1
	KindHorizon       Kind = 2
	KindAck           Kind = 5
	KindPong          Kind = 6
	KindKey           Kind = 10
	KindCommand       Kind = 11
	KindScoreDetailed Kind = 12
	KindChat          Kind = 20
	KindWhisper       Kind = 21
	KindSay           Kind = 22
	KindTeamChat      Kind = 23
	KindVoteMute      Kind = 24
	KindLocalPing     Kind = 255
)

// Packet is implemented only by the packet types of this package.
type Packet interface {
	Kind() Kind
	encode(w *wire.Writer)
	decode(r *wire.Reader)
}

type entry struct {
	name string
	new  func() Packet
}

var catalog = map[Kind]entry{
	KindLogin:         {"Login", func() Packet { return &Login{} }},
	KindBackup:        {"Backup", func() Packet { return &Backup{} }},
	KindHorizon:       {"Horizon", func() Packet { return &Horizon{} }},
	KindAck:           {"Ack", func() Packet { return &Ack{} }},
	KindPong:          {"Pong", func() Packet { return &Pong{} }},
	KindKey:           {"Key", func() Packet { return &Key{} }},
	KindCommand:       {"Command", func() Packet { return &Command{} }},
	KindScoreDetailed: {"ScoreDetailed", func() Packet { return &ScoreDetailed{} }},
	KindChat:          {"Chat", func() Packet { return &Chat{} }},
	KindWhisper:       {"Whisper", func() Packet { return &Whisper{} }},
	KindSay:           {"Say", func() Packet { return &Say{} }},
	KindTeamChat:      {"TeamChat", func() Packet { return &TeamChat{} }},
	KindVoteMute:      {"VoteMute", func() Packet { return &VoteMute{} }},
	KindLocalPing:     {"LocalPing", func() Packet { return &LocalPing{} }},
}

func (k Kind) String() string {
	if e, ok := catalog[k]; ok {
		return e.name
	}
	return fmt.Sprintf("client.Kind(%d)", uint8(k))
}

// New returns a zero packet for k.
func New(k Kind) (Packet, bool) {
	e, ok := catalog[k]
	if !ok {
		return nil, false
	}
	return e.new(), true
}

// Entry describes one catalog row.
type Entry struct {
	Kind Kind
	Name string
}

// Catalog lists every client packet ordered by discriminant.
func Catalog() []Entry {
	out := make([]Entry, 0, len(catalog))
	for k, e := range catalog {
		out = append(out, Entry{Kind: k, Name: e.name})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Encode writes the discriminant of p followed by its fields.
func Encode(w *wire.Writer, p Packet) {
	w.U8(uint8(p.Kind()))
	p.encode(w)
}

// Decode reads one packet. An unknown discriminant fails with
// protocol.ErrUnknownDiscriminant after consuming only the discriminant.
func Decode(r *wire.Reader) (Packet, error) {
	k := Kind(r.U8())
	if err := r.Err(); err != nil {
		return nil, err
	}
	p, ok := New(k)
	if !ok {
		return nil, fmt.Errorf("%w: client kind %d", protocol.ErrUnknownDiscriminant, uint8(k))
	}
	p.decode(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}
