// Package server holds the catalog of packets the game server sends to
// clients, and their dispatch by discriminant.
//
// Field order inside every packet is part of the version 5 wire contract.
// Reordering, inserting or dropping a field requires a new protocol version.
package server

import (
	"fmt"
	"sort"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// Kind is the leading discriminant byte of a server packet.
type Kind uint8

const (
	KindLogin               Kind = 0
	KindBackup              Kind = 1
	KindPing                Kind = 5
	KindPingResult          Kind = 6
	KindAck                 Kind = 7
	KindError               Kind = 8
	KindCommandReply        Kind = 9
	KindPlayerNew           Kind = 10
	KindPlayerLeave         Kind = 11
	KindPlayerUpdate        Kind = 12
	KindPlayerFire          Kind = 13
	KindPlayerHit           Kind = 14
	KindPlayerRespawn       Kind = 15
	KindPlayerFlag          Kind = 16
	KindPlayerKill          Kind = 17
	KindPlayerUpgrade       Kind = 18
	KindPlayerType          Kind = 19
	KindPlayerPowerup       Kind = 20
	KindPlayerLevel         Kind = 21
	KindPlayerReteam        Kind = 22
	KindGameFlag            Kind = 30
	KindGameSpectate        Kind = 31
	KindGamePlayersAlive    Kind = 32
	KindGameFirewall        Kind = 33
	KindEventRepel          Kind = 40
	KindEventBoost          Kind = 41
	KindEventBounce         Kind = 42
	KindEventStealth        Kind = 43
	KindEventLeaveHorizon   Kind = 44
	KindMobUpdate           Kind = 60
	KindMobUpdateStationary Kind = 61
	KindMobDespawn          Kind = 62
	KindMobDespawnCoords    Kind = 63
	KindChatPublic          Kind = 70
	KindChatTeam            Kind = 71
	KindChatSay             Kind = 72
	KindChatWhisper         Kind = 73
	KindChatVoteMutePassed  Kind = 78
	KindChatVoteMuted       Kind = 79
	KindScoreUpdate         Kind = 80
	KindScoreBoard          Kind = 81
	KindScoreDetailedFFA    Kind = 82
	KindScoreDetailedCTF    Kind = 83
	KindScoreDetailedBTR    Kind = 84
	KindServerMessage       Kind = 90
	KindServerCustom        Kind = 91
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
	KindLogin:               {"Login", func() Packet { return &Login{} }},
	KindBackup:              {"Backup", func() Packet { return &Backup{} }},
	KindPing:                {"Ping", func() Packet { return &Ping{} }},
	KindPingResult:          {"PingResult", func() Packet { return &PingResult{} }},
	KindAck:                 {"Ack", func() Packet { return &Ack{} }},
	KindError:               {"Error", func() Packet { return &Error{} }},
	KindCommandReply:        {"CommandReply", func() Packet { return &CommandReply{} }},
	KindPlayerNew:           {"PlayerNew", func() Packet { return &PlayerNew{} }},
	KindPlayerLeave:         {"PlayerLeave", func() Packet { return &PlayerLeave{} }},
	KindPlayerUpdate:        {"PlayerUpdate", func() Packet { return &PlayerUpdate{} }},
	KindPlayerFire:          {"PlayerFire", func() Packet { return &PlayerFire{} }},
	KindPlayerHit:           {"PlayerHit", func() Packet { return &PlayerHit{} }},
	KindPlayerRespawn:       {"PlayerRespawn", func() Packet { return &PlayerRespawn{} }},
	KindPlayerFlag:          {"PlayerFlag", func() Packet { return &PlayerFlag{} }},
	KindPlayerKill:          {"PlayerKill", func() Packet { return &PlayerKill{} }},
	KindPlayerUpgrade:       {"PlayerUpgrade", func() Packet { return &PlayerUpgrade{} }},
	KindPlayerType:          {"PlayerType", func() Packet { return &PlayerType{} }},
	KindPlayerPowerup:       {"PlayerPowerup", func() Packet { return &PlayerPowerup{} }},
	KindPlayerLevel:         {"PlayerLevel", func() Packet { return &PlayerLevel{} }},
	KindPlayerReteam:        {"PlayerReteam", func() Packet { return &PlayerReteam{} }},
	KindGameFlag:            {"GameFlag", func() Packet { return &GameFlag{} }},
	KindGameSpectate:        {"GameSpectate", func() Packet { return &GameSpectate{} }},
	KindGamePlayersAlive:    {"GamePlayersAlive", func() Packet { return &GamePlayersAlive{} }},
	KindGameFirewall:        {"GameFirewall", func() Packet { return &GameFirewall{} }},
	KindEventRepel:          {"EventRepel", func() Packet { return &EventRepel{} }},
	KindEventBoost:          {"EventBoost", func() Packet { return &EventBoost{} }},
	KindEventBounce:         {"EventBounce", func() Packet { return &EventBounce{} }},
	KindEventStealth:        {"EventStealth", func() Packet { return &EventStealth{} }},
	KindEventLeaveHorizon:   {"EventLeaveHorizon", func() Packet { return &EventLeaveHorizon{} }},
	KindMobUpdate:           {"MobUpdate", func() Packet { return &MobUpdate{} }},
	KindMobUpdateStationary: {"MobUpdateStationary", func() Packet { return &MobUpdateStationary{} }},
	KindMobDespawn:          {"MobDespawn", func() Packet { return &MobDespawn{} }},
	KindMobDespawnCoords:    {"MobDespawnCoords", func() Packet { return &MobDespawnCoords{} }},
	KindChatPublic:          {"ChatPublic", func() Packet { return &ChatPublic{} }},
	KindChatTeam:            {"ChatTeam", func() Packet { return &ChatTeam{} }},
	KindChatSay:             {"ChatSay", func() Packet { return &ChatSay{} }},
	KindChatWhisper:         {"ChatWhisper", func() Packet { return &ChatWhisper{} }},
	KindChatVoteMutePassed:  {"ChatVoteMutePassed", func() Packet { return &ChatVoteMutePassed{} }},
	KindChatVoteMuted:       {"ChatVoteMuted", func() Packet { return &ChatVoteMuted{} }},
	KindScoreUpdate:         {"ScoreUpdate", func() Packet { return &ScoreUpdate{} }},
	KindScoreBoard:          {"ScoreBoard", func() Packet { return &ScoreBoard{} }},
	KindScoreDetailedFFA:    {"ScoreDetailedFFA", func() Packet { return &ScoreDetailedFFA{} }},
	KindScoreDetailedCTF:    {"ScoreDetailedCTF", func() Packet { return &ScoreDetailedCTF{} }},
	KindScoreDetailedBTR:    {"ScoreDetailedBTR", func() Packet { return &ScoreDetailedBTR{} }},
	KindServerMessage:       {"ServerMessage", func() Packet { return &ServerMessage{} }},
	KindServerCustom:        {"ServerCustom", func() Packet { return &ServerCustom{} }},
}

func (k Kind) String() string {
	if e, ok := catalog[k]; ok {
		return e.name
	}
	return fmt.Sprintf("server.Kind(%d)", uint8(k))
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

// Catalog lists every server packet ordered by discriminant.
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
		return nil, fmt.Errorf("%w: server kind %d", protocol.ErrUnknownDiscriminant, uint8(k))
	}
	p.decode(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}
