package server

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

type ScoreUpdate struct {
	ID          protocol.PlayerID
	Score       protocol.Score
	Earnings    uint32
	Upgrades    uint16
	TotalKills  uint32
	TotalDeaths uint32
}

func (*ScoreUpdate) Kind() Kind { return KindScoreUpdate }

func (p *ScoreUpdate) encode(w *wire.Writer) {
	w.U16(uint16(p.ID))
	w.U32(uint32(p.Score))
	w.U32(p.Earnings)
	w.U16(p.Upgrades)
	w.U32(p.TotalKills)
	w.U32(p.TotalDeaths)
}

func (p *ScoreUpdate) decode(r *wire.Reader) {
	p.ID = protocol.PlayerID(r.U16())
	p.Score = protocol.Score(r.U32())
	p.Earnings = r.U32()
	p.Upgrades = r.U16()
	p.TotalKills = r.U32()
	p.TotalDeaths = r.U32()
}

// ScoreBoard is the periodic leaderboard. Rankings carry a coarse position
// for the minimap; a nil Pos means the player is not on the map.
type ScoreBoard struct {
	Data     []ScoreBoardData
	Rankings []ScoreBoardRanking
}

type ScoreBoardData struct {
	ID    protocol.PlayerID
	Score protocol.Score
	Level protocol.Level
}

type ScoreBoardRanking struct {
	ID  protocol.PlayerID
	Pos *protocol.Position
}

func (*ScoreBoard) Kind() Kind { return KindScoreBoard }

func (p *ScoreBoard) encode(w *wire.Writer) {
	wire.WriteLargeArray(w, p.Data, func(w *wire.Writer, d ScoreBoardData) {
		w.U16(uint16(d.ID))
		w.U32(uint32(d.Score))
		w.U8(uint8(d.Level))
	})
	wire.WriteLargeArray(w, p.Rankings, func(w *wire.Writer, rk ScoreBoardRanking) {
		w.U16(uint16(rk.ID))
		w.LowResPosition(rk.Pos)
	})
}

func (p *ScoreBoard) decode(r *wire.Reader) {
	p.Data = wire.ReadLargeArray(r, func(r *wire.Reader) ScoreBoardData {
		var d ScoreBoardData
		d.ID = protocol.PlayerID(r.U16())
		d.Score = protocol.Score(r.U32())
		d.Level = protocol.Level(r.U8())
		return d
	})
	p.Rankings = wire.ReadLargeArray(r, func(r *wire.Reader) ScoreBoardRanking {
		var rk ScoreBoardRanking
		rk.ID = protocol.PlayerID(r.U16())
		rk.Pos = r.LowResPosition()
		return rk
	})
}

type ScoreDetailedFFA struct {
	Scores []ScoreDetailedFFAEntry
}

type ScoreDetailedFFAEntry struct {
	ID     protocol.PlayerID
	Level  protocol.Level
	Score  protocol.Score
	Kills  uint16
	Deaths uint16
	Damage float32
	Ping   uint16
}

func (*ScoreDetailedFFA) Kind() Kind { return KindScoreDetailedFFA }

func (p *ScoreDetailedFFA) encode(w *wire.Writer) {
	wire.WriteLargeArray(w, p.Scores, func(w *wire.Writer, e ScoreDetailedFFAEntry) {
		w.U16(uint16(e.ID))
		w.U8(uint8(e.Level))
		w.U32(uint32(e.Score))
		w.U16(e.Kills)
		w.U16(e.Deaths)
		w.F32(e.Damage)
		w.U16(e.Ping)
	})
}

func (p *ScoreDetailedFFA) decode(r *wire.Reader) {
	p.Scores = wire.ReadLargeArray(r, func(r *wire.Reader) ScoreDetailedFFAEntry {
		var e ScoreDetailedFFAEntry
		e.ID = protocol.PlayerID(r.U16())
		e.Level = protocol.Level(r.U8())
		e.Score = protocol.Score(r.U32())
		e.Kills = r.U16()
		e.Deaths = r.U16()
		e.Damage = r.F32()
		e.Ping = r.U16()
		return e
	})
}

type ScoreDetailedCTF struct {
	Scores []ScoreDetailedCTFEntry
}

type ScoreDetailedCTFEntry struct {
	ID       protocol.PlayerID
	Level    protocol.Level
	Captures uint16
	Score    protocol.Score
	Kills    uint16
	Deaths   uint16
	Damage   float32
	Ping     uint16
}

func (*ScoreDetailedCTF) Kind() Kind { return KindScoreDetailedCTF }

func (p *ScoreDetailedCTF) encode(w *wire.Writer) {
	wire.WriteLargeArray(w, p.Scores, func(w *wire.Writer, e ScoreDetailedCTFEntry) {
		w.U16(uint16(e.ID))
		w.U8(uint8(e.Level))
		w.U16(e.Captures)
		w.U32(uint32(e.Score))
		w.U16(e.Kills)
		w.U16(e.Deaths)
		w.F32(e.Damage)
		w.U16(e.Ping)
	})
}

func (p *ScoreDetailedCTF) decode(r *wire.Reader) {
	p.Scores = wire.ReadLargeArray(r, func(r *wire.Reader) ScoreDetailedCTFEntry {
		var e ScoreDetailedCTFEntry
		e.ID = protocol.PlayerID(r.U16())
		e.Level = protocol.Level(r.U8())
		e.Captures = r.U16()
		e.Score = protocol.Score(r.U32())
		e.Kills = r.U16()
		e.Deaths = r.U16()
		e.Damage = r.F32()
		e.Ping = r.U16()
		return e
	})
}

type ScoreDetailedBTR struct {
	Scores []ScoreDetailedBTREntry
}

type ScoreDetailedBTREntry struct {
	ID     protocol.PlayerID
	Level  protocol.Level
	Alive  bool
	Wins   uint16
	Score  protocol.Score
	Kills  uint16
	Deaths uint16
	Damage float32
	Ping   uint16
}

func (*ScoreDetailedBTR) Kind() Kind { return KindScoreDetailedBTR }

func (p *ScoreDetailedBTR) encode(w *wire.Writer) {
	wire.WriteLargeArray(w, p.Scores, func(w *wire.Writer, e ScoreDetailedBTREntry) {
		w.U16(uint16(e.ID))
		w.U8(uint8(e.Level))
		w.Bool(e.Alive)
		w.U16(e.Wins)
		w.U32(uint32(e.Score))
		w.U16(e.Kills)
		w.U16(e.Deaths)
		w.F32(e.Damage)
		w.U16(e.Ping)
	})
}

func (p *ScoreDetailedBTR) decode(r *wire.Reader) {
	p.Scores = wire.ReadLargeArray(r, func(r *wire.Reader) ScoreDetailedBTREntry {
		var e ScoreDetailedBTREntry
		e.ID = protocol.PlayerID(r.U16())
		e.Level = protocol.Level(r.U8())
		e.Alive = r.Bool()
		e.Wins = r.U16()
		e.Score = protocol.Score(r.U32())
		e.Kills = r.U16()
		e.Deaths = r.U16()
		e.Damage = r.F32()
		e.Ping = r.U16()
		return e
	})
}
