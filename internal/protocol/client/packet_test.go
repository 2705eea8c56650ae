package client

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

func samplePackets() []Packet {
	return []Packet{
		&Login{Protocol: 5, Name: "pilot", Session: "none", HorizonX: 1920, HorizonY: 1080, Flag: "GB"},
		&Backup{Token: "tok-123"},
		&Horizon{HorizonX: 3000, HorizonY: 2000},
		&Ack{},
		&Pong{Num: 0xDEADBEEF},
		&Key{Seq: 42, Key: protocol.KeyFire, State: true},
		&Command{Com: "respawn", Data: "3"},
		&ScoreDetailed{},
		&Chat{Text: "gg"},
		&Whisper{ID: 7, Text: "hi"},
		&Say{Text: "hello world"},
		&TeamChat{Text: "defend"},
		&VoteMute{ID: 99},
		&LocalPing{Auth: 1},
	}
}

func TestEveryCatalogKindHasSample(t *testing.T) {
	seen := map[Kind]bool{}
	for _, p := range samplePackets() {
		seen[p.Kind()] = true
	}
	for _, e := range Catalog() {
		if !seen[e.Kind] {
			t.Fatalf("no sample for %s", e.Name)
		}
	}
	if len(seen) != len(Catalog()) {
		t.Fatalf("sample count %d != catalog size %d", len(seen), len(Catalog()))
	}
}

func TestRoundTripAllPackets(t *testing.T) {
	for _, in := range samplePackets() {
		w := wire.NewWriter()
		Encode(w, in)
		if err := w.Err(); err != nil {
			t.Fatalf("%s: encode: %v", in.Kind(), err)
		}
		if w.Bytes()[0] != uint8(in.Kind()) {
			t.Fatalf("%s: discriminant %d not written first", in.Kind(), w.Bytes()[0])
		}
		out, err := Decode(wire.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("%s: decode: %v", in.Kind(), err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("%s: round trip mismatch: got %+v want %+v", in.Kind(), out, in)
		}
	}
}

func TestKeyLayout(t *testing.T) {
	w := wire.NewWriter()
	Encode(w, &Key{Seq: 0x01020304, Key: protocol.KeyLeft, State: true})
	want := []byte{10, 0x01, 0x02, 0x03, 0x04, 3, 1}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("unexpected bytes: % X", w.Bytes())
	}
}

func TestDecodeUnknownDiscriminant(t *testing.T) {
	r := wire.NewReader([]byte{3, 0xFF, 0xFF})
	_, err := Decode(r)
	if !errors.Is(err, protocol.ErrUnknownDiscriminant) {
		t.Fatalf("expected ErrUnknownDiscriminant, got %v", err)
	}
	if r.Offset() != 1 {
		t.Fatalf("only the discriminant may be consumed, offset=%d", r.Offset())
	}
}

func TestDecodeTruncated(t *testing.T) {
	w := wire.NewWriter()
	Encode(w, &Login{Protocol: 5, Name: "pilot", Session: "s", Flag: "US"})
	b := w.Bytes()
	for n := 0; n < len(b); n++ {
		p, err := Decode(wire.NewReader(b[:n]))
		if !errors.Is(err, protocol.ErrUnderrun) {
			t.Fatalf("prefix %d: expected ErrUnderrun, got %v", n, err)
		}
		if p != nil {
			t.Fatalf("prefix %d: partial packet returned", n)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindLocalPing.String() != "LocalPing" {
		t.Fatalf("unexpected name %q", KindLocalPing.String())
	}
	if Kind(3).String() != "client.Kind(3)" {
		t.Fatalf("unexpected fallback %q", Kind(3).String())
	}
}

func TestCatalogSorted(t *testing.T) {
	entries := Catalog()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Kind >= entries[i].Kind {
			t.Fatalf("catalog not sorted at %d", i)
		}
	}
	if _, ok := New(Kind(200)); ok {
		t.Fatalf("unexpected packet for unknown kind")
	}
}
