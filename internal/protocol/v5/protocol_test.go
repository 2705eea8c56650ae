package v5

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
)

func TestVersion(t *testing.T) {
	var p Protocol
	if p.Version() != 5 || Version != 5 {
		t.Fatalf("unexpected version %d", p.Version())
	}
}

func TestClientRoundTrip(t *testing.T) {
	var p Protocol
	in := &client.Login{Protocol: Version, Name: "pilot", Session: "none", HorizonX: 1920, HorizonY: 1080, Flag: "JP"}
	b, err := p.SerializeClient(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := p.DeserializeClient(b)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestServerRoundTrip(t *testing.T) {
	var p Protocol
	in := &server.ChatWhisper{From: 1, To: 2, Text: "hi"}
	b, err := p.SerializeServer(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := []byte{73, 0, 1, 0, 2, 2, 'h', 'i'}
	if !bytes.Equal(b, want) {
		t.Fatalf("unexpected bytes % X", b)
	}
	out, err := p.DeserializeServer(b)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestTrailingBytesIgnored(t *testing.T) {
	var p Protocol
	out, err := p.DeserializeClient([]byte{6, 0, 0, 0, 9, 0xAA, 0xBB})
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if pong, ok := out.(*client.Pong); !ok || pong.Num != 9 {
		t.Fatalf("unexpected packet %+v", out)
	}
}

func TestDeserializeErrors(t *testing.T) {
	var p Protocol
	cases := []struct {
		name  string
		buf   []byte
		kind  uint8
		class error
	}{
		{"empty", nil, 0, protocol.ErrUnderrun},
		{"unknown", []byte{3}, 3, protocol.ErrUnknownDiscriminant},
		{"short", []byte{6, 0, 0}, 6, protocol.ErrUnderrun},
		{"utf8", []byte{20, 1, 0xFF}, 20, protocol.ErrInvalidUTF8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.DeserializeClient(tc.buf)
			if !errors.Is(err, tc.class) {
				t.Fatalf("expected %v, got %v", tc.class, err)
			}
			var de protocol.DeserializeError
			if !errors.As(err, &de) {
				t.Fatalf("expected DeserializeError, got %T", err)
			}
			if de.Origin != protocol.OriginClient || de.Kind != tc.kind {
				t.Fatalf("unexpected error detail %+v", de)
			}
		})
	}
}

func TestSerializeErrors(t *testing.T) {
	var p Protocol
	b, err := p.SerializeServer(&server.ChatPublic{ID: 1, Text: strings.Repeat("a", 256)})
	if b != nil {
		t.Fatalf("partial output returned")
	}
	var se protocol.SerializeError
	if !errors.As(err, &se) || se.Origin != protocol.OriginServer || se.Kind != uint8(server.KindChatPublic) {
		t.Fatalf("unexpected error %v", err)
	}
	if !errors.Is(err, protocol.ErrArrayTooLarge) {
		t.Fatalf("expected ErrArrayTooLarge, got %v", err)
	}
	if protocol.ErrorClass(err) != "array_too_large" {
		t.Fatalf("unexpected class %q", protocol.ErrorClass(err))
	}
}

func FuzzDeserializeServer(f *testing.F) {
	var p Protocol
	seeds := []server.Packet{
		&server.PlayerKill{ID: 1},
		&server.ScoreBoard{Data: []server.ScoreBoardData{{ID: 1, Score: 2, Level: 3}}},
		&server.ServerMessage{Text: "hello"},
	}
	for _, s := range seeds {
		b, err := p.SerializeServer(s)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, buf []byte) {
		pkt, err := p.DeserializeServer(buf)
		if err != nil {
			return
		}
		if _, err := p.SerializeServer(pkt); err != nil {
			t.Fatalf("decoded %s does not re-encode: %v", pkt.Kind(), err)
		}
	})
}

func FuzzDeserializeClient(f *testing.F) {
	var p Protocol
	f.Add([]byte{0, 5, 1, 'a', 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{10, 0, 0, 0, 1, 5, 1})
	f.Fuzz(func(t *testing.T, buf []byte) {
		pkt, err := p.DeserializeClient(buf)
		if err != nil {
			return
		}
		if _, err := p.SerializeClient(pkt); err != nil {
			t.Fatalf("decoded %s does not re-encode: %v", pkt.Kind(), err)
		}
	})
}
