// Package v5 is the entry point for the version 5 wire format. It turns
// client and server packets into byte buffers and back.
package v5

import (
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/wire"
)

// Version is the protocol version implemented by this package. Clients
// announce it in client.Login.
const Version uint8 = 5

// Protocol is stateless; the zero value is ready to use and safe for
// concurrent use.
type Protocol struct{}

func (Protocol) Version() uint8 { return Version }

func (Protocol) SerializeClient(p client.Packet) ([]byte, error) {
	w := wire.NewWriter()
	client.Encode(w, p)
	if err := w.Err(); err != nil {
		return nil, protocol.SerializeError{Origin: protocol.OriginClient, Kind: uint8(p.Kind()), Err: err}
	}
	return w.Bytes(), nil
}

func (Protocol) SerializeServer(p server.Packet) ([]byte, error) {
	w := wire.NewWriter()
	server.Encode(w, p)
	if err := w.Err(); err != nil {
		return nil, protocol.SerializeError{Origin: protocol.OriginServer, Kind: uint8(p.Kind()), Err: err}
	}
	return w.Bytes(), nil
}

// DeserializeClient decodes one client packet from the front of buf. Bytes
// after the packet are ignored.
func (Protocol) DeserializeClient(buf []byte) (client.Packet, error) {
	p, err := client.Decode(wire.NewReader(buf))
	if err != nil {
		return nil, protocol.DeserializeError{Origin: protocol.OriginClient, Kind: leadingKind(buf), Err: err}
	}
	return p, nil
}

// DeserializeServer decodes one server packet from the front of buf. Bytes
// after the packet are ignored.
func (Protocol) DeserializeServer(buf []byte) (server.Packet, error) {
	p, err := server.Decode(wire.NewReader(buf))
	if err != nil {
		return nil, protocol.DeserializeError{Origin: protocol.OriginServer, Kind: leadingKind(buf), Err: err}
	}
	return p, nil
}

func leadingKind(buf []byte) uint8 {
	if len(buf) == 0 {
		return 0
	}
	return buf[0]
}
