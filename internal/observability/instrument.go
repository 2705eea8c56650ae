package observability

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
)

// Codec is the method set of v5.Protocol.
type Codec interface {
	Version() uint8
	SerializeClient(client.Packet) ([]byte, error)
	SerializeServer(server.Packet) ([]byte, error)
	DeserializeClient([]byte) (client.Packet, error)
	DeserializeServer([]byte) (server.Packet, error)
}

type instrumented struct {
	next    Codec
	metrics *Metrics
	logger  zerolog.Logger
}

// Instrument wraps next so every call is counted in metrics and failures
// are logged. metrics may be nil.
func Instrument(next Codec, metrics *Metrics, logger zerolog.Logger) Codec {
	return &instrumented{next: next, metrics: metrics, logger: logger}
}

func (c *instrumented) Version() uint8 { return c.next.Version() }

func (c *instrumented) SerializeClient(p client.Packet) ([]byte, error) {
	start := time.Now()
	b, err := c.next.SerializeClient(p)
	c.observe(protocol.OriginClient, OpSerialize, p.Kind().String(), b, err, start)
	return b, err
}

func (c *instrumented) SerializeServer(p server.Packet) ([]byte, error) {
	start := time.Now()
	b, err := c.next.SerializeServer(p)
	c.observe(protocol.OriginServer, OpSerialize, p.Kind().String(), b, err, start)
	return b, err
}

func (c *instrumented) DeserializeClient(buf []byte) (client.Packet, error) {
	start := time.Now()
	p, err := c.next.DeserializeClient(buf)
	kind := ""
	if p != nil {
		kind = p.Kind().String()
	}
	c.observe(protocol.OriginClient, OpDeserialize, kind, buf, err, start)
	return p, err
}

func (c *instrumented) DeserializeServer(buf []byte) (server.Packet, error) {
	start := time.Now()
	p, err := c.next.DeserializeServer(buf)
	kind := ""
	if p != nil {
		kind = p.Kind().String()
	}
	c.observe(protocol.OriginServer, OpDeserialize, kind, buf, err, start)
	return p, err
}

func (c *instrumented) observe(origin protocol.Origin, op, kind string, buf []byte, err error, start time.Time) {
	if err != nil {
		class := protocol.ErrorClass(err)
		c.metrics.RecordError(origin.String(), op, class)
		event := c.logger.Debug()
		if op == OpSerialize {
			// a packet we built ourselves failed to encode
			event = c.logger.Warn()
		}
		event.
			Str("origin", origin.String()).
			Str("op", op).
			Str("class", class).
			Int("bytes", len(buf)).
			Err(err).
			Msg("codec_error")
		return
	}
	c.metrics.RecordPacket(origin.String(), op, kind, len(buf))
	c.logger.Trace().
		Str("origin", origin.String()).
		Str("op", op).
		Str("kind", kind).
		Int("bytes", len(buf)).
		Dur("duration", time.Since(start)).
		Msg("codec_packet")
}
