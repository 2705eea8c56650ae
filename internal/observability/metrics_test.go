package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
	v5 "github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/v5"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/testutil/testlog"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	testlog.Start(t)
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg, "airmash"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewMetrics(reg, "airmash"); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestInstrumentRecordsTraffic(t *testing.T) {
	testlog.Start(t)
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, "airmash")
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	codec := Instrument(v5.Protocol{}, m, zerolog.New(&logs).Level(zerolog.DebugLevel))

	b, err := codec.SerializeServer(&server.PlayerLeave{ID: 4})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := codec.DeserializeServer(b); err != nil {
		t.Fatal(err)
	}
	if _, err := codec.DeserializeClient([]byte{3}); err == nil {
		t.Fatalf("expected unknown discriminant")
	}
	if _, err := codec.DeserializeClient(nil); err == nil {
		t.Fatalf("expected underrun")
	}

	if got := metricCounterValue(t, m.packets.WithLabelValues("server", OpSerialize, "PlayerLeave")); got != 1 {
		t.Fatalf("serialize packets=%v", got)
	}
	if got := metricCounterValue(t, m.packets.WithLabelValues("server", OpDeserialize, "PlayerLeave")); got != 1 {
		t.Fatalf("deserialize packets=%v", got)
	}
	if got := metricHistogramCount(t, m.bytes.WithLabelValues("server", OpSerialize)); got != 1 {
		t.Fatalf("histogram samples=%v", got)
	}
	if got := metricCounterValue(t, m.errors.WithLabelValues("client", OpDeserialize, "unknown_discriminant")); got != 1 {
		t.Fatalf("unknown discriminant errors=%v", got)
	}
	if got := metricCounterValue(t, m.errors.WithLabelValues("client", OpDeserialize, "underrun")); got != 1 {
		t.Fatalf("underrun errors=%v", got)
	}
	if !strings.Contains(logs.String(), `"class":"unknown_discriminant"`) {
		t.Fatalf("decode failure not logged: %s", logs.String())
	}
	if codec.Version() != v5.Version {
		t.Fatalf("version not forwarded")
	}
}

func TestInstrumentWithoutMetrics(t *testing.T) {
	testlog.Start(t)
	codec := Instrument(v5.Protocol{}, nil, zerolog.Nop())
	if _, err := codec.SerializeClient(&client.Ack{}); err != nil {
		t.Fatal(err)
	}
	if _, err := codec.DeserializeServer([]byte{2}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteText(t *testing.T) {
	testlog.Start(t)
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, "test")
	if err != nil {
		t.Fatal(err)
	}
	m.RecordPacket("client", OpDeserialize, "Login", 20)
	m.RecordError("client", OpDeserialize, "underrun")

	var out bytes.Buffer
	if err := WriteText(&out, reg); err != nil {
		t.Fatalf("write text: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		`test_codec_packets_total{kind="Login",op="deserialize",origin="client"} 1`,
		`test_codec_errors_total{class="underrun",op="deserialize",origin="client"} 1`,
		`test_codec_packet_bytes_count{op="deserialize",origin="client"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
}
