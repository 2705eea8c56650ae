package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/config"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

func parseOrigin(raw string) (protocol.Origin, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "client":
		return protocol.OriginClient, nil
	case "server":
		return protocol.OriginServer, nil
	default:
		return 0, fmt.Errorf("unknown origin %q (want client or server)", raw)
	}
}

func decodeInput(format, raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	switch format {
	case config.InputBase64:
		return base64.StdEncoding.DecodeString(raw)
	default:
		raw = strings.ReplaceAll(raw, " ", "")
		return hex.DecodeString(raw)
	}
}

func encodeOutput(format string, b []byte) string {
	if format == config.InputBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
