package config

import (
	"fmt"
	"os"
)

func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `[log]
level = "info"
timestamp = true
no_color = false
json = false

[metrics]
enabled = false
namespace = "airmash"

[codec]
protocol_version = 5
max_packet_bytes = 65536
input = "hex"
`
