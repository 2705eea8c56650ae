package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/observability"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
)

type decodedPacket struct {
	Kind   uint8  `json:"kind"`
	Name   string `json:"name"`
	Packet any    `json:"packet"`
}

func decodeCmd(a *app) *cobra.Command {
	var (
		origin  string
		input   string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "decode [packet...]",
		Short: "Decode packets into JSON",
		Long: `Decode hex or base64 encoded packets and print one JSON object per packet.
Packets are read from the arguments, or one per line from stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOrigin(origin)
			if err != nil {
				return err
			}
			if input == "" {
				input = a.cfg.Codec.Input
			}
			codec, reg, err := a.codec(metrics)
			if err != nil {
				return err
			}

			lines := args
			if len(lines) == 0 {
				lines, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			failed, total := 0, 0
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				total++
				out, err := a.decodeOne(codec, o, input, line)
				var b []byte
				if err == nil {
					// raw float fields may hold NaN or Inf, which JSON cannot carry
					b, err = json.Marshal(out)
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", line, err)
					continue
				}
				if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
					return err
				}
			}

			if reg != nil {
				if err := observability.WriteText(cmd.ErrOrStderr(), reg); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d packets failed to decode", failed, total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&origin, "origin", "o", "server", "packet origin: client|server")
	cmd.Flags().StringVar(&input, "input", "", "input encoding: hex|base64 (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print codec metrics to stderr when done")

	return cmd
}

func (a *app) decodeOne(codec observability.Codec, o protocol.Origin, format, line string) (decodedPacket, error) {
	buf, err := decodeInput(format, line)
	if err != nil {
		return decodedPacket{}, fmt.Errorf("bad %s input: %w", format, err)
	}
	if len(buf) > a.cfg.Codec.MaxPacketBytes {
		return decodedPacket{}, fmt.Errorf("packet of %d bytes exceeds limit %d", len(buf), a.cfg.Codec.MaxPacketBytes)
	}
	if o == protocol.OriginClient {
		p, err := codec.DeserializeClient(buf)
		if err != nil {
			return decodedPacket{}, err
		}
		return decodedPacket{Kind: uint8(p.Kind()), Name: p.Kind().String(), Packet: p}, nil
	}
	p, err := codec.DeserializeServer(buf)
	if err != nil {
		return decodedPacket{}, err
	}
	return decodedPacket{Kind: uint8(p.Kind()), Name: p.Kind().String(), Packet: p}, nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	in := cmd.InOrStdin()
	if in == os.Stdin {
		if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return nil, fmt.Errorf("no packets given and stdin is a terminal")
		}
	}
	var lines []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
