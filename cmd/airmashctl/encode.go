package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
)

func encodeCmd(a *app) *cobra.Command {
	var (
		origin string
		kind   uint8
		output string
	)

	cmd := &cobra.Command{
		Use:   "encode --kind N [json]",
		Short: "Build a packet from JSON",
		Long: `Build a packet of the given kind from a JSON object whose keys are the
packet's field names, and print the encoded bytes. Missing fields are zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOrigin(origin)
			if err != nil {
				return err
			}
			if output == "" {
				output = a.cfg.Codec.Input
			}
			body := "{}"
			if len(args) == 1 {
				body = args[0]
			}
			codec, _, err := a.codec(false)
			if err != nil {
				return err
			}

			var b []byte
			if o == protocol.OriginClient {
				p, ok := client.New(client.Kind(kind))
				if !ok {
					return fmt.Errorf("%w: client kind %d", protocol.ErrUnknownDiscriminant, kind)
				}
				if err := json.Unmarshal([]byte(body), p); err != nil {
					return fmt.Errorf("parse %s: %w", p.Kind(), err)
				}
				b, err = serialize(func() ([]byte, error) { return codec.SerializeClient(p) })
			} else {
				p, ok := server.New(server.Kind(kind))
				if !ok {
					return fmt.Errorf("%w: server kind %d", protocol.ErrUnknownDiscriminant, kind)
				}
				if err := json.Unmarshal([]byte(body), p); err != nil {
					return fmt.Errorf("parse %s: %w", p.Kind(), err)
				}
				b, err = serialize(func() ([]byte, error) { return codec.SerializeServer(p) })
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encodeOutput(output, b))
			return nil
		},
	}

	cmd.Flags().StringVarP(&origin, "origin", "o", "server", "packet origin: client|server")
	cmd.Flags().Uint8VarP(&kind, "kind", "k", 0, "packet discriminant")
	cmd.Flags().StringVar(&output, "output", "", "output encoding: hex|base64 (default from config)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// serialize runs fn and reports a field the codec refuses to pack, such as an
// upgrade speed above 7, as an error instead of a crash.
func serialize(fn func() ([]byte, error)) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("invalid packet: %v", r)
		}
	}()
	return fn()
}
