package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrUnderrun            = errors.New("protocol: buffer underrun")
	ErrInvalidUTF8         = errors.New("protocol: invalid utf-8 text")
	ErrUnknownDiscriminant = errors.New("protocol: unknown packet discriminant")
	ErrArrayTooLarge       = errors.New("protocol: sequence too long for count prefix")
)

// Origin identifies which catalog a packet belongs to.
type Origin uint8

const (
	OriginClient Origin = iota
	OriginServer
)

func (o Origin) String() string {
	switch o {
	case OriginClient:
		return "client"
	case OriginServer:
		return "server"
	default:
		return fmt.Sprintf("origin(%d)", uint8(o))
	}
}

// DeserializeError reports a failed decode. Kind is the discriminant read
// from the buffer, or zero when the buffer was empty.
type DeserializeError struct {
	Origin Origin
	Kind   uint8
	Err    error
}

func (e DeserializeError) Error() string {
	return fmt.Sprintf("protocol: deserialize %s packet kind=%d: %v", e.Origin, e.Kind, e.Err)
}

func (e DeserializeError) Unwrap() error {
	return e.Err
}

// SerializeError reports a packet that could not be written.
type SerializeError struct {
	Origin Origin
	Kind   uint8
	Err    error
}

func (e SerializeError) Error() string {
	return fmt.Sprintf("protocol: serialize %s packet kind=%d: %v", e.Origin, e.Kind, e.Err)
}

func (e SerializeError) Unwrap() error {
	return e.Err
}

// ErrorClass maps err to a stable label suitable for metrics and logs.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUnderrun):
		return "underrun"
	case errors.Is(err, ErrInvalidUTF8):
		return "invalid_utf8"
	case errors.Is(err, ErrUnknownDiscriminant):
		return "unknown_discriminant"
	case errors.Is(err, ErrArrayTooLarge):
		return "array_too_large"
	default:
		return "other"
	}
}
