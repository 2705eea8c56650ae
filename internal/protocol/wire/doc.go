// Package wire implements the byte-level codecs every packet field is built
// from: fixed-width integers, quantized scalars and vectors, optional values,
// length-prefixed arrays and text.
//
// Writer and Reader carry a sticky error. The first failure is recorded,
// every later call becomes a no-op returning zero values, and the caller
// checks Err once after the last field. A failed decode therefore never
// yields a partially populated packet.
//
// Multi-byte integers are big-endian.
package wire
