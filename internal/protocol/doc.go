// Package protocol owns the AIRMASH wire contract shared by every codec layer.
//
// Ownership boundary:
// - entity id and vector value types carried by packets
// - enumerations and packed bitfields with a fixed wire width
// - the error taxonomy returned by serialize/deserialize
//
// Subpackages, leaves first:
// - quant: scalar quantization (float <-> fixed-width integer)
// - wire: byte cursor, aggregate, array and text codecs
// - client, server: the two packet catalogs and their dispatch
// - v5: the versioned façade
package protocol
