// Package codec serializes word and co-product expressions as protocol
// buffer messages, so that normal forms computed by one process can be
// shipped to another or stored on disk.
//
// The schema is in polylog.proto. Messages are plain structs marshalled by
// github.com/gogo/protobuf/proto through their field tags. Terms are written
// in key order, so equal expressions produce equal bytes.
//
// Example:
//
//	b, err := codec.Marshal(lyndon.ToBasis(e))
//	...
//	e, err := codec.Unmarshal(b)
package codec
