// Package wire builds and reads flat records in the protobuf wire format.
//
// Only the varint and length-delimited wire types are produced. Nested
// records are carried as opaque bytes fields; a Builder never validates a
// schema, so field numbers may repeat or appear out of order.
package wire
