// Package cbor is a streaming, zero-allocation decoder for the Concise
// Binary Object Representation (RFC 8949), extended with transparent
// support for "packed" CBOR: shared-item tables that let a document
// replace repeated sub-items with short references into a lookup table.
//
// # Overview
//
// The decoder exposes a cursor over an in-memory, immutable byte slice.
// Every accessor decodes one item and advances the cursor; none of them
// allocate. Packed-CBOR resolution is transparent: callers never see the
// table-tag or reference wrapper, only the item the reference ultimately
// points at.
//
// # When to Use
//
//   - Decoding CBOR (optionally packed) without building an intermediate
//     tree of `any` values.
//   - Embedded or allocation-sensitive contexts, where a cursor with a
//     handful of inline fields is the entire decoder state.
//
// # When NOT to Use
//
//   - Producing packed CBOR (this package has no encoder).
//   - Decoding over a stream that isn't already fully buffered in memory.
//
// # Basic Usage
//
//	c := cbor.Init(buf)
//	n, res := c.GetUint64()
//
//	// Packed CBOR, with an externally supplied initial table:
//	c := cbor.InitPackedWithTable(buf, tableBytes)
//	s, res := c.GetTstr()
//
// # Result Codes
//
// Accessors return a [Result] instead of a Go error: zero allocation means
// no wrapped error values on the hot path. [Result] implements `error` for
// callers that want to wrap it (`fmt.Errorf("%w", res)`).
package cbor
