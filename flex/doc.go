// Package flex decodes Interactive Brokers Flex Query XML exports into
// validated, strongly typed documents.
//
// A Flex export carries all data in element attributes. The decoder walks
// the element tree, resolves each element's record type against a static
// schema registry, and coerces every attribute through a converter chosen
// by the field's declared semantic kind:
//
//	String, Int, Bool, Decimal, Date, Time, DateTime, Sequence, Enum
//
// Money and quantity fields decode to exact decimals
// (github.com/shopspring/decimal); attributes whose name contains
// "currency" are additionally validated against ISO 4217.
//
// # Structure
//
// Record:    an element with attributes, decoded per its registry entry
// Container: an element without attributes, decoded to an ordered list
// Group:     an attributeless wrapper inside a container; its children
//            are spliced flat into the parent list (e.g. FxPositions →
//            FxLots → FxLot)
//
// The distinguished <FlexStatements> container requires a count attribute
// that must match the number of decoded statements exactly.
//
// # Tolerance
//
// The broker adds attributes and whole report sections between schema
// versions. By default the decoder is strict: an unknown attribute or
// element type fails the whole decode. EnableTolerance switches to a
// drift-tolerant mode in which unknown attributes are dropped and unknown
// element types are filtered out of their containing lists. The flag is
// process-wide; see the tolerance controller docs for the concurrency
// contract.
//
// # Errors
//
// Decoding is fail-fast: any violation aborts the entire decode and no
// partial document is returned. Malformed values produce a *ParseError;
// a record type missing from the registry produces a *RegistryError,
// kept distinct because it signals a registry gap rather than bad input.
package flex
