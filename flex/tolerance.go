package flex

import "sync/atomic"

// ============================================================
// Tolerance Controller
// ============================================================
//
// The broker extends the Flex schema between releases, so a registry
// built against one schema version will meet attributes and whole record
// types it has never heard of. The tolerance flag decides what happens
// then:
//
//	disabled (default): unknown attributes and unknown element types
//	fail the whole decode.
//
//	enabled: unknown attributes are dropped from the record; an unknown
//	element type decodes to no value and is filtered out of any
//	containing sequence.
//
// Statement-count mismatches fail regardless of the flag.
//
// The flag is process-wide, set-then-decode state, not a per-call
// parameter. Reads and writes are atomic, so concurrent decodes under
// the SAME setting are safe; concurrent decodes that require DIFFERENT
// settings are not supported and must be serialized by the caller
// (set, decode, restore).

var tolerant atomic.Bool

// EnableTolerance makes unknown attributes and element types non-fatal
// for all subsequent decodes.
func EnableTolerance() { tolerant.Store(true) }

// DisableTolerance restores strict decoding, the default.
func DisableTolerance() { tolerant.Store(false) }

// ToleranceEnabled reports the current setting.
func ToleranceEnabled() bool { return tolerant.Load() }
