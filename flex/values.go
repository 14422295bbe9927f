package flex

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the semantic kind of a decoded value. For fields it is
// declared by the schema registry; for values it tags the active variant
// of the Value union.
type Kind uint8

const (
	KindNone Kind = iota // explicit "no value"
	KindString
	KindInt
	KindBool
	KindDecimal
	KindDate
	KindTime
	KindDateTime
	KindSequence
	KindEnum
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindSequence:
		return "sequence"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Value is a decoded attribute value. Exactly one variant is valid,
// selected by Kind(). The zero Value is the explicit "no value" state
// used for absent optional fields, empty strings, and empty enums.
type Value struct {
	kind Kind

	strVal  string
	intVal  int64
	boolVal bool
	decVal  decimal.Decimal
	timeVal time.Time // Date, Time, and DateTime kinds
	seqVal  []string
	enumVal EnumValue
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the value is the explicit "no value" state.
func (v Value) IsNone() bool { return v.kind == KindNone }

// ============================================================
// Constructors
// ============================================================

// None returns the explicit "no value".
func None() Value { return Value{} }

// Str creates a string value.
func Str(s string) Value { return Value{kind: KindString, strVal: s} }

// Int creates an integer value.
func Int(i int64) Value { return Value{kind: KindInt, intVal: i} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Dec creates a decimal value.
func Dec(d decimal.Decimal) Value { return Value{kind: KindDecimal, decVal: d} }

// Date creates a calendar-date value. The clock is normalized to
// midnight UTC.
func Date(year int, month time.Month, day int) Value {
	return Value{kind: KindDate, timeVal: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Clock creates a time-of-day value on the zero reference date.
func Clock(hour, min, sec int) Value {
	return Value{kind: KindTime, timeVal: time.Date(1, time.January, 1, hour, min, sec, 0, time.UTC)}
}

// DateTime creates a combined date and wall-clock value.
func DateTime(year int, month time.Month, day, hour, min, sec int) Value {
	return Value{kind: KindDateTime, timeVal: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// Seq creates a string-sequence value. An empty sequence is a valid
// value, distinct from None.
func Seq(elems ...string) Value {
	if elems == nil {
		elems = []string{}
	}
	return Value{kind: KindSequence, seqVal: elems}
}

// EnumOf creates an enum value for a canonical member of the given table.
func EnumOf(e *Enum, member string) Value {
	return Value{kind: KindEnum, enumVal: EnumValue{Enum: e, Member: member}}
}

// ============================================================
// Accessors
// ============================================================

// AsString returns the string variant. ok is false for any other kind.
func (v Value) AsString() (string, bool) { return v.strVal, v.kind == KindString }

// AsInt returns the integer variant.
func (v Value) AsInt() (int64, bool) { return v.intVal, v.kind == KindInt }

// AsBool returns the boolean variant.
func (v Value) AsBool() (bool, bool) { return v.boolVal, v.kind == KindBool }

// AsDecimal returns the decimal variant.
func (v Value) AsDecimal() (decimal.Decimal, bool) { return v.decVal, v.kind == KindDecimal }

// AsTime returns the temporal variant (Date, Time, or DateTime kinds).
func (v Value) AsTime() (time.Time, bool) {
	switch v.kind {
	case KindDate, KindTime, KindDateTime:
		return v.timeVal, true
	}
	return time.Time{}, false
}

// AsSequence returns the string-sequence variant.
func (v Value) AsSequence() ([]string, bool) { return v.seqVal, v.kind == KindSequence }

// AsEnum returns the enum variant.
func (v Value) AsEnum() (EnumValue, bool) { return v.enumVal, v.kind == KindEnum }

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "<none>"
	case KindString:
		return v.strVal
	case KindInt:
		return fmt.Sprintf("%d", v.intVal)
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindDecimal:
		return v.decVal.String()
	case KindDate:
		return v.timeVal.Format("2006-01-02")
	case KindTime:
		return v.timeVal.Format("15:04:05")
	case KindDateTime:
		return v.timeVal.Format("2006-01-02 15:04:05")
	case KindSequence:
		return fmt.Sprintf("%v", v.seqVal)
	case KindEnum:
		return v.enumVal.String()
	default:
		return "<invalid>"
	}
}

// ============================================================
// Records and decoded sequences
// ============================================================

// Record is one data element decoded against its registry entry. Fields
// covers exactly the declared attributes (absent optionals map to None;
// undeclared names never appear). Sections holds decoded contained
// collections, keyed by element tag; only statement-level record types
// declare any. Records are never mutated after coerceRecord returns.
type Record struct {
	Type     string
	Fields   map[string]Value
	Sections map[string]Decoded
}

// Get returns the decoded value for a declared field, or None if the
// field was absent.
func (r *Record) Get(name string) Value {
	return r.Fields[name]
}

// Section returns a contained collection by tag, or a zero Decoded.
func (r *Record) Section(tag string) Decoded {
	return r.Sections[tag]
}

// Decoded is the result for one dispatched element: exactly one of
// Record or List is set. The zero Decoded is the tolerant-mode
// "no value" outcome for an unrecognized element type.
type Decoded struct {
	Record *Record
	List   []*Record
}

// IsNone reports whether the element resolved to no value.
func (d Decoded) IsNone() bool { return d.Record == nil && d.List == nil }
