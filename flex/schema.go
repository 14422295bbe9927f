package flex

import "fmt"

// FieldDescriptor declares one attribute of a record type: its name, the
// semantic kind driving converter selection, whether empty input means
// "absent" rather than "error", and — for enum kinds — the lookup table.
type FieldDescriptor struct {
	Name     string
	Kind     Kind
	Optional bool
	Enum     *Enum // required iff Kind == KindEnum
}

// converter returns the converter implementing this field's declared
// semantics. The switch over Kind is exhaustive for field kinds;
// KindNone is never a declared kind.
func (f *FieldDescriptor) converter() converter {
	var fn converter
	switch f.Kind {
	case KindString:
		fn = ConvertString
	case KindInt:
		fn = ConvertInt
	case KindBool:
		fn = ConvertBool
	case KindDecimal:
		fn = ConvertDecimal
	case KindDate:
		fn = ConvertDate
	case KindTime:
		fn = ConvertTime
	case KindDateTime:
		fn = ConvertDateTime
	case KindSequence:
		fn = ConvertSequence
	case KindEnum:
		fn = f.Enum.convert
	default:
		panic(fmt.Sprintf("field %s: kind %s is not a field kind", f.Name, f.Kind))
	}
	if f.Optional {
		fn = optional(fn)
	}
	return fn
}

// RecordDescriptor declares one record type: its element tag, ordered
// attribute fields, and the contained-collection tags it may carry.
// Only the statement-level types declare sections.
type RecordDescriptor struct {
	Name     string
	Fields   []FieldDescriptor
	Sections []string

	fieldsByName map[string]*FieldDescriptor
	sectionSet   map[string]bool
}

// Field resolves a declared attribute by name.
func (r *RecordDescriptor) Field(name string) (*FieldDescriptor, bool) {
	f, ok := r.fieldsByName[name]
	return f, ok
}

// HasSection reports whether the record type declares the contained
// collection tag.
func (r *RecordDescriptor) HasSection(tag string) bool {
	return r.sectionSet[tag]
}

// Registry maps record type names (element tags) to their descriptors.
// It is loaded once at startup and never mutated; see DefaultRegistry.
type Registry struct {
	records map[string]*RecordDescriptor
}

// mustRegistry builds a Registry and panics on an inconsistent
// catalogue: duplicate record or field names, or an enum field without
// its table. Called from package init so a broken catalogue fails at
// process start.
func mustRegistry(descriptors ...*RecordDescriptor) *Registry {
	reg := &Registry{records: make(map[string]*RecordDescriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := reg.records[d.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate record type %s", d.Name))
		}
		d.fieldsByName = make(map[string]*FieldDescriptor, len(d.Fields))
		for i := range d.Fields {
			f := &d.Fields[i]
			if _, dup := d.fieldsByName[f.Name]; dup {
				panic(fmt.Sprintf("registry: %s: duplicate field %s", d.Name, f.Name))
			}
			if f.Kind == KindEnum && f.Enum == nil {
				panic(fmt.Sprintf("registry: %s.%s: enum field without enum table", d.Name, f.Name))
			}
			d.fieldsByName[f.Name] = f
		}
		d.sectionSet = make(map[string]bool, len(d.Sections))
		for _, s := range d.Sections {
			d.sectionSet[s] = true
		}
		reg.records[d.Name] = d
	}
	return reg
}

// Lookup resolves an element tag to its record descriptor.
func (reg *Registry) Lookup(tag string) (*RecordDescriptor, bool) {
	d, ok := reg.records[tag]
	return d, ok
}
