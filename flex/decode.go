package flex

import "strconv"

// statementsTag is the one distinguished container: it carries a count
// attribute and is always decoded on the container path, attributes or
// not.
const statementsTag = "FlexStatements"

// Response is the fully decoded document: the root query-metadata record
// and its statement sequence. Decode never returns a partial Response.
type Response struct {
	Root       *Record   // FlexQueryResponse attributes
	Statements []*Record // decoded FlexStatement records, document order
}

// Decode decodes a complete Flex Query XML export. Any violation
// anywhere — malformed markup, an unparsable value, a count mismatch, or
// (in strict mode) schema drift — aborts the whole decode.
func Decode(data []byte) (*Response, error) {
	root, err := buildTreeBytes(data)
	if err != nil {
		return nil, err
	}

	d, err := Dispatch(root)
	if err != nil {
		return nil, err
	}
	if d.Record == nil {
		return nil, parseErrorf(root.Tag, "", "root element is not a data record")
	}
	stmts, ok := d.Record.Sections[statementsTag]
	if !ok {
		return nil, parseErrorf(root.Tag, "", "missing <"+statementsTag+"> section")
	}
	return &Response{Root: d.Record, Statements: stmts.List}, nil
}

// Dispatch classifies one element and routes it. <FlexStatements> is
// always a container; any other element with at least one attribute is a
// data record, and an attributeless element is a generic container. The
// rule is purely structural and applied once per element — recursion
// happens inside the container and record paths.
func Dispatch(node *Node) (Decoded, error) {
	if node.Tag == statementsTag {
		return expandStatements(node)
	}
	if len(node.Attr) > 0 {
		return CoerceRecord(node)
	}
	list, err := Expand(node)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{List: list}, nil
}

// expandStatements decodes the distinguished statements container. The
// count attribute is mandatory and must equal the number of decoded
// statements. Tolerant-mode filtering of unknown statement types happens
// before the comparison, so filtered children do not count; the
// comparison itself is never relaxed by tolerance.
func expandStatements(node *Node) (Decoded, error) {
	raw, ok := node.Attr["count"]
	if !ok {
		return Decoded{}, parseErrorf(statementsTag, "count", "missing attribute")
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return Decoded{}, parseErrorf(statementsTag, "count", "invalid count %q", raw)
	}

	stmts := []*Record{}
	for _, child := range node.Children {
		d, err := CoerceRecord(child)
		if err != nil {
			return Decoded{}, err
		}
		if d.IsNone() {
			continue
		}
		stmts = append(stmts, d.Record)
	}

	if len(stmts) != count {
		return Decoded{}, parseErrorf(statementsTag, "count",
			"declared %d statements, found %d", count, len(stmts))
	}
	return Decoded{List: stmts}, nil
}

// Expand decodes a generic container into an ordered record sequence.
// A child with no children of its own is a leaf record. A child that
// does have children is a group wrapper (e.g. <FxLots> inside
// <FxPositions>): every grandchild decodes as a record and the results
// are spliced flat, preserving document order. Exactly one wrapper level
// is flattened, and wrapper tags never touch the registry. Elements
// resolving to no value under tolerant mode are omitted.
func Expand(node *Node) ([]*Record, error) {
	out := []*Record{}
	for _, child := range node.Children {
		if len(child.Children) == 0 {
			d, err := CoerceRecord(child)
			if err != nil {
				return nil, err
			}
			if !d.IsNone() {
				out = append(out, d.Record)
			}
			continue
		}
		for _, grandchild := range child.Children {
			d, err := CoerceRecord(grandchild)
			if err != nil {
				return nil, err
			}
			if !d.IsNone() {
				out = append(out, d.Record)
			}
		}
	}
	return out, nil
}

// CoerceRecord builds one typed record from an element's attributes per
// its registry entry. Every declared field is present on the result
// (absent ones as None); undeclared names never are. An element whose
// tag the registry does not know fails with a RegistryError in strict
// mode and resolves to no value in tolerant mode.
func CoerceRecord(node *Node) (Decoded, error) {
	desc, ok := DefaultRegistry.Lookup(node.Tag)
	if !ok {
		if ToleranceEnabled() {
			return Decoded{}, nil
		}
		return Decoded{}, &RegistryError{Tag: node.Tag}
	}

	rec := &Record{Type: node.Tag, Fields: make(map[string]Value, len(desc.Fields))}
	for i := range desc.Fields {
		rec.Fields[desc.Fields[i].Name] = None()
	}

	for name, raw := range node.Attr {
		v, err := CoerceAttribute(node.Tag, name, raw)
		if err != nil {
			return Decoded{}, err
		}
		// In tolerant mode an undeclared attribute coerces to None and
		// is dropped here rather than stored under an unknown name.
		if _, declared := desc.Field(name); declared {
			rec.Fields[name] = v
		}
	}

	// Contained collections (statement sections). Only the statement-
	// level record types declare any; everything else treats children as
	// schema drift.
	for _, child := range node.Children {
		if !desc.HasSection(child.Tag) {
			if ToleranceEnabled() {
				continue
			}
			return Decoded{}, parseErrorf(node.Tag, "", "unknown contained element <%s>", child.Tag)
		}
		d, err := Dispatch(child)
		if err != nil {
			return Decoded{}, err
		}
		if d.IsNone() {
			continue
		}
		if rec.Sections == nil {
			rec.Sections = make(map[string]Decoded)
		}
		rec.Sections[child.Tag] = d
	}

	return Decoded{Record: rec}, nil
}

// CoerceAttribute coerces one (record type, attribute, raw value) triple
// to its typed value:
//
//  1. unknown record type: RegistryError when strict, None when tolerant
//  2. undeclared attribute: ParseError when strict, None when tolerant
//  3. non-empty values of *currency*-named fields must be ISO 4217
//  4. the converter for the declared kind, optional-wrapped when the
//     field is declared optional
func CoerceAttribute(recordType, attrName, raw string) (Value, error) {
	desc, ok := DefaultRegistry.Lookup(recordType)
	if !ok {
		if ToleranceEnabled() {
			return None(), nil
		}
		return None(), &RegistryError{Tag: recordType}
	}

	field, ok := desc.Field(attrName)
	if !ok {
		if ToleranceEnabled() {
			return None(), nil
		}
		return None(), parseErrorf(recordType, attrName, "unknown attribute")
	}

	if isCurrencyField(field.Name) && raw != "" && !validCurrency(raw) {
		return None(), parseErrorf(recordType, attrName, "invalid currency code %q", raw)
	}

	v, err := field.converter()(raw)
	if err != nil {
		return None(), parseErrorf(recordType, attrName, "%v", err)
	}
	return v, nil
}
