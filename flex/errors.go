package flex

import "fmt"

// ParseError reports a malformed document: an unparsable value, a failed
// invariant, or (in strict mode) an unknown attribute. Elem and Attr
// locate the failure; Attr is empty for element-level failures.
type ParseError struct {
	Elem    string // record type / element tag
	Attr    string // attribute name, if the failure is field-level
	Message string
}

func (e *ParseError) Error() string {
	switch {
	case e.Elem == "":
		return e.Message
	case e.Attr == "":
		return fmt.Sprintf("<%s>: %s", e.Elem, e.Message)
	default:
		return fmt.Sprintf("<%s> %s: %s", e.Elem, e.Attr, e.Message)
	}
}

// parseErrorf builds a field-level or element-level ParseError.
func parseErrorf(elem, attr, format string, args ...any) *ParseError {
	return &ParseError{Elem: elem, Attr: attr, Message: fmt.Sprintf(format, args...)}
}

// RegistryError reports a record type name with no registry entry.
// Distinct from ParseError: the document may be fine and the registry
// simply behind the broker's schema.
type RegistryError struct {
	Tag string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("no schema registered for element <%s>", e.Tag)
}
