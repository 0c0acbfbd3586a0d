package soap

import "errors"

// Decode error taxonomy. Parsers wrap these sentinels with context via
// fmt.Errorf("...: %w", ...), so callers can classify failures with errors.Is.
var (
	// ErrMalformedDocument means the response text is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed XML document")

	// ErrStructureMismatch means the XML is well-formed but an element,
	// namespace, attribute, or literal does not match the expected shape.
	ErrStructureMismatch = errors.New("unexpected document structure")

	// ErrMissingElement means a required element (body, response payload,
	// array, hash wrapper) is absent.
	ErrMissingElement = errors.New("missing required element")

	// ErrMissingField means a required field of an entry (fault code, bug log
	// header) is absent or empty.
	ErrMissingField = errors.New("missing required field")
)
