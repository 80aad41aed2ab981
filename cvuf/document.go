// Package cvuf parses and structurally verifies CVUF form documents produced
// by the generative provider. The parser is deliberately defensive: the
// upstream emits free text and the package's job is to recover a guaranteed
// well-formed document from it or fail loudly.
package cvuf

import (
	"encoding/json"
	"errors"
)

// ErrMalformedDocument is returned when no recoverable document structure can
// be extracted from the provider output, or when the extracted structure is
// missing the root form object.
var ErrMalformedDocument = errors.New("malformed CVUF document")

// Document is a parsed CVUF. The root object carries exactly one key, "form".
// The form body is kept as a generic tree so serialization preserves whatever
// the provider emitted beyond the verified contract. A document is write-once:
// built, verified, returned.
type Document struct {
	Form map[string]any `json:"form"`
}

// Minify serializes the document as whitespace-minimal JSON, the only
// encoding the target forms runtime imports.
func (d *Document) Minify() (string, error) {
	out, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
