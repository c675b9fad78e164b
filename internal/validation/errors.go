package validation

import "fmt"

// FieldError reports a single per-field violation on one page: a required
// field that is absent, or a present field whose value is outside its
// allowed set. Field errors are routine output, not failures.
type FieldError struct {
	Page    int    `json:"page"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// String returns a reviewer-facing description of the violation.
func (e FieldError) String() string {
	return fmt.Sprintf("page_%d.%s: %s", e.Page, e.Key, e.Message)
}

// DocumentError reports one violated cross-field rule. It is scoped to the
// whole document rather than a single field.
type DocumentError struct {
	Message string `json:"message"`
}

// String returns the rule violation message.
func (e DocumentError) String() string {
	return e.Message
}

// MalformedRecordError indicates a raw detection record whose shape does not
// match the expected contract (for example a text_fields value that is not a
// mapping). It aborts validation of the affected page.
type MalformedRecordError struct {
	Category string // top-level key with the unexpected shape
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("malformed detection record: %s", e.Reason)
	}
	return fmt.Sprintf("malformed detection record: %s: %s", e.Category, e.Reason)
}

// UnknownDocumentTypeError indicates a document type with no registered
// schema. It aborts validation of the whole document instance.
type UnknownDocumentTypeError struct {
	DocType string
}

func (e *UnknownDocumentTypeError) Error() string {
	return fmt.Sprintf("unknown document type: %q", e.DocType)
}
