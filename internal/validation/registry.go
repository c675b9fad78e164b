package validation

import (
	"fmt"
	"sort"
)

// Entry pairs one template's page schemas with its cross-field rule function.
type Entry struct {
	PageSchemas map[int]PageSchema
	CrossCheck  CrossCheckFunc
}

// Registry maps document-type identifiers (form codes such as "AD2" or
// "SPQ") to their validation entries. It is populated once at process start
// by an explicit registration step and treated as read-only afterward, which
// keeps concurrent validation free of locking.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register installs the schemas and cross-check function for one document
// type. Registering an already-known type or an entry without page schemas
// is a programming error and is rejected.
func (r *Registry) Register(docType string, pageSchemas map[int]PageSchema, crossCheck CrossCheckFunc) error {
	if docType == "" {
		return fmt.Errorf("document type cannot be empty")
	}
	if len(pageSchemas) == 0 {
		return fmt.Errorf("document type %q has no page schemas", docType)
	}
	if _, exists := r.entries[docType]; exists {
		return fmt.Errorf("document type %q already registered", docType)
	}
	r.entries[docType] = Entry{PageSchemas: pageSchemas, CrossCheck: crossCheck}
	return nil
}

// Resolve returns the entry for a document type, or UnknownDocumentTypeError
// when none is registered.
func (r *Registry) Resolve(docType string) (Entry, error) {
	entry, ok := r.entries[docType]
	if !ok {
		return Entry{}, &UnknownDocumentTypeError{DocType: docType}
	}
	return entry, nil
}

// DocumentTypes returns the registered type identifiers in sorted order.
func (r *Registry) DocumentTypes() []string {
	types := make([]string, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
