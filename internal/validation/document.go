package validation

import (
	"fmt"
	"sort"
)

// DocumentModel holds every normalized page of one document instance that has
// a schema entry, keyed by page number. It is built once by Assemble and
// read-only afterward.
type DocumentModel map[int]PageRecord

// Text returns the string value of a field, or "" when the field is absent
// or not a string.
func (d DocumentModel) Text(page int, key string) string {
	if s, ok := d[page][key].(string); ok {
		return s
	}
	return ""
}

// Signed reports whether the named signature flag is set on a page.
func (d DocumentModel) Signed(page int, key string) bool {
	b, ok := d[page][key].(bool)
	return ok && b
}

// State returns the checkbox state literal of a field, or "" when absent.
// Checkbox states share the string representation with text fields, so this
// is an alias kept for readability at rule sites.
func (d DocumentModel) State(page int, key string) string {
	return d.Text(page, key)
}

// Report aggregates the outcome of validating one document instance.
// A document passes iff there are no field errors and no document errors.
type Report struct {
	DocType        string               `json:"doc_type"`
	PageErrors     map[int][]FieldError `json:"page_errors"`
	DocumentErrors []DocumentError      `json:"document_errors"`
	SkippedPages   []int                `json:"skipped_pages,omitempty"`
}

// Passed reports whether the document satisfied every page schema and every
// cross-field rule.
func (r *Report) Passed() bool {
	for _, errs := range r.PageErrors {
		if len(errs) > 0 {
			return false
		}
	}
	return len(r.DocumentErrors) == 0
}

// TotalErrors returns the combined count of field and document errors.
func (r *Report) TotalErrors() int {
	n := len(r.DocumentErrors)
	for _, errs := range r.PageErrors {
		n += len(errs)
	}
	return n
}

// Assemble normalizes and validates every schema page of one document
// instance. Pages declared in the schema but absent from the input are
// validated against the empty record, so their required-field checks still
// fire. Input pages without a schema entry are skipped and reported in the
// third return value.
func Assemble(entry Entry, pages map[int]RawDetectionRecord) (DocumentModel, map[int][]FieldError, []int) {
	doc := make(DocumentModel, len(entry.PageSchemas))
	pageErrors := make(map[int][]FieldError)

	for _, pageNum := range sortedPages(entry.PageSchemas) {
		schema := entry.PageSchemas[pageNum]
		rec, collisions := Normalize(pages[pageNum])
		errs := ValidatePage(pageNum, schema, rec)
		for _, key := range collisions {
			errs = append(errs, FieldError{
				Page:    pageNum,
				Key:     key,
				Message: fmt.Sprintf("multiple raw field names normalize to %q", key),
			})
		}
		if len(errs) > 0 {
			pageErrors[pageNum] = errs
		}
		doc[pageNum] = rec
	}

	var skipped []int
	for pageNum := range pages {
		if _, ok := entry.PageSchemas[pageNum]; !ok {
			skipped = append(skipped, pageNum)
		}
	}
	sort.Ints(skipped)

	return doc, pageErrors, skipped
}

// ValidateDocument runs the full pipeline for one document instance: registry
// lookup, per-page normalization and validation, and the template's
// cross-field rules. Structural failures (unknown type) are returned as an
// error; every semantic violation is collected into the Report.
func ValidateDocument(reg *Registry, docType string, pages map[int]RawDetectionRecord) (*Report, error) {
	entry, err := reg.Resolve(docType)
	if err != nil {
		return nil, err
	}

	doc, pageErrors, skipped := Assemble(entry, pages)

	return &Report{
		DocType:        docType,
		PageErrors:     pageErrors,
		DocumentErrors: CrossCheck(entry.CrossCheck, doc),
		SkippedPages:   skipped,
	}, nil
}

func sortedPages(schemas map[int]PageSchema) []int {
	nums := make([]int, 0, len(schemas))
	for n := range schemas {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
