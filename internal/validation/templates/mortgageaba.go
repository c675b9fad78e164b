package templates

import "github.com/abrforms/docreview/internal/validation"

// Mortgage ABA: Affiliated Business Arrangement disclosure. Page 1 carries
// the borrower names, page 2 the acknowledgment signatures and dates.
func mortgageABAPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("name_1", "Borrower 1 name", "name_1 is missing"),
		validation.OptionalText("name_2", "Borrower 2 name", "name_2 is missing"),
		validation.OptionalText("date_1", "Disclosure date", "date_1 is missing"),
	}}

	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("date_1", "Borrower 1 acknowledgment date", "date_1 is missing"),
		validation.OptionalText("date_2", "Borrower 2 acknowledgment date", "date_2 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2}
}

// mortgageABACrossCheck enforces the document-level rules: both borrower
// signatures must be present on the acknowledgment page, and the disclosure
// date must not postdate either acknowledgment date.
func mortgageABACrossCheck(doc validation.DocumentModel) []validation.DocumentError {
	var errs []validation.DocumentError
	rules := []*validation.DocumentError{
		validation.RequireSignature(doc, 2, "sign_name_1", "Borrower 1"),
		validation.RequireSignature(doc, 2, "sign_name_2", "Borrower 2"),
		validation.DatesOrdered(doc, 1, "date_1", 2, "date_1"),
		validation.DatesOrdered(doc, 1, "date_1", 2, "date_2"),
	}
	for _, e := range rules {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}
