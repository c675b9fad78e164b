package templates

import "github.com/abrforms/docreview/internal/validation"

// Buyer Advisory: the property address on page 1, buyer names and dates on
// the acknowledgment page.
func buyerAdvisoryPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("address", "Address", "Address is missing"),
	}}

	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.Text("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.Text("date_1", "date_1", "date_1 is missing"),
		validation.Text("date_2", "date_2", "date_2 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2}
}
