package templates

import "github.com/abrforms/docreview/internal/validation"

// FHDA: Fair Housing and Discrimination Advisory. Only the acknowledgment
// page (page 2 of the printed form) carries fields to validate.
func fhdaPageSchemas() map[int]validation.PageSchema {
	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("buyer_1_name", "Buyer 1 Name", "Name_1 is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.OptionalText("date_2", "date_2 name", "date_2 name is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.OptionalText("date_4", "date_4", "date_4 is missing"),
		validation.OptionalText("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.Text("seller_2_name", "seller_2_name", "seller_2_name is missing"),
	}}

	return map[int]validation.PageSchema{2: page2}
}
