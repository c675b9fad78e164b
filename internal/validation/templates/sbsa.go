package templates

import "github.com/abrforms/docreview/internal/validation"

// SBSA: Statewide Buyer and Seller Advisory. Only the final acknowledgment
// page (page 15 of the printed form) carries fields to validate.
func sbsaPageSchemas() map[int]validation.PageSchema {
	page15 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("disclosure_1", "disclosure_1", "disclosure_1 is missing"),
		validation.OptionalText("disclosure_2", "disclosure_2", "disclosure_2 is missing"),
		validation.Text("disclosure_3", "disclosure_3", "disclosure_3 is missing"),
		validation.OptionalText("disclosure_4", "disclosure_4", "disclosure_4 is missing"),

		validation.OptionalText("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.Text("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.Text("date_2", "date_2", "date_2 is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.OptionalText("date_4", "date_4", "date_4 is missing"),
	}}

	return map[int]validation.PageSchema{15: page15}
}
