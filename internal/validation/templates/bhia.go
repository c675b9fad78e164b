package templates

import "github.com/abrforms/docreview/internal/validation"

// BHIA: Buyer Homeowners' Insurance Advisory. Single validated page.
func bhiaPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("buyer_1_name", "Buyer 1 Name", "Name_1 is missing"),
		validation.OptionalText("buyer_2_name", "Buyer 2 Name", "Name_2 is missing"),
		validation.OptionalText("date_1", "Date_1", "Date_1 is missing"),
		validation.OptionalText("date_2", "Date_2", "Date_2 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1}
}
