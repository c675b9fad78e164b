package templates

import "github.com/abrforms/docreview/internal/validation"

// PRBS: Possible Representation of More Than One Buyer or Seller. Single
// validated page listing the parties, brokerages, licenses, and dates.
func prbsPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.Text("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),

		validation.OptionalText("buyer_brokerage", "buyer_brokerage", "buyer_brokerage is missing"),
		validation.OptionalText("name_1", "name_1", "name_1 is missing"),
		validation.Text("seller_brokerage", "seller_brokerage", "seller_brokerage is missing"),
		validation.OptionalText("name_2", "name_2", "name_2 is missing"),
		validation.OptionalText("license_1", "license_1", "license_1 is missing"),
		validation.Text("license_2", "license_2", "license_2 is missing"),
		validation.OptionalText("license_3", "license_3", "license_3 is missing"),
		validation.OptionalText("license_4", "license_4", "license_4 is missing"),

		validation.OptionalText("date_1", "Date_1", "Date_1 is missing"),
		validation.OptionalText("date_2", "Date_2", "Date_2 is missing"),
		validation.OptionalText("date_3", "Date_3", "Date_3 is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
		validation.OptionalText("date_5", "date_5", "date_5 is missing"),
		validation.Text("date_6", "date_6", "date_6 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1}
}
