package templates

import "github.com/abrforms/docreview/internal/validation"

// SPBB: Seller Payment to Buyer's Broker. Single validated page.
func spbbPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("field", "field", "field is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.Text("property_1", "property_1", "property_1 is missing"),
		validation.OptionalText("buyer_0_name", "buyer_0_name", "buyer_0_name is missing"),
		validation.OptionalText("seller_0_name", "seller_0_name", "seller_0_name is missing"),
		validation.OptionalText("buyer_broker", "buyer_broker", "buyer_broker is missing"),
		validation.Text("seller_broker", "seller_broker", "seller_broker is missing"),
		validation.OptionalText("any", "any", "any is missing"),
		validation.OptionalText("price", "price", "price is missing"),
		validation.Text("date_2", "date_2", "date_2 is missing"),
		validation.OptionalText("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.OptionalText("date_5", "date_5", "date_5 is missing"),
		validation.Text("prcnt", "prcnt", "prcnt is missing"),
		validation.OptionalText("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
	}}

	return map[int]validation.PageSchema{1: page1}
}
