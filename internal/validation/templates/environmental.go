package templates

import "github.com/abrforms/docreview/internal/validation"

// Environmental Hazards disclosure. Page 1 carries the seller-side entries,
// page 2 the buyer/seller acknowledgments and signatures.
func environmentalPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.OptionalText("date_2", "date_2", "date_2 is missing"),
		validation.OptionalText("seller_agent", "seller_agent", "seller_agent is missing"),
		validation.Text("date_3", "date_3", "date_3 is missing"),
		validation.OptionalText("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
		validation.Text("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.Text("date_5", "date_5", "date_5 is missing"),
		validation.Text("buyer_agent", "buyer_agent", "buyer_agent is missing"),
		validation.Text("date_6", "date_6", "date_6 is missing"),
	}}

	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("address_2", "address_2", "address_2 is missing"),
		validation.OptionalText("buyer_1_sign", "buyer_1_sign", "buyer_1_sign is missing"),
		validation.OptionalText("buyer_2_sign", "buyer_2_sign", "buyer_2_sign is missing"),
		validation.OptionalText("buyer_agent_sign", "buyer_agent_sign", "buyer_agent_sign is missing"),
		validation.OptionalText("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.Text("date_1", "date_1", "date_1 is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.Text("date_2", "date_2", "date_2 is missing"),
		validation.Text("buyer_agent_name", "buyer_agent_name", "buyer_agent_name is missing"),
		validation.Text("date_3", "date_3", "date_3 is missing"),
		validation.Text("broker_1_name", "broker_1_name", "broker_1_name is missing"),
		validation.Signature("sign_seller_1", "sign_seller_1", "sign_seller_1 is missing"),
		validation.Text("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
		validation.Signature("sign_seller_2", "sign_seller_2", "sign_seller_2 is missing"),
		validation.Text("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.Text("date_5", "date_5", "date_5 is missing"),
		validation.Text("date_6", "date_6", "date_6 is missing"),
		validation.Signature("sign_seller_agent", "sign_seller_agent", "sign_seller_agent is missing"),
		validation.Text("seller_agent_name", "seller_agent_name", "seller_agent_name is missing"),
		validation.Text("broker_2_name", "broker_2_name", "broker_2_name is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2}
}
