package templates

import "github.com/abrforms/docreview/internal/validation"

// SPQ: Seller Property Questionnaire. Five validated pages: buyer and
// seller initials on pages 1-3, the signature block on page 4, and the
// addendum signature block on page 5.
func spqPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("parcel_num", "parcel_num", "parcel_num is missing"),
		validation.OptionalText("locality", "locality", "locality is missing"),
		validation.Text("county", "county", "county is missing"),
		validation.OptionalText("units", "units", "units is missing"),
		validation.OptionalText("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("explanation_1", "explanation_1", "explanation_1 is missing"),
		validation.Text("b_1_init", "b_1_init", "b_1_init is missing"),
		validation.OptionalText("b_2_init", "b_2_init", "b_2_init is missing"),
		validation.OptionalText("s_1_init", "s_1_init", "s_1_init is missing"),
		validation.Text("s_2_init", "s_2_init", "s_2_init is missing"),
		validation.OptionalText("address_2", "address_2", "address_2 is missing"),
	}}

	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("attached_1", "attached_1", "attached_1 is missing"),
		validation.Text("attached_2", "attached_2", "attached_2 is missing"),
		validation.OptionalText("explanation_1", "explanation_1", "explanation_1 is missing"),
		validation.OptionalText("b_1_init", "b_1_init", "b_1_init is missing"),
		validation.OptionalText("b_2_init", "b_2_init", "b_2_init is missing"),
		validation.Text("s_1_init", "s_1_init", "s_1_init is missing"),
		validation.OptionalText("s_2_init", "s_2_init", "s_2_init is missing"),
		validation.OptionalText("explanation_2", "explanation_2", "explanation_2 is missing"),
		validation.Text("explanation_3", "explanation_3", "explanation_3 is missing"),
	}}

	page3 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("explanation_1", "explanation_1", "explanation_1 is missing"),
		validation.Text("explanation_2", "explanation_2", "explanation_2 is missing"),
		validation.OptionalText("explanation_3", "explanation_3", "explanation_3 is missing"),
		validation.OptionalText("explanation_4", "explanation_4", "explanation_4 is missing"),
		validation.OptionalText("explanation_5", "explanation_5", "explanation_5 is missing"),
		validation.Text("b_1_init", "b_1_init", "b_1_init is missing"),
		validation.OptionalText("b_2_init", "b_2_init", "b_2_init is missing"),
		validation.OptionalText("s_1_init", "s_1_init", "s_1_init is missing"),
		validation.Text("s_2_init", "s_2_init", "s_2_init is missing"),
	}}

	page4 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("address_1", "address_1", "address_1 is missing"),
		validation.OptionalText("explanation_1", "explanation_1", "explanation_1 is missing"),
		validation.Text("explanation_2", "explanation_2", "explanation_2 is missing"),
		validation.OptionalText("explanation_3", "explanation_3", "explanation_3 is missing"),
		validation.OptionalText("explanation_4", "explanation_4", "explanation_4 is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.Text("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.OptionalText("date_2", "date_2", "date_2 is missing"),
		validation.Text("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
	}}

	page5 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.OptionalText("addendum", "addendum", "addendum is missing"),
		validation.OptionalText("address_1", "address_1", "address_1 is missing"),
		validation.Text("address_2", "address_2", "address_2 is missing"),
		validation.OptionalText("buyer_name", "buyer_name", "buyer_name is missing"),
		validation.OptionalText("seller_name", "seller_name", "seller_name is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.Text("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.OptionalText("date_2", "date_2", "date_2 is missing"),
		validation.Text("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.OptionalText("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2, 3: page3, 4: page4, 5: page5}
}

// spqCrossCheck verifies that the parties signing the questionnaire on
// page 4 are the same ones signing the addendum on page 5.
func spqCrossCheck(doc validation.DocumentModel) []validation.DocumentError {
	var errs []validation.DocumentError
	rules := []*validation.DocumentError{
		validation.NamesMatch(doc, 4, "buyer_1_name", 5, "buyer_1_name"),
		validation.NamesMatch(doc, 4, "buyer_2_name", 5, "buyer_2_name"),
		validation.NamesMatch(doc, 4, "seller_1_name", 5, "seller_1_name"),
		validation.NamesMatch(doc, 4, "seller_2_name", 5, "seller_2_name"),
	}
	for _, e := range rules {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}
