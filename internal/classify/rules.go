package classify

import "github.com/abrforms/docreview/internal/validation/templates"

// defaultRules returns the default rule table, one rule per supported form.
// Filename patterns match the form codes batch inputs are usually named
// after; title keywords come from the printed form headings; field keys are
// normalized keys distinctive to each template.
func defaultRules() []Rule {
	return []Rule{
		{
			DocType:          templates.TypeAD2,
			FilenamePatterns: []string{`(?i)(^|[^a-z])ad[_\- ]?2([^0-9]|$)`},
			TitleKeywords:    []string{"disclosure regarding", "real estate agency relationship"},
			FieldKeys:        []string{"cb_1", "cb_9", "license_1", "sign_agent"},
		},
		{
			DocType:          templates.TypeAVID,
			FilenamePatterns: []string{`(?i)(^|[^a-z])avid([^a-z]|$)`},
			TitleKeywords:    []string{"agent visual inspection", "disclosure"},
			FieldKeys:        []string{"dining_room_1", "kitchen_1", "bedroom_1_a", "b_1_init"},
		},
		{
			DocType:          templates.TypeBHIA,
			FilenamePatterns: []string{`(?i)(^|[^a-z])bhia([^a-z]|$)`},
			TitleKeywords:    []string{"homeowners' insurance", "advisory"},
			FieldKeys:        []string{"buyer_1_name", "buyer_2_name", "date_1", "date_2"},
		},
		{
			DocType:          templates.TypeBuyerAdvisory,
			FilenamePatterns: []string{`(?i)buyer[_\- ]?advisory`, `(?i)(^|[^a-z])bia([^a-z]|$)`},
			TitleKeywords:    []string{"buyer's investigation", "advisory"},
			FieldKeys:        []string{"address", "buyer_1_name", "buyer_2_name"},
		},
		{
			DocType:          templates.TypeEnvironmental,
			FilenamePatterns: []string{`(?i)environmental`, `(?i)(^|[^a-z])ehd([^a-z]|$)`},
			TitleKeywords:    []string{"environmental hazards", "booklet"},
			FieldKeys:        []string{"seller_agent", "buyer_agent", "sign_seller_1", "sign_seller_agent"},
		},
		{
			DocType:          templates.TypeFHDA,
			FilenamePatterns: []string{`(?i)(^|[^a-z])fhda([^a-z]|$)`},
			TitleKeywords:    []string{"fair housing", "discrimination advisory"},
			FieldKeys:        []string{"buyer_1_name", "seller_2_name", "date_3", "date_4"},
		},
		{
			DocType:          templates.TypeMortgageABA,
			FilenamePatterns: []string{`(?i)mortgage[_\- ]?aba`, `(?i)affiliated`},
			TitleKeywords:    []string{"affiliated business arrangement", "disclosure"},
			FieldKeys:        []string{"name_1", "name_2", "sign_name_1", "sign_name_2"},
		},
		{
			DocType:          templates.TypePRBS,
			FilenamePatterns: []string{`(?i)(^|[^a-z])prbs([^a-z]|$)`},
			TitleKeywords:    []string{"possible representation", "more than one buyer or seller"},
			FieldKeys:        []string{"buyer_brokerage", "seller_brokerage", "license_2", "date_6"},
		},
		{
			DocType:          templates.TypeSBSA,
			FilenamePatterns: []string{`(?i)(^|[^a-z])sbsa([^a-z]|$)`},
			TitleKeywords:    []string{"statewide buyer and seller", "advisory"},
			FieldKeys:        []string{"disclosure_1", "disclosure_2", "disclosure_3", "disclosure_4"},
		},
		{
			DocType:          templates.TypeSPBB,
			FilenamePatterns: []string{`(?i)(^|[^a-z])spbb([^a-z]|$)`},
			TitleKeywords:    []string{"seller payment", "buyer's broker"},
			FieldKeys:        []string{"prcnt", "seller_broker", "buyer_broker", "property_1"},
		},
		{
			DocType:          templates.TypeSPQ,
			FilenamePatterns: []string{`(?i)(^|[^a-z])spq([^a-z]|$)`},
			TitleKeywords:    []string{"seller property questionnaire"},
			FieldKeys:        []string{"parcel_num", "locality", "b_1_init", "s_2_init"},
		},
	}
}
