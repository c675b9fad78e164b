package templates

import "github.com/abrforms/docreview/internal/validation"

// AD2: Disclosure Regarding Real Estate Agency Relationship, brokerage to
// buyer. Two validated pages; the first carries the parties, dates, licenses,
// and all four signatures, the second the acknowledgment checkboxes and agent
// licenses.
func ad2PageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("name_1", "Buyer 1 Name", "Name_1 is missing"),
		validation.OptionalText("name_2", "Name_2", "Name_2 is missing"),
		validation.OptionalText("agent", "Broker's name", "Broker's name is missing"),
		validation.OptionalText("name_3", "Broker Associate's name", "Broker Associate's name is missing"),
		validation.OptionalText("date_1", "Date_1", "Date_1 is missing"),
		validation.OptionalText("date_2", "Date_2", "Date_2 is missing"),
		validation.OptionalText("date_3", "Date_3", "Date_3 is missing"),
		validation.Text("license_1", "DRE License_1", "DRE License_1 is missing"),
		validation.OptionalText("license_2", "DRE License_2", "DRE License_2 is missing"),

		validation.Checked("cb_1", "checkbox for lease", "checkbox_1 should be checked"),
		validation.Unchecked("cb_2", "checkbox_2", "checkbox_2 should be unchecked"),
		validation.AnyState("cb_3", "checkbox_3", "checkbox_3 should be checked"),
		validation.AnyState("cb_4", "checkbox_4", "checkbox_4 should be checked"),
		validation.AnyState("cb_5", "checkbox_5", "checkbox_5 should be checked"),
		validation.AnyState("cb_6", "checkbox_6", "checkbox_6 should be checked"),
		validation.AnyState("cb_7", "checkbox_7", "checkbox_7 should be checked"),
		validation.Checked("cb_8", "checkbox_8", "checkbox_8 should be checked"),
		validation.AnyState("cb_9", "checkbox_9", "checkbox_9 should be checked"),

		validation.Signature("sign_name_1", "Name_1 signature", "Signature in Name_1 is missing"),
		validation.Signature("sign_name_2", "Name_2 signature", "Signature in Name_2 is missing"),
		validation.Signature("sign_name_3", "Broker Associate's signature", "Broker Associate's signature is missing"),
		validation.Signature("sign_agent", "Broker's signature", "Broker's signature is missing"),
	}}

	page2 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Checked("cb_1", "checkbox for lease", "checkbox_1 should be checked"),
		validation.AnyState("cb_2", "checkbox_2", "checkbox_2 should be checked"),
		validation.AnyState("cb_3", "checkbox_3", "checkbox_3 should be checked"),
		validation.AnyState("cb_4", "checkbox_4", "checkbox_4 should be checked"),
		validation.AnyState("cb_5", "checkbox_5", "checkbox_5 should be checked"),
		validation.AnyState("cb_6", "checkbox_6", "checkbox_6 should be checked"),
		validation.Checked("cb_7", "checkbox_7", "checkbox_7 should be checked"),
		validation.AnyState("cb_8", "checkbox_8", "checkbox_8 should be checked"),

		validation.Text("license_1", "License of Agent_1", "Agent_1's license is missing"),
		validation.Text("license_2", "License of Agent_2", "Agent_2's license is missing"),
		validation.Text("license_3", "License of Agent_3", "Agent_3's license is missing"),
		validation.Text("license_4", "License of Agent_4", "Agent_4's license is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2}
}
