package templates

import (
	"fmt"

	"github.com/abrforms/docreview/internal/validation"
)

// AVID: Agent Visual Inspection Disclosure, buyer side. Four pages: property
// identification, room-by-room inspection notes, inspection sign-off, and the
// addendum page.
func avidPageSchemas() map[int]validation.PageSchema {
	page1 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("city", "City name", "City name is missing"),
		validation.OptionalText("county", "County name", "County name is missing"),
		validation.OptionalText("add_1", "Address 1", "Address 1 is missing"),
		validation.OptionalText("add_2", "Address 2", "Address 2 is missing"),
		validation.OptionalText("units", "Units", "Units value is missing"),
		validation.OptionalText("broker_firm", "Broker's Firm", "Broker's Firm is missing"),
		validation.OptionalText("b_1_init", "Buyer_1 initials", "Buyer_1 initials is missing"),
		validation.Text("b_2_init", "Buyer_2 initials", "Buyer_2 initials is missing"),

		validation.Checked("cb_1", "checkbox_1", "checkbox_1 should be checked"),
		validation.Unchecked("cb_2", "checkbox_2", "checkbox_2 should be unchecked"),
	}}

	page2Fields := []validation.FieldSpec{
		validation.Text("unit", "Unit", "Unit is missing"),
		validation.OptionalText("entry_1", "entry_1", "entry_1 is missing"),
		validation.OptionalText("entry_2", "entry_2", "entry_2 is missing"),
		validation.OptionalText("entry_3", "entry_3", "entry_3 is missing"),
		validation.OptionalText("living_room_1", "living_room_1", "living_room_1 is missing"),
		validation.OptionalText("living_room_2", "living_room_2", "living_room_2 is missing"),
		validation.OptionalText("living_room_3", "living_room_3", "living_room_3 is missing"),
	}
	for _, room := range []string{"dining_room", "kitchen", "other", "hall"} {
		for _, n := range []string{"1", "2", "3"} {
			key := room + "_" + n
			page2Fields = append(page2Fields, validation.Text(key, key, key+" is missing"))
		}
	}
	for i, bed := range []string{"bedroom_1", "bedroom_2", "bedroom_3", "bedroom_4", "bath_1", "bath_2", "bath_3", "bath_4"} {
		counter := fmt.Sprintf("n%d", i+1)
		page2Fields = append(page2Fields, validation.Text(counter, counter, counter+" is missing"))
		for _, suffix := range []string{"a", "b", "c"} {
			key := bed + suffix
			page2Fields = append(page2Fields, validation.Text(key, key, key+" is missing"))
		}
	}
	page2Fields = append(page2Fields,
		validation.Text("b_1_init", "Buyer_1 initials", "Buyer_1 initials is missing"),
		validation.Text("b_2_init", "Buyer_2 initials", "Buyer_2 initials is missing"),
	)
	page2 := validation.PageSchema{Fields: page2Fields}

	page3Fields := []validation.FieldSpec{
		validation.Text("unit", "unit", "unit is missing"),
	}
	for _, other := range []string{"other_1", "other_2", "other_3"} {
		for _, suffix := range []string{"a", "b", "c"} {
			key := other + suffix
			page3Fields = append(page3Fields, validation.Text(key, key, key+" is missing"))
		}
	}
	page3Fields = append(page3Fields,
		validation.Checked("cb_1", "checkbox_1", "checkbox_1 should be checked"),
		validation.Text("structures_1a", "structures_1a", "structures_1a is missing"),
		validation.Text("structures_1b", "structures_1b", "structures_1b is missing"),
		validation.Text("garage_1a", "garage_1a", "garage_1a is missing"),
		validation.Text("garage_1b", "garage_1b", "garage_1b is missing"),
		validation.Text("garage_1c", "garage_1c", "garage_1c is missing"),
		validation.Text("garage_1d", "garage_1d", "garage_1d is missing"),
		validation.Text("exterior_1a", "exterior_1a", "exterior_1a is missing"),
		validation.Text("exterior_1b", "exterior_1b", "exterior_1b is missing"),
		validation.Text("exterior_1c", "exterior_1c", "exterior_1c is missing"),
		validation.Text("observed_1a", "observed_1a", "observed_1a is missing"),
		validation.Text("observed_1b", "observed_1b", "observed_1b is missing"),
		validation.Text("observed_1c", "observed_1c", "observed_1c is missing"),
		validation.Text("inspection_firm", "inspection_firm", "inspection_firm is missing"),
		validation.Text("inspection_agent", "inspection_agent", "inspection_agent is missing"),
		validation.Text("date_time", "date_time", "date_time is missing"),
		validation.Text("weather", "weather", "weather is missing"),
		validation.Text("other_person", "other_person", "other_person is missing"),
		validation.Text("name_1", "name_1", "name_1 is missing"),
		validation.Text("date_1", "date_1", "date_1 is missing"),
		validation.Text("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.Text("date_2", "date_2", "date_2 is missing"),
		validation.Text("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.Text("date_3", "date_3", "date_3 is missing"),
		validation.Text("s_1_init", "s_1_init", "s_1_init is missing"),
		validation.Text("s_2_init", "s_2_init", "s_2_init is missing"),
		validation.Text("broker_1", "broker_1", "broker_1 is missing"),
		validation.Text("name_2", "name_2", "name_2 is missing"),
		validation.Text("date_4", "date_4", "date_4 is missing"),
	)
	page3 := validation.PageSchema{Fields: page3Fields}

	page4 := validation.PageSchema{Fields: []validation.FieldSpec{
		validation.Text("addendum", "addendum", "addendum is missing"),
		validation.OptionalText("add_1", "Address 1", "Address 1 is missing"),
		validation.OptionalText("add_2", "Address 2", "Address 2 is missing"),
		validation.OptionalText("buyer", "buyer", "buyer is missing"),
		validation.OptionalText("seller", "seller", "seller is missing"),
		validation.OptionalText("buyer_1_name", "buyer_1_name", "buyer_1_name is missing"),
		validation.OptionalText("date_1", "date_1", "date_1 is missing"),
		validation.Text("buyer_2_name", "buyer_2_name", "buyer_2_name is missing"),
		validation.OptionalText("date_2", "date_2", "date_2 is missing"),
		validation.OptionalText("seller_1_name", "seller_1_name", "seller_1_name is missing"),
		validation.OptionalText("date_3", "date_3", "date_3 is missing"),
		validation.Text("seller_2_name", "seller_2_name", "seller_2_name is missing"),
		validation.OptionalText("date_4", "date_4", "date_4 is missing"),
	}}

	return map[int]validation.PageSchema{1: page1, 2: page2, 3: page3, 4: page4}
}

// avidCrossCheck verifies that the identities captured more than once across
// the form agree: buyer initials between pages 1 and 2, and buyer names
// between the sign-off page and the addendum.
func avidCrossCheck(doc validation.DocumentModel) []validation.DocumentError {
	var errs []validation.DocumentError
	rules := []*validation.DocumentError{
		validation.NamesMatch(doc, 1, "b_1_init", 2, "b_1_init"),
		validation.NamesMatch(doc, 1, "b_2_init", 2, "b_2_init"),
		validation.NamesMatch(doc, 3, "buyer_1_name", 4, "buyer_1_name"),
		validation.NamesMatch(doc, 3, "buyer_2_name", 4, "buyer_2_name"),
	}
	for _, e := range rules {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}
