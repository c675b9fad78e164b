package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	schema := PageSchema{Fields: []FieldSpec{
		Text("buyer_1_name", "Buyer 1 name", "buyer_1_name is missing"),
		OptionalText("buyer_2_name", "Buyer 2 name", "buyer_2_name is missing"),
		Checked("cb_1", "cb_1", "cb_1 must be checked"),
		AnyState("cb_2", "cb_2", "cb_2 is missing"),
		Signature("sign_name_1", "Signature", "sign_name_1 is missing"),
	}}

	tests := []struct {
		name         string
		rec          PageRecord
		expectedKeys []string
	}{
		{
			name: "fully_satisfied",
			rec: PageRecord{
				"buyer_1_name": "Jane Roe",
				"cb_1":         StateChecked,
				"cb_2":         StateUnchecked,
				"sign_name_1":  true,
			},
			expectedKeys: []string{},
		},
		{
			name: "required_field_absent",
			rec: PageRecord{
				"cb_1":        StateChecked,
				"cb_2":        StateChecked,
				"sign_name_1": true,
			},
			expectedKeys: []string{"buyer_1_name"},
		},
		{
			name: "optional_field_absent",
			rec: PageRecord{
				"buyer_1_name": "Jane Roe",
				"cb_1":         StateChecked,
				"cb_2":         StateChecked,
				"sign_name_1":  true,
			},
			expectedKeys: []string{},
		},
		{
			name: "checkbox_wrong_state",
			rec: PageRecord{
				"buyer_1_name": "Jane Roe",
				"cb_1":         StateUnchecked,
				"cb_2":         StateChecked,
				"sign_name_1":  true,
			},
			expectedKeys: []string{"cb_1"},
		},
		{
			name: "constrained_field_with_non_string_value",
			rec: PageRecord{
				"buyer_1_name": "Jane Roe",
				"cb_1":         true,
				"cb_2":         StateChecked,
				"sign_name_1":  true,
			},
			expectedKeys: []string{"cb_1"},
		},
		{
			name:         "empty_record_collects_every_required_violation",
			rec:          PageRecord{},
			expectedKeys: []string{"buyer_1_name", "cb_1", "cb_2", "sign_name_1"},
		},
		{
			name: "unknown_keys_ignored",
			rec: PageRecord{
				"buyer_1_name": "Jane Roe",
				"cb_1":         StateChecked,
				"cb_2":         StateChecked,
				"sign_name_1":  true,
				"stray_field":  "whatever",
			},
			expectedKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePage(3, schema, tt.rec)

			keys := make([]string, 0, len(errs))
			for _, e := range errs {
				assert.Equal(t, 3, e.Page)
				keys = append(keys, e.Key)
			}
			assert.Equal(t, tt.expectedKeys, keys, "violations must follow declaration order")
		})
	}
}

func TestValidatePage_UsesSchemaErrorMessage(t *testing.T) {
	schema := PageSchema{Fields: []FieldSpec{
		Text("county", "county", "county is missing"),
	}}

	errs := ValidatePage(1, schema, PageRecord{})
	require.Len(t, errs, 1)
	assert.Equal(t, "county is missing", errs[0].Message)
	assert.Equal(t, "page_1.county: county is missing", errs[0].String())
}

func TestValidatePage_Deterministic(t *testing.T) {
	schema := PageSchema{Fields: []FieldSpec{
		Text("a", "a", "a is missing"),
		Text("b", "b", "b is missing"),
		Text("c", "c", "c is missing"),
	}}

	first := ValidatePage(1, schema, PageRecord{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidatePage(1, schema, PageRecord{}))
	}
}
