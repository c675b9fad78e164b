package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "angle_brackets_stripped",
			input:    "<Buyer_1_Name>",
			expected: "buyer_1_name",
		},
		{
			name:     "hyphens_become_underscores",
			input:    "date-1",
			expected: "date_1",
		},
		{
			name:     "lowercased",
			input:    "LICENSE_1",
			expected: "license_1",
		},
		{
			name:     "combined",
			input:    "<Seller-Agent>",
			expected: "seller_agent",
		},
		{
			name:     "already_canonical",
			input:    "parcel_num",
			expected: "parcel_num",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	inputs := []string{"<Buyer-1_Name>", "DATE-1", "sign_name_1", "cb<2>"}
	for _, input := range inputs {
		once := NormalizeKey(input)
		assert.Equal(t, once, NormalizeKey(once), "normalizing %q twice changed the key", input)
	}
}

func TestNormalize(t *testing.T) {
	raw := RawDetectionRecord{
		TextFields: map[string]string{
			"<Buyer_1_Name>": "Jane Roe",
			"date-1":         "1/2/2024",
			"empty_field":    "",
		},
		Checkboxes: map[string]CheckboxObservation{
			"CB_1": {State: StateChecked},
			"cb-2": {State: StateUnchecked},
		},
		Signatures: map[string]SignatureObservation{
			"Name_1": {},
		},
	}

	rec, collisions := Normalize(raw)

	assert.Empty(t, collisions)
	assert.Equal(t, "Jane Roe", rec["buyer_1_name"])
	assert.Equal(t, "1/2/2024", rec["date_1"])
	assert.NotContains(t, rec, "empty_field", "empty text values mean not provided")
	assert.Equal(t, StateChecked, rec["cb_1"])
	assert.Equal(t, StateUnchecked, rec["cb_2"])
	assert.Equal(t, true, rec["sign_name_1"])
	assert.Len(t, rec, 5)
}

func TestNormalize_SignaturePrefixAvoidsTextCollision(t *testing.T) {
	raw := RawDetectionRecord{
		TextFields: map[string]string{"name_1": "Jane Roe"},
		Signatures: map[string]SignatureObservation{"name_1": {}},
	}

	rec, collisions := Normalize(raw)

	require.Empty(t, collisions)
	assert.Equal(t, "Jane Roe", rec["name_1"])
	assert.Equal(t, true, rec["sign_name_1"])
}

func TestNormalize_ExtraCopiedThrough(t *testing.T) {
	raw := RawDetectionRecord{
		Extra: map[string]any{"Page-Confidence": 0.92},
	}

	rec, collisions := Normalize(raw)

	assert.Empty(t, collisions)
	assert.Equal(t, 0.92, rec["page_confidence"])
}

func TestNormalize_CollisionsReported(t *testing.T) {
	raw := RawDetectionRecord{
		TextFields: map[string]string{
			"Date_1": "1/2/2024",
			"date-1": "3/4/2024",
			"DATE_1": "5/6/2024",
			"cb_1":   "stray text",
		},
		Checkboxes: map[string]CheckboxObservation{
			"CB_1": {State: StateChecked},
		},
	}

	_, collisions := Normalize(raw)

	assert.Equal(t, []string{"cb_1", "date_1"}, collisions, "collisions must be sorted")
}

func TestNormalize_EmptyRecord(t *testing.T) {
	rec, collisions := Normalize(RawDetectionRecord{})

	assert.Empty(t, rec)
	assert.Empty(t, collisions)
}
