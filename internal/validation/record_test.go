package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawRecord(t *testing.T) {
	data := []byte(`{
		"text_fields": {"Buyer_1_Name": "Jane Roe", "date_1": null},
		"checkboxes": {"cb_1": {"state": "checked", "bbox": {"x0": 1, "y0": 2, "x1": 3, "y1": 4}}},
		"signatures": {"name_1": {}},
		"detector_version": "2.1"
	}`)

	rec, err := ParseRawRecord(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Buyer_1_Name": "Jane Roe"}, rec.TextFields,
		"null text values are not provided")
	require.Contains(t, rec.Checkboxes, "cb_1")
	assert.Equal(t, StateChecked, rec.Checkboxes["cb_1"].State)
	require.NotNil(t, rec.Checkboxes["cb_1"].BBox)
	assert.Equal(t, Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}, *rec.Checkboxes["cb_1"].BBox)
	assert.Contains(t, rec.Signatures, "name_1")
	assert.Equal(t, "2.1", rec.Extra["detector_version"])
}

func TestParseRawRecord_MissingCategoriesAreEmpty(t *testing.T) {
	rec, err := ParseRawRecord([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, rec.TextFields)
	assert.Empty(t, rec.Checkboxes)
	assert.Empty(t, rec.Signatures)
}

func TestParseRawRecord_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		category string
	}{
		{
			name:     "not_an_object",
			data:     `[1, 2, 3]`,
			category: "",
		},
		{
			name:     "text_fields_wrong_shape",
			data:     `{"text_fields": ["a", "b"]}`,
			category: "text_fields",
		},
		{
			name:     "checkboxes_wrong_shape",
			data:     `{"checkboxes": {"cb_1": "checked"}}`,
			category: "checkboxes",
		},
		{
			name:     "signatures_wrong_shape",
			data:     `{"signatures": 7}`,
			category: "signatures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRawRecord([]byte(tt.data))
			require.Error(t, err)

			var malformed *MalformedRecordError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.category, malformed.Category)
		})
	}
}
