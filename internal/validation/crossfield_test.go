package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossCheck_NilFunctionMeansNoRules(t *testing.T) {
	errs := CrossCheck(nil, DocumentModel{})
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestCrossCheck_NormalizesNilReturn(t *testing.T) {
	fn := func(doc DocumentModel) []DocumentError { return nil }
	errs := CrossCheck(fn, DocumentModel{})
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestRequireSignature(t *testing.T) {
	tests := []struct {
		name      string
		doc       DocumentModel
		violation bool
	}{
		{
			name:      "signature_present",
			doc:       DocumentModel{2: PageRecord{"sign_name_1": true}},
			violation: false,
		},
		{
			name:      "signature_absent",
			doc:       DocumentModel{2: PageRecord{}},
			violation: true,
		},
		{
			name:      "page_absent",
			doc:       DocumentModel{},
			violation: true,
		},
		{
			name:      "key_holds_non_bool",
			doc:       DocumentModel{2: PageRecord{"sign_name_1": "yes"}},
			violation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSignature(tt.doc, 2, "sign_name_1", "Borrower 1")
			if tt.violation {
				require.NotNil(t, err)
				assert.Equal(t, "Borrower 1 signature missing (page_2.sign_name_1)", err.Message)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		violation bool
	}{
		{name: "equal_names", a: "Jane Roe", b: "Jane Roe", violation: false},
		{name: "different_names", a: "Jane Roe", b: "Jane Doe", violation: true},
		{name: "first_missing", a: "", b: "Jane Doe", violation: false},
		{name: "second_missing", a: "Jane Roe", b: "", violation: false},
		{name: "case_differs", a: "jane roe", b: "Jane Roe", violation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DocumentModel{
				4: PageRecord{"buyer_1_name": tt.a},
				5: PageRecord{"buyer_1_name": tt.b},
			}
			err := NamesMatch(doc, 4, "buyer_1_name", 5, "buyer_1_name")
			if tt.violation {
				require.NotNil(t, err)
				assert.Contains(t, err.Message, "doesn't match")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestNamesMatch_MessageFormat(t *testing.T) {
	doc := DocumentModel{
		1: PageRecord{"b_1_init": "JR"},
		2: PageRecord{"b_1_init": "JD"},
	}
	err := NamesMatch(doc, 1, "b_1_init", 2, "b_1_init")
	require.NotNil(t, err)
	assert.Equal(t, `page_1.b_1_init: "JR" doesn't match page_2.b_1_init: "JD"`, err.Message)
}

func TestDatesOrdered(t *testing.T) {
	tests := []struct {
		name      string
		earlier   string
		later     string
		violation bool
	}{
		{name: "in_order", earlier: "1/2/2024", later: "1/5/2024", violation: false},
		{name: "same_day", earlier: "1/2/2024", later: "1/2/2024", violation: false},
		{name: "out_of_order", earlier: "3/15/2024", later: "3/1/2024", violation: true},
		{name: "iso_format", earlier: "2024-06-01", later: "2024-05-01", violation: true},
		{name: "long_format", earlier: "January 2, 2024", later: "March 1, 2024", violation: false},
		{name: "earlier_unparseable", earlier: "soon", later: "1/2/2024", violation: false},
		{name: "later_unparseable", earlier: "1/2/2024", later: "whenever", violation: false},
		{name: "both_missing", earlier: "", later: "", violation: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DocumentModel{
				1: PageRecord{"date_1": tt.earlier},
				2: PageRecord{"date_1": tt.later},
			}
			err := DatesOrdered(doc, 1, "date_1", 2, "date_1")
			if tt.violation {
				require.NotNil(t, err)
				assert.Contains(t, err.Message, "later date")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
