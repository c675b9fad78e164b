package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrforms/docreview/internal/validation/templates"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		input    Input
		expected string
	}{
		{
			name: "spq_by_filename",
			input: Input{
				Filename: "escrow_1234_SPQ_signed.pdf",
			},
			expected: templates.TypeSPQ,
		},
		{
			name: "spq_by_field_keys",
			input: Input{
				Filename:  "scan0041.pdf",
				FieldKeys: []string{"parcel_num", "locality", "b_1_init", "s_2_init"},
			},
			expected: templates.TypeSPQ,
		},
		{
			name: "avid_by_title",
			input: Input{
				Filename:      "scan0042.pdf",
				FirstPageText: "AGENT VISUAL INSPECTION DISCLOSURE (CALIFORNIA CIVIL CODE § 2079 ET SEQ.)",
				FieldKeys:     []string{"dining_room_1", "kitchen_1"},
			},
			expected: templates.TypeAVID,
		},
		{
			name: "mortgage_aba_by_filename",
			input: Input{
				Filename: "mortgage_aba_disclosure.pdf",
			},
			expected: templates.TypeMortgageABA,
		},
		{
			name: "sbsa_by_filename_and_keys",
			input: Input{
				Filename:  "SBSA-2024.pdf",
				FieldKeys: []string{"disclosure_1", "disclosure_2", "disclosure_3"},
			},
			expected: templates.TypeSBSA,
		},
		{
			name: "no_evidence",
			input: Input{
				Filename: "scan0099.pdf",
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.input)
			assert.Equal(t, tt.expected, result.DocType)
			if tt.expected != "" {
				assert.GreaterOrEqual(t, result.Confidence, DefaultThreshold)
			}
		})
	}
}

func TestClassifier_ScoresEveryRule(t *testing.T) {
	classifier := NewClassifier()
	result := classifier.Classify(Input{Filename: "SPQ.pdf"})

	reg, err := templates.NewRegistry()
	require.NoError(t, err)
	for _, docType := range reg.DocumentTypes() {
		assert.Contains(t, result.Scores, docType)
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	classifier := NewClassifier()
	input := Input{
		Filename:  "scan.pdf",
		FieldKeys: []string{"buyer_1_name", "buyer_2_name", "date_1", "date_2"},
	}

	first := classifier.Classify(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.DocType, classifier.Classify(input).DocType)
	}
}

func TestClassifier_SpqFilenameDoesNotMatchSpbb(t *testing.T) {
	classifier := NewClassifier()
	result := classifier.Classify(Input{Filename: "forms/SPBB_final.pdf"})
	assert.Equal(t, templates.TypeSPBB, result.DocType)
}

func TestNewClassifierWithRules_CustomThreshold(t *testing.T) {
	rules := []Rule{
		{DocType: "X", FilenamePatterns: []string{`(?i)x`}},
	}
	classifier := NewClassifierWithRules(rules, 0.9)

	result := classifier.Classify(Input{Filename: "x.pdf"})
	assert.Empty(t, result.DocType, "filename signal alone stays below a 0.9 threshold")
	assert.Equal(t, filenameWeight, result.Scores["X"])
}
