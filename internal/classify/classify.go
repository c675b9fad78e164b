// Package classify identifies which real-estate form template a scanned PDF
// is an instance of, using filename hints, first-page text, and the set of
// detected field keys.
package classify

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultThreshold is the minimum combined score required to accept a match.
const DefaultThreshold = 0.3

// Signal weights. Filename hits are the strongest signal since batch inputs
// are usually named after the form code; field-key overlap beats title text
// because scanned covers OCR poorly.
const (
	filenameWeight = 0.6
	fieldKeyWeight = 0.4
	titleWeight    = 0.25
)

// Rule describes the identifying marks of one form template.
type Rule struct {
	DocType          string
	FilenamePatterns []string
	TitleKeywords    []string
	FieldKeys        []string

	filenameRegexps []*regexp.Regexp
}

// Input carries the classification evidence for one document.
type Input struct {
	Filename      string
	FirstPageText string
	FieldKeys     []string
}

// Result is the outcome of classifying one document. DocType is empty when
// no rule scored above the classifier's threshold; Scores lists every
// candidate for diagnostics.
type Result struct {
	DocType    string             `json:"doc_type"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

// Classifier scores documents against a rule table.
type Classifier struct {
	rules     []Rule
	threshold float64
}

// NewClassifier creates a classifier over the default rule table.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(defaultRules(), DefaultThreshold)
}

// NewClassifierWithRules creates a classifier over a custom rule table.
func NewClassifierWithRules(rules []Rule, threshold float64) *Classifier {
	for i := range rules {
		for _, pattern := range rules[i].FilenamePatterns {
			rules[i].filenameRegexps = append(rules[i].filenameRegexps, regexp.MustCompile(pattern))
		}
	}
	return &Classifier{rules: rules, threshold: threshold}
}

// Classify scores the input against every rule and returns the best match.
// Ties break alphabetically by document type so results are deterministic.
func (c *Classifier) Classify(input Input) Result {
	result := Result{Scores: make(map[string]float64, len(c.rules))}

	text := strings.ToLower(input.FirstPageText)
	keys := make(map[string]bool, len(input.FieldKeys))
	for _, k := range input.FieldKeys {
		keys[k] = true
	}

	types := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		result.Scores[rule.DocType] = rule.score(input.Filename, text, keys)
		types = append(types, rule.DocType)
	}
	sort.Strings(types)

	for _, docType := range types {
		score := result.Scores[docType]
		if score > result.Confidence {
			result.DocType = docType
			result.Confidence = score
		}
	}

	if result.Confidence < c.threshold {
		result.DocType = ""
	}
	return result
}

func (r Rule) score(filename, text string, keys map[string]bool) float64 {
	var score float64

	for _, re := range r.filenameRegexps {
		if re.MatchString(filename) {
			score += filenameWeight
			break
		}
	}

	if len(r.TitleKeywords) > 0 && text != "" {
		matched := 0
		for _, kw := range r.TitleKeywords {
			if strings.Contains(text, kw) {
				matched++
			}
		}
		score += titleWeight * float64(matched) / float64(len(r.TitleKeywords))
	}

	if len(r.FieldKeys) > 0 && len(keys) > 0 {
		matched := 0
		for _, k := range r.FieldKeys {
			if keys[k] {
				matched++
			}
		}
		score += fieldKeyWeight * float64(matched) / float64(len(r.FieldKeys))
	}

	return score
}
