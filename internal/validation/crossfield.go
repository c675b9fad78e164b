package validation

import (
	"fmt"
	"time"
)

// CrossCheckFunc evaluates the document-level rules of one template. Each
// violated rule yields one DocumentError; rules are independent and every
// violation is reported.
type CrossCheckFunc func(doc DocumentModel) []DocumentError

// CrossCheck invokes a template's rule function and normalizes its output.
// A nil function means the template declares no document-level rules.
func CrossCheck(fn CrossCheckFunc, doc DocumentModel) []DocumentError {
	if fn == nil {
		return []DocumentError{}
	}
	errs := fn(doc)
	if errs == nil {
		return []DocumentError{}
	}
	return errs
}

// RequireSignature reports an error when the named signature flag is not set
// on the given page. Returns nil when the rule holds.
func RequireSignature(doc DocumentModel, page int, key, label string) *DocumentError {
	if doc.Signed(page, key) {
		return nil
	}
	return &DocumentError{
		Message: fmt.Sprintf("%s signature missing (page_%d.%s)", label, page, key),
	}
}

// NamesMatch reports an error when two captured occurrences of the same name
// differ. Comparison is exact string equality; detector or OCR variance is
// expected to surface here rather than be smoothed over. The rule only fires
// when both occurrences were observed.
func NamesMatch(doc DocumentModel, pageA int, keyA string, pageB int, keyB string) *DocumentError {
	a := doc.Text(pageA, keyA)
	b := doc.Text(pageB, keyB)
	if a == "" || b == "" || a == b {
		return nil
	}
	return &DocumentError{
		Message: fmt.Sprintf("page_%d.%s: %q doesn't match page_%d.%s: %q", pageA, keyA, a, pageB, keyB, b),
	}
}

// dateLayouts covers the date formats observed on the supported forms.
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DatesOrdered reports an error when the earlier field holds a later date
// than the later field. Missing or unparseable values are not judged; the
// rule only fires on two well-formed dates in the wrong order.
func DatesOrdered(doc DocumentModel, earlierPage int, earlierKey string, laterPage int, laterKey string) *DocumentError {
	earlierRaw := doc.Text(earlierPage, earlierKey)
	laterRaw := doc.Text(laterPage, laterKey)
	earlier, okA := parseDate(earlierRaw)
	later, okB := parseDate(laterRaw)
	if !okA || !okB || !earlier.After(later) {
		return nil
	}
	return &DocumentError{
		Message: fmt.Sprintf("page_%d.%s: %q is a later date than page_%d.%s: %q",
			earlierPage, earlierKey, earlierRaw, laterPage, laterKey, laterRaw),
	}
}
