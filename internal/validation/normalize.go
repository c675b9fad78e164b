package validation

import (
	"sort"
	"strings"
)

// SignaturePrefix is prepended to the canonical key of every signature
// observation so that signatures never collide with same-named text fields.
const SignaturePrefix = "sign_"

var keyReplacer = strings.NewReplacer("<", "", ">", "", "-", "_")

// NormalizeKey maps a raw field identifier to its canonical form: angle
// bracket delimiters stripped, hyphens replaced by underscores, lower-cased.
// Normalization is idempotent.
func NormalizeKey(name string) string {
	return strings.ToLower(keyReplacer.Replace(name))
}

// Normalize flattens one raw detection record into a PageRecord.
//
// Text fields with empty values are dropped (empty means "not provided").
// Checkbox entries are always stored with their observed state literal.
// Signature entries are stored as true under SignaturePrefix + key.
// Non-standard categories are copied through verbatim under normalized keys.
//
// The second return value lists canonical keys that more than one raw name
// normalized to. The record keeps the last write for each, but callers should
// surface collisions rather than accept them silently.
func Normalize(raw RawDetectionRecord) (PageRecord, []string) {
	rec := make(PageRecord)
	seen := make(map[string]int)
	collided := make(map[string]bool)

	store := func(key string, value any) {
		if seen[key] > 0 {
			collided[key] = true
		}
		seen[key]++
		rec[key] = value
	}

	for name, value := range raw.TextFields {
		if value == "" {
			continue
		}
		store(NormalizeKey(name), value)
	}
	for name, obs := range raw.Checkboxes {
		store(NormalizeKey(name), obs.State)
	}
	for name := range raw.Signatures {
		store(SignaturePrefix+NormalizeKey(name), true)
	}
	for name, value := range raw.Extra {
		store(NormalizeKey(name), value)
	}

	collisions := make([]string, 0, len(collided))
	for key := range collided {
		collisions = append(collisions, key)
	}
	sort.Strings(collisions)

	return rec, collisions
}
