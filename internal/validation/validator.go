package validation

// ValidatePage checks one normalized page record against its schema and
// returns every violation found. It never stops at the first failure, and it
// is pure: the same inputs always produce the same error list, ordered by
// schema declaration order.
//
// Two kinds of violation are reported: a required key absent from the record,
// and a present key whose value is not in the schema's allowed set. Free-text
// fields (no allowed set) accept any observed value. Record keys the schema
// does not mention are ignored; the schema constrains, it does not allowlist.
func ValidatePage(page int, schema PageSchema, rec PageRecord) []FieldError {
	errs := []FieldError{}

	for _, field := range schema.Fields {
		value, present := rec[field.Key]
		if !present {
			if field.Required {
				errs = append(errs, FieldError{Page: page, Key: field.Key, Message: field.ErrorMessage})
			}
			continue
		}
		if len(field.AllowedValues) == 0 {
			continue
		}
		state, ok := value.(string)
		if !ok || !allowed(field.AllowedValues, state) {
			errs = append(errs, FieldError{Page: page, Key: field.Key, Message: field.ErrorMessage})
		}
	}

	return errs
}

func allowed(values []string, state string) bool {
	for _, v := range values {
		if v == state {
			return true
		}
	}
	return false
}
