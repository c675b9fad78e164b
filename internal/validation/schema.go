package validation

// Checkbox state literals as stored by the normalizer.
const (
	StateChecked   = "checked"
	StateUnchecked = "unchecked"
)

// FieldSpec declares the constraint for one canonical key on one page of a
// document template: whether the field must be present, the set of values it
// may take (nil for free text), and the message reported when it is violated.
type FieldSpec struct {
	Key           string   `json:"key"`
	Required      bool     `json:"required"`
	AllowedValues []string `json:"allowed_values,omitempty"`
	Description   string   `json:"description"`
	ErrorMessage  string   `json:"error_message"`
}

// PageSchema is the ordered list of field constraints for one page of a
// document template. Declaration order determines error-reporting order.
// Keys present in a record but absent from the schema are unconstrained.
type PageSchema struct {
	Fields []FieldSpec `json:"fields"`
}

// Text declares a required free-text field.
func Text(key, description, errorMessage string) FieldSpec {
	return FieldSpec{Key: key, Required: true, Description: description, ErrorMessage: errorMessage}
}

// OptionalText declares an optional free-text field.
func OptionalText(key, description, errorMessage string) FieldSpec {
	return FieldSpec{Key: key, Description: description, ErrorMessage: errorMessage}
}

// Checked declares a checkbox that must be present and checked.
func Checked(key, description, errorMessage string) FieldSpec {
	return FieldSpec{
		Key:           key,
		Required:      true,
		AllowedValues: []string{StateChecked},
		Description:   description,
		ErrorMessage:  errorMessage,
	}
}

// Unchecked declares a checkbox that must be present and unchecked.
func Unchecked(key, description, errorMessage string) FieldSpec {
	return FieldSpec{
		Key:           key,
		Required:      true,
		AllowedValues: []string{StateUnchecked},
		Description:   description,
		ErrorMessage:  errorMessage,
	}
}

// AnyState declares a checkbox that must be present in either state.
func AnyState(key, description, errorMessage string) FieldSpec {
	return FieldSpec{
		Key:           key,
		Required:      true,
		AllowedValues: []string{StateChecked, StateUnchecked},
		Description:   description,
		ErrorMessage:  errorMessage,
	}
}

// Signature declares a required signature presence flag. The key is the full
// canonical key including the sign_ prefix.
func Signature(key, description, errorMessage string) FieldSpec {
	return FieldSpec{Key: key, Required: true, Description: description, ErrorMessage: errorMessage}
}
