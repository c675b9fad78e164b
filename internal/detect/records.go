package detect

import "github.com/abrforms/docreview/internal/validation"

// Records regroups extracted fields into per-page detection records keyed by
// 1-based page number. Text, select, and radio values land in TextFields;
// checkboxes become state observations; signed signature fields become
// presence markers. Pushbuttons and unknown field types carry no document
// content and are dropped.
func Records(fields []Field) map[int]validation.RawDetectionRecord {
	records := make(map[int]validation.RawDetectionRecord)

	get := func(page int) validation.RawDetectionRecord {
		if page < 1 {
			page = 1
		}
		rec, ok := records[page]
		if !ok {
			rec = validation.RawDetectionRecord{
				TextFields: make(map[string]string),
				Checkboxes: make(map[string]validation.CheckboxObservation),
				Signatures: make(map[string]validation.SignatureObservation),
			}
			records[page] = rec
		}
		return rec
	}

	for _, f := range fields {
		switch f.Type {
		case FieldTypeText:
			value, _ := f.Value.(string)
			get(f.Page).TextFields[f.Name] = value
		case FieldTypeRadio, FieldTypeSelect:
			if value, ok := f.Value.(string); ok && value != "" {
				get(f.Page).TextFields[f.Name] = value
			}
		case FieldTypeCheckbox:
			state := validation.StateUnchecked
			if checked, ok := f.Value.(bool); ok && checked {
				state = validation.StateChecked
			}
			get(f.Page).Checkboxes[f.Name] = validation.CheckboxObservation{State: state, BBox: f.Bounds}
		case FieldTypeSignature:
			if signed, ok := f.Value.(bool); ok && signed {
				get(f.Page).Signatures[f.Name] = validation.SignatureObservation{BBox: f.Bounds}
			}
		}
	}

	return records
}
