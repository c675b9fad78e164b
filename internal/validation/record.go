package validation

import (
	"encoding/json"
	"fmt"
)

// Rect is a detector bounding box in page coordinate space.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// CheckboxObservation is one detected checkbox: its state literal and,
// when the detector provides one, the box it was found in.
type CheckboxObservation struct {
	State string `json:"state"`
	BBox  *Rect  `json:"bbox,omitempty"`
}

// SignatureObservation marks a detected signature region. Presence of the
// entry is the signal; the box is informational.
type SignatureObservation struct {
	BBox *Rect `json:"bbox,omitempty"`
}

// RawDetectionRecord is the canonical per-page input: the three observation
// categories produced by the detector or PDF field extractor, keyed by raw
// field name. Extra holds any non-standard top-level categories, copied
// through by the normalizer as an escape hatch.
type RawDetectionRecord struct {
	TextFields map[string]string               `json:"text_fields"`
	Checkboxes map[string]CheckboxObservation  `json:"checkboxes"`
	Signatures map[string]SignatureObservation `json:"signatures"`
	Extra      map[string]any                  `json:"-"`
}

// ParseRawRecord decodes one page's detection JSON into a RawDetectionRecord,
// checking the shape of each standard category. Missing categories are
// treated as empty, not as errors; a category with the wrong shape yields a
// MalformedRecordError.
func ParseRawRecord(data []byte) (RawDetectionRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return RawDetectionRecord{}, &MalformedRecordError{Reason: "page record is not a JSON object"}
	}
	return recordFromRaw(top)
}

func recordFromRaw(top map[string]json.RawMessage) (RawDetectionRecord, error) {
	rec := RawDetectionRecord{}

	for key, raw := range top {
		switch key {
		case "text_fields":
			// Values may be null; null is treated as "not provided".
			var fields map[string]*string
			if err := json.Unmarshal(raw, &fields); err != nil {
				return rec, &MalformedRecordError{Category: key, Reason: "expected a mapping of field name to string"}
			}
			rec.TextFields = make(map[string]string, len(fields))
			for name, value := range fields {
				if value == nil {
					continue
				}
				rec.TextFields[name] = *value
			}
		case "checkboxes":
			var boxes map[string]CheckboxObservation
			if err := json.Unmarshal(raw, &boxes); err != nil {
				return rec, &MalformedRecordError{Category: key, Reason: "expected a mapping of field name to state object"}
			}
			rec.Checkboxes = boxes
		case "signatures":
			var signs map[string]SignatureObservation
			if err := json.Unmarshal(raw, &signs); err != nil {
				return rec, &MalformedRecordError{Category: key, Reason: "expected a mapping of field name to presence marker"}
			}
			rec.Signatures = signs
		default:
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return rec, &MalformedRecordError{Category: key, Reason: fmt.Sprintf("undecodable value: %v", err)}
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[key] = value
		}
	}

	return rec, nil
}

// PageRecord is a normalized page: a flat map from canonical key to value.
// Values are strings for text fields, the "checked"/"unchecked" literal for
// checkboxes, and true for observed signatures (keys carry the sign_ prefix).
// Absence of a key means the field was not observed.
type PageRecord map[string]any
