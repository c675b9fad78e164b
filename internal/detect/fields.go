// Package detect extracts interactive AcroForm fields from scanned
// real-estate PDFs and regroups them into the per-page detection records
// the validation layer consumes.
package detect

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/abrforms/docreview/internal/validation"
)

// FieldType represents the type of a form field
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeSelect    FieldType = "select"
	FieldTypeButton    FieldType = "button"
	FieldTypeSignature FieldType = "signature"
	FieldTypeUnknown   FieldType = "unknown"
)

// Field represents one interactive form field found in a PDF
type Field struct {
	Name   string           `json:"name"`
	Type   FieldType        `json:"type"`
	Value  interface{}      `json:"value,omitempty"`
	Page   int              `json:"page"`
	Bounds *validation.Rect `json:"bounds,omitempty"`
}

// Extractor pulls AcroForm fields out of a PDF using pdfcpu
type Extractor struct {
	debugMode bool
}

// NewExtractor creates a new field extractor
func NewExtractor(debugMode bool) *Extractor {
	return &Extractor{
		debugMode: debugMode,
	}
}

// ExtractFile extracts all form fields from a PDF file
func (e *Extractor) ExtractFile(filePath string) ([]Field, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	return e.ExtractReader(file)
}

// ExtractReader extracts all form fields from an io.ReadSeeker
func (e *Extractor) ExtractReader(reader io.ReadSeeker) ([]Field, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(reader, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	return e.extractFromContext(ctx)
}

// extractFromContext walks the AcroForm Fields array of a pdfcpu context.
func (e *Extractor) extractFromContext(ctx *model.Context) ([]Field, error) {
	var fields []Field

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		if e.debugMode {
			fmt.Println("No AcroForm dictionary found in document")
		}
		return fields, nil
	}

	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return fields, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		if e.debugMode {
			fmt.Println("No Fields array found in AcroForm")
		}
		return fields, nil
	}

	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	pages, err := pageNumbers(ctx, rootDict)
	if err != nil {
		return nil, err
	}

	for i, fieldRef := range fieldsArray {
		field, err := e.processField(ctx, fieldRef, i, pages)
		if err != nil {
			if e.debugMode {
				fmt.Printf("Error processing field %d: %v\n", i, err)
			}
			continue
		}
		if field != nil {
			fields = append(fields, *field)
		}
	}

	return fields, nil
}

// pageNumbers walks the page tree and maps each page dictionary's object
// number to its 1-based page number, so widget P references can be resolved.
func pageNumbers(ctx *model.Context, rootDict types.Dict) (map[int]int, error) {
	pages := make(map[int]int)

	pagesObj, found := rootDict.Find("Pages")
	if !found {
		return pages, nil
	}

	nextPage := 1
	var walk func(obj types.Object) error
	walk = func(obj types.Object) error {
		ref, isRef := obj.(types.IndirectRef)
		dict, err := ctx.DereferenceDict(obj)
		if err != nil || dict == nil {
			return err
		}

		if typ := dict.Type(); typ != nil && *typ == "Page" {
			if isRef {
				pages[ref.ObjectNumber.Value()] = nextPage
			}
			nextPage++
			return nil
		}

		kidsObj, found := dict.Find("Kids")
		if !found {
			return nil
		}
		kids, err := ctx.DereferenceArray(kidsObj)
		if err != nil {
			return fmt.Errorf("failed to dereference page tree kids: %w", err)
		}
		for _, kid := range kids {
			if err := walk(kid); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(pagesObj); err != nil {
		return nil, err
	}
	return pages, nil
}

// processField converts a single AcroForm field dictionary into a Field.
func (e *Extractor) processField(ctx *model.Context, fieldObj types.Object, index int, pages map[int]int) (*Field, error) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference field: %w", err)
	}
	if fieldDict == nil {
		return nil, nil
	}

	field := &Field{}

	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			field.Name = name
		}
	}
	if field.Name == "" {
		field.Name = fmt.Sprintf("field_%d", index)
	}

	field.Type = e.fieldType(ctx, fieldDict)

	if valueObj, found := fieldDict.Find("V"); found {
		field.Value = e.fieldValue(ctx, valueObj, field.Type)
	}

	field.Bounds, field.Page = e.fieldPlacement(ctx, fieldDict, pages)

	if e.debugMode {
		fmt.Printf("Extracted field: %s (type: %s, page: %d)\n", field.Name, field.Type, field.Page)
	}

	return field, nil
}

// fieldType determines the field type from the FT entry, following Parent
// links for inherited types.
func (e *Extractor) fieldType(ctx *model.Context, fieldDict types.Dict) FieldType {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return e.fieldType(ctx, parentDict)
			}
		}
		return FieldTypeUnknown
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return FieldTypeUnknown
	}

	switch ftName {
	case "Btn":
		if flagsObj, found := fieldDict.Find("Ff"); found {
			if flags, err := ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
				flagValue := *flags
				if (flagValue & (1 << 15)) != 0 { // Bit 16: Radio
					return FieldTypeRadio
				} else if (flagValue & (1 << 16)) != 0 { // Bit 17: Pushbutton
					return FieldTypeButton
				}
			}
		}
		return FieldTypeCheckbox
	case "Tx":
		return FieldTypeText
	case "Ch":
		return FieldTypeSelect
	case "Sig":
		return FieldTypeSignature
	default:
		return FieldTypeUnknown
	}
}

// fieldValue extracts the V entry based on field type.
func (e *Extractor) fieldValue(ctx *model.Context, valueObj types.Object, fieldType FieldType) interface{} {
	switch fieldType {
	case FieldTypeText:
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			return val
		}
	case FieldTypeCheckbox:
		if name, err := ctx.DereferenceName(valueObj, model.V10, nil); err == nil {
			return name != "Off"
		}
	case FieldTypeRadio:
		if name, err := ctx.DereferenceName(valueObj, model.V10, nil); err == nil {
			return name
		}
	case FieldTypeSelect:
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			return val
		}
	case FieldTypeSignature:
		// A signature dictionary in V means the field was signed. The
		// contents are irrelevant here; presence is the signal.
		return true
	}
	return nil
}

// fieldPlacement extracts the widget rectangle and resolves the page number
// from the widget's P reference. Fields whose widget carries no usable P
// entry default to page 1.
func (e *Extractor) fieldPlacement(ctx *model.Context, fieldDict types.Dict, pages map[int]int) (*validation.Rect, int) {
	if rect, page, ok := e.widgetPlacement(ctx, fieldDict, pages); ok {
		return rect, page
	}

	// Fields with separate widget annotations carry placement on the kids.
	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil && len(kidsArray) > 0 {
			if widgetDict, err := ctx.DereferenceDict(kidsArray[0]); err == nil && widgetDict != nil {
				if rect, page, ok := e.widgetPlacement(ctx, widgetDict, pages); ok {
					return rect, page
				}
			}
		}
	}

	return nil, 1
}

func (e *Extractor) widgetPlacement(ctx *model.Context, annotDict types.Dict, pages map[int]int) (*validation.Rect, int, bool) {
	rectObj, found := annotDict.Find("Rect")
	if !found {
		return nil, 0, false
	}

	rectArray, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(rectArray) != 4 {
		return nil, 0, false
	}

	coords := make([]float64, 4)
	for i, coord := range rectArray {
		if f, err := ctx.DereferenceNumber(coord); err == nil {
			coords[i] = f
		}
	}

	rect := &validation.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}

	page := 1
	if pObj, found := annotDict.Find("P"); found {
		if ref, ok := pObj.(types.IndirectRef); ok {
			if n, ok := pages[ref.ObjectNumber.Value()]; ok {
				page = n
			}
		}
	}

	return rect, page, true
}
