// Package templates declares the per-form validation schemas for every
// supported real-estate document template. Each template fully enumerates its
// own fields; there is no inheritance between forms. Registration is an
// explicit step so the set of supported forms never depends on import order.
package templates

import (
	"fmt"

	"github.com/abrforms/docreview/internal/validation"
)

// Document type codes for the supported form templates.
const (
	TypeAD2           = "AD2"
	TypeAVID          = "AVID"
	TypeBHIA          = "BHIA"
	TypeBuyerAdvisory = "BUYER_ADVISORY"
	TypeEnvironmental = "ENVIRONMENTAL"
	TypeFHDA          = "FHDA"
	TypeMortgageABA   = "MORTGAGE_ABA"
	TypePRBS          = "PRBS"
	TypeSBSA          = "SBSA"
	TypeSPBB          = "SPBB"
	TypeSPQ           = "SPQ"
)

type template struct {
	docType     string
	pageSchemas map[int]validation.PageSchema
	crossCheck  validation.CrossCheckFunc
}

func all() []template {
	return []template{
		{TypeAD2, ad2PageSchemas(), nil},
		{TypeAVID, avidPageSchemas(), avidCrossCheck},
		{TypeBHIA, bhiaPageSchemas(), nil},
		{TypeBuyerAdvisory, buyerAdvisoryPageSchemas(), nil},
		{TypeEnvironmental, environmentalPageSchemas(), nil},
		{TypeFHDA, fhdaPageSchemas(), nil},
		{TypeMortgageABA, mortgageABAPageSchemas(), mortgageABACrossCheck},
		{TypePRBS, prbsPageSchemas(), nil},
		{TypeSBSA, sbsaPageSchemas(), nil},
		{TypeSPBB, spbbPageSchemas(), nil},
		{TypeSPQ, spqPageSchemas(), spqCrossCheck},
	}
}

// Register installs every supported template into the given registry.
func Register(r *validation.Registry) error {
	for _, t := range all() {
		if err := r.Register(t.docType, t.pageSchemas, t.crossCheck); err != nil {
			return fmt.Errorf("failed to register template %s: %w", t.docType, err)
		}
	}
	return nil
}

// NewRegistry builds a registry with every supported template installed.
func NewRegistry() (*validation.Registry, error) {
	r := validation.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}
