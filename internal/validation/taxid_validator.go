package validation

import (
	"github.com/TN1ck/german-tax-id-validator/taxid"
)

type TaxIDValidator interface {
	ValidateTaxID(number string) bool
	// Era returns the issuance rule a valid number matched.
	Era(number string) (int, bool)
}

// EraValidator checks tax-ids against the rules left enabled by configuration.
type EraValidator struct {
	exclude2015 bool
	exclude2016 bool
}

func NewEraValidator(exclude2015, exclude2016 bool) *EraValidator {
	return &EraValidator{
		exclude2015: exclude2015,
		exclude2016: exclude2016,
	}
}

func (v *EraValidator) ValidateTaxID(number string) bool {
	return taxid.ValidateString(number, v.exclude2015, v.exclude2016)
}

func (v *EraValidator) Era(number string) (int, bool) {
	return taxid.Era(number, v.exclude2015, v.exclude2016)
}
