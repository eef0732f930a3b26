package validation

import (
	"unicode"

	"github.com/TN1ck/german-tax-id-validator/internal/constants"
)

type PasswordValidator interface {
	ValidatePassword(password string) bool
}

type DefaultPasswordValidator struct{}

func NewDefaultPasswordValidator() *DefaultPasswordValidator {
	return &DefaultPasswordValidator{}
}

// ValidatePassword requires a minimum length and at least one letter.
func (v *DefaultPasswordValidator) ValidatePassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}
	for _, c := range password {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
