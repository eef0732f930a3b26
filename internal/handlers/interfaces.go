package handlers

import (
	"context"

	"github.com/TN1ck/german-tax-id-validator/internal/models"
)

type TaxIDRegistrar interface {
	RegisterTaxID(ctx context.Context, userID int64, number string) (models.TaxID, error)
}

type TaxIDGetter interface {
	GetUserTaxIDs(ctx context.Context, userID int64) ([]models.TaxID, error)
}

type TaxIDChecker interface {
	Validate(number string) bool
}
