package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TN1ck/german-tax-id-validator/internal/constants"
	"github.com/TN1ck/german-tax-id-validator/internal/models"
	"github.com/TN1ck/german-tax-id-validator/internal/storage"
	"github.com/TN1ck/german-tax-id-validator/internal/validation"
)

var (
	ErrTaxIDAlreadyExists      = errors.New("tax-id already registered by this user")
	ErrTaxIDBelongsToOtherUser = errors.New("tax-id belongs to another user")
	ErrInvalidTaxID            = errors.New("invalid tax-id")
)

type TaxIDUseCase struct {
	storage   models.TaxIDStorage
	validator validation.TaxIDValidator
	now       func() time.Time
}

func NewTaxIDUseCase(storage models.TaxIDStorage, validator validation.TaxIDValidator) *TaxIDUseCase {
	return &TaxIDUseCase{
		storage:   storage,
		validator: validator,
		now:       time.Now,
	}
}

// RegisterTaxID attaches number to userID once it passes validation.
func (uc *TaxIDUseCase) RegisterTaxID(ctx context.Context, userID int64, number string) (models.TaxID, error) {
	era, ok := uc.validator.Era(number)
	if !ok {
		return models.TaxID{}, ErrInvalidTaxID
	}

	if err := uc.checkOwner(ctx, userID, number); err != nil {
		return models.TaxID{}, err
	}

	taxID := models.TaxID{
		UserID:     userID,
		Number:     number,
		Era:        int16(era),
		Status:     constants.StatusValid,
		UploadedAt: pgtype.Timestamptz{Time: uc.now(), Valid: true},
	}

	if err := uc.storage.CreateTaxID(ctx, taxID); err != nil {
		if errors.Is(err, storage.ErrTaxIDExists) {
			if ownerErr := uc.checkOwner(ctx, userID, number); ownerErr != nil {
				return models.TaxID{}, ownerErr
			}
		}
		return models.TaxID{}, fmt.Errorf("failed to create tax-id: %w", err)
	}
	return taxID, nil
}

func (uc *TaxIDUseCase) checkOwner(ctx context.Context, userID int64, number string) error {
	existing, err := uc.storage.GetTaxIDByNumber(ctx, number)
	switch {
	case err == nil:
		if existing.UserID == userID {
			return ErrTaxIDAlreadyExists
		}
		return ErrTaxIDBelongsToOtherUser
	case errors.Is(err, storage.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check tax-id: %w", err)
	}
}

func (uc *TaxIDUseCase) GetUserTaxIDs(ctx context.Context, userID int64) ([]models.TaxID, error) {
	return uc.storage.GetTaxIDsByUserID(ctx, userID)
}

func (uc *TaxIDUseCase) Validate(number string) bool {
	return uc.validator.ValidateTaxID(number)
}
