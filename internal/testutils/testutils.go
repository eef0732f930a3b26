package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TN1ck/german-tax-id-validator/internal/models"
)

type MockTaxIDStorage struct {
	mock.Mock
}

func (m *MockTaxIDStorage) CreateTaxID(ctx context.Context, taxID models.TaxID) error {
	args := m.Called(ctx, taxID)
	return args.Error(0)
}

func (m *MockTaxIDStorage) GetTaxIDByNumber(ctx context.Context, number string) (models.TaxID, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.TaxID), args.Error(1)
}

func (m *MockTaxIDStorage) GetTaxIDsByUserID(ctx context.Context, userID int64) ([]models.TaxID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.TaxID), args.Error(1)
}

type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStorage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(models.User), args.Error(1)
}
