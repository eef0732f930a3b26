package models

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type TaxID struct {
	ID         int64
	UserID     int64
	Number     string
	Era        int16
	Status     string
	UploadedAt pgtype.Timestamptz
}

type User struct {
	ID       int64
	Login    string
	Password string
}

type TaxIDStorage interface {
	CreateTaxID(ctx context.Context, taxID TaxID) error
	GetTaxIDByNumber(ctx context.Context, number string) (TaxID, error)
	GetTaxIDsByUserID(ctx context.Context, userID int64) ([]TaxID, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, login, password string) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (User, error)
}
