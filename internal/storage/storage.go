package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TN1ck/german-tax-id-validator/internal/models"
)

const uniqueViolation = "23505"

var (
	ErrLoginExists = errors.New("login already exists")
	ErrTaxIDExists = errors.New("tax-id already exists")
	ErrNotFound    = errors.New("not found")
)

const (
	createUserQuery = `INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`

	getUserByLoginQuery = `SELECT id, login, password FROM users WHERE login = $1`

	createTaxIDQuery = `INSERT INTO tax_ids (user_id, tax_id, era, status, uploaded_at) VALUES ($1, $2, $3, $4, $5)`

	getTaxIDByNumberQuery = `SELECT id, user_id, tax_id, era, status, uploaded_at FROM tax_ids WHERE tax_id = $1`

	getTaxIDsByUserQuery = `SELECT id, user_id, tax_id, era, status, uploaded_at FROM tax_ids WHERE user_id = $1 ORDER BY uploaded_at DESC`
)

// DB is the subset of *pgxpool.Pool used by Storage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db DB
}

func NewStorage(db DB) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, createUserQuery, login, password).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrLoginExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (s *Storage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx, getUserByLoginQuery, login).Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Storage) CreateTaxID(ctx context.Context, taxID models.TaxID) error {
	_, err := s.db.Exec(ctx, createTaxIDQuery,
		taxID.UserID, taxID.Number, taxID.Era, taxID.Status, taxID.UploadedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTaxIDExists
		}
		return fmt.Errorf("failed to create tax-id: %w", err)
	}
	return nil
}

func (s *Storage) GetTaxIDByNumber(ctx context.Context, number string) (models.TaxID, error) {
	var t models.TaxID
	err := s.db.QueryRow(ctx, getTaxIDByNumberQuery, number).
		Scan(&t.ID, &t.UserID, &t.Number, &t.Era, &t.Status, &t.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.TaxID{}, ErrNotFound
		}
		return models.TaxID{}, fmt.Errorf("failed to get tax-id: %w", err)
	}
	return t, nil
}

func (s *Storage) GetTaxIDsByUserID(ctx context.Context, userID int64) ([]models.TaxID, error) {
	rows, err := s.db.Query(ctx, getTaxIDsByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax-ids: %w", err)
	}
	defer rows.Close()

	var taxIDs []models.TaxID
	for rows.Next() {
		var t models.TaxID
		if err := rows.Scan(&t.ID, &t.UserID, &t.Number, &t.Era, &t.Status, &t.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax-id: %w", err)
		}
		taxIDs = append(taxIDs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tax-ids: %w", err)
	}
	return taxIDs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
