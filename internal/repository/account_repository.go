package repository

import (
	"context"
	"errors"

	"mangoadvisory/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// accountRepository implements AccountRepository on Postgres
type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, acct *models.Account) error {
	query := `
		INSERT INTO accounts (
			first_name, last_name, email, phone, password_hash, agree_to_terms
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(
		ctx, query,
		acct.FirstName,
		acct.LastName,
		acct.Email,
		acct.Phone,
		acct.PasswordHash,
		acct.AgreeToTerms,
	).Scan(&acct.ID, &acct.CreatedAt, &acct.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, agree_to_terms, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	acct := &models.Account{}
	query := `
		SELECT id, first_name, last_name, email, phone, password_hash, agree_to_terms,
			created_at, updated_at
		FROM accounts
		WHERE lower(email) = lower($1)`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&acct.ID,
		&acct.FirstName,
		&acct.LastName,
		&acct.Email,
		&acct.Phone,
		&acct.PasswordHash,
		&acct.AgreeToTerms,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return acct, nil
}

func (r *accountRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, agree_to_terms, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		acct := &models.Account{}
		if err := rows.Scan(
			&acct.ID,
			&acct.FirstName,
			&acct.LastName,
			&acct.Email,
			&acct.Phone,
			&acct.AgreeToTerms,
			&acct.CreatedAt,
			&acct.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateAccountFields) (*models.Account, error) {
	query := `
		UPDATE accounts SET
			first_name = COALESCE(NULLIF($2, ''), first_name),
			last_name  = COALESCE(NULLIF($3, ''), last_name),
			phone      = COALESCE(NULLIF($4, ''), phone),
			updated_at = now()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, phone, agree_to_terms, created_at, updated_at`

	return r.scanAccount(r.pool.QueryRow(ctx, query, id, fields.FirstName, fields.LastName, fields.Phone))
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanAccount scans a password-less account projection.
func (r *accountRepository) scanAccount(row pgx.Row) (*models.Account, error) {
	acct := &models.Account{}
	err := row.Scan(
		&acct.ID,
		&acct.FirstName,
		&acct.LastName,
		&acct.Email,
		&acct.Phone,
		&acct.AgreeToTerms,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return acct, nil
}

// isUniqueViolation reports whether err is a Postgres unique-index violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
