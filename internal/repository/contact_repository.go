package repository

import (
	"context"
	"errors"

	"mangoadvisory/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// contactRepository implements ContactRepository on Postgres
type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			first_name, last_name, email, phone, message, subject, service_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(
		ctx, query,
		msg.FirstName,
		msg.LastName,
		msg.Email,
		msg.Phone,
		msg.Message,
		msg.Subject,
		msg.ServiceType,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{}
	query := `
		SELECT id, first_name, last_name, email, phone, message, subject, service_type,
			created_at, updated_at
		FROM contact_messages
		WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.FirstName,
		&msg.LastName,
		&msg.Email,
		&msg.Phone,
		&msg.Message,
		&msg.Subject,
		&msg.ServiceType,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return msg, nil
}

func (r *contactRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, message, subject, service_type,
			created_at, updated_at
		FROM contact_messages
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		msg := &models.ContactMessage{}
		if err := rows.Scan(
			&msg.ID,
			&msg.FirstName,
			&msg.LastName,
			&msg.Email,
			&msg.Phone,
			&msg.Message,
			&msg.Subject,
			&msg.ServiceType,
			&msg.CreatedAt,
			&msg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
