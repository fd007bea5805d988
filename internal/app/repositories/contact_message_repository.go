package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/acadvault/internal/app/models"
)

// ContactMessageStore defines database access to contact messages
type ContactMessageStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

// ContactMessageRepository handles database operations for contact messages
type ContactMessageRepository struct {
	db *pgxpool.Pool
}

// NewContactMessageRepository creates a new ContactMessageRepository
func NewContactMessageRepository(db *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

// Create stores a contact form submission
func (r *ContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}

// GetAll retrieves all contact messages, most recent first
func (r *ContactMessageRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact message row: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// Count returns the number of contact messages
func (r *ContactMessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting contact messages: %w", err)
	}
	return count, nil
}
