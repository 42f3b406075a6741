package repository

import (
	"context"

	"github.com/ughyper3/Spodaily-api/internal/models"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(
	ctx context.Context,
	userID int64,
	subject string,
	content string,
) (*models.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (user_id, subject, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, subject, content, created_at
	`

	var message models.ContactMessage
	err := r.db.QueryRow(ctx, query, userID, subject, content).Scan(
		&message.ID,
		&message.UserID,
		&message.Subject,
		&message.Content,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}
