package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ughyper3/Spodaily-api/internal/models"
)

type CreateSessionInput struct {
	UserID int64
	Name   string
	Date   time.Time
}

type SessionListFilter struct {
	Timeframe string
	Limit     int
	Offset    int
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(
	ctx context.Context,
	input CreateSessionInput,
) (*models.Session, error) {
	query := `
		INSERT INTO sessions (uuid, user_id, name, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uuid, user_id, name, date, created_at, updated_at
	`

	var session models.Session
	err := r.db.QueryRow(
		ctx,
		query,
		uuid.New(),
		input.UserID,
		input.Name,
		input.Date,
	).Scan(
		&session.ID,
		&session.UUID,
		&session.UserID,
		&session.Name,
		&session.Date,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	query := `
		SELECT id, uuid, user_id, name, date, created_at, updated_at
		FROM sessions
		WHERE uuid = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.UUID,
		&session.UserID,
		&session.Name,
		&session.Date,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByUser returns the caller's sessions in a stable order so repeated
// calls paginate consistently.
func (r *SessionRepository) ListByUser(
	ctx context.Context,
	userID int64,
	filter SessionListFilter,
) ([]models.Session, error) {
	args := []any{userID}
	whereParts := []string{"user_id = $1"}

	switch strings.TrimSpace(filter.Timeframe) {
	case "upcoming":
		whereParts = append(whereParts, "date >= CURRENT_DATE")
	case "past":
		whereParts = append(whereParts, "date < CURRENT_DATE")
	}

	query := fmt.Sprintf(`
		SELECT id, uuid, user_id, name, date, created_at, updated_at
		FROM sessions
		WHERE %s
		ORDER BY date ASC, id ASC
	`, strings.Join(whereParts, " AND "))

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.UUID,
			&session.UserID,
			&session.Name,
			&session.Date,
			&session.CreatedAt,
			&session.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepository) CountByUser(
	ctx context.Context,
	userID int64,
	filter SessionListFilter,
) (int, error) {
	args := []any{userID}
	whereParts := []string{"user_id = $1"}

	switch strings.TrimSpace(filter.Timeframe) {
	case "upcoming":
		whereParts = append(whereParts, "date >= CURRENT_DATE")
	case "past":
		whereParts = append(whereParts, "date < CURRENT_DATE")
	}

	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM sessions WHERE %s`,
		strings.Join(whereParts, " AND "),
	)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID int64) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(ctx, query, sessionID)
	return err
}
