package repository

import (
	"context"

	"github.com/ughyper3/Spodaily-api/internal/models"
)

type CreateActivityInput struct {
	SessionID  int64
	ExerciseID int64
	Sets       int
	Repetition int
	Rest       int
	Weight     float64
}

type ActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(
	ctx context.Context,
	input CreateActivityInput,
) (*models.Activity, error) {
	query := `
		INSERT INTO activities (session_id, exercise_id, sets, repetition, rest, weight)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, session_id, exercise_id, sets, repetition, rest, weight, created_at
	`

	var activity models.Activity
	err := r.db.QueryRow(
		ctx,
		query,
		input.SessionID,
		input.ExerciseID,
		input.Sets,
		input.Repetition,
		input.Rest,
		input.Weight,
	).Scan(
		&activity.ID,
		&activity.SessionID,
		&activity.ExerciseID,
		&activity.Sets,
		&activity.Repetition,
		&activity.Rest,
		&activity.Weight,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListBySessionID resolves each activity's exercise name with an inner join.
func (r *ActivityRepository) ListBySessionID(
	ctx context.Context,
	sessionID int64,
) ([]models.ActivityDetail, error) {
	query := `
		SELECT a.id, a.session_id, a.exercise_id, a.sets, a.repetition, a.rest, a.weight, a.created_at, e.name
		FROM activities a
		JOIN exercises e ON e.id = a.exercise_id
		WHERE a.session_id = $1
		ORDER BY a.id ASC
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.ActivityDetail, 0)
	for rows.Next() {
		var detail models.ActivityDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.SessionID,
			&detail.ExerciseID,
			&detail.Sets,
			&detail.Repetition,
			&detail.Rest,
			&detail.Weight,
			&detail.CreatedAt,
			&detail.ExerciseName,
		); err != nil {
			return nil, err
		}
		activities = append(activities, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
