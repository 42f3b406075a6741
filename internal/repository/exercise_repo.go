package repository

import (
	"context"

	"github.com/ughyper3/Spodaily-api/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `SELECT id, name FROM exercises WHERE id = $1`

	var exercise models.Exercise
	if err := r.db.QueryRow(ctx, query, id).Scan(&exercise.ID, &exercise.Name); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	query := `SELECT id, name FROM exercises ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
