package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/repository"
)

var (
	ErrForbidden        = errors.New("forbidden")
	ErrSessionNotFound  = errors.New("session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidInput     = errors.New("invalid input")
)

type sessionStore interface {
	Create(ctx context.Context, input repository.CreateSessionInput) (*models.Session, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	ListByUser(ctx context.Context, userID int64, filter repository.SessionListFilter) ([]models.Session, error)
	CountByUser(ctx context.Context, userID int64, filter repository.SessionListFilter) (int, error)
	Delete(ctx context.Context, sessionID int64) error
}

type activityStore interface {
	Create(ctx context.Context, input repository.CreateActivityInput) (*models.Activity, error)
	ListBySessionID(ctx context.Context, sessionID int64) ([]models.ActivityDetail, error)
}

type exerciseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Exercise, error)
}

// WorkoutService owns the session/activity rules: sessions always belong to
// the authenticated caller, and every session-scoped read or write checks
// that ownership before touching the row.
type WorkoutService struct {
	sessionRepo  sessionStore
	activityRepo activityStore
	exerciseRepo exerciseReader
}

func NewWorkoutService(
	sessionRepo sessionStore,
	activityRepo activityStore,
	exerciseRepo exerciseReader,
) *WorkoutService {
	return &WorkoutService{
		sessionRepo:  sessionRepo,
		activityRepo: activityRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *WorkoutService) CreateSession(
	ctx context.Context,
	userID int64,
	name string,
	date time.Time,
) (*models.Session, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	return s.sessionRepo.Create(ctx, repository.CreateSessionInput{
		UserID: userID,
		Name:   name,
		Date:   date,
	})
}

func (s *WorkoutService) ListSessions(
	ctx context.Context,
	userID int64,
	filter repository.SessionListFilter,
) ([]models.Session, int, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.sessionRepo.CountByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (s *WorkoutService) GetSession(
	ctx context.Context,
	userID int64,
	sessionUUID uuid.UUID,
) (*models.Session, error) {
	return s.ownedSession(ctx, userID, sessionUUID)
}

func (s *WorkoutService) DeleteSession(
	ctx context.Context,
	userID int64,
	sessionUUID uuid.UUID,
) error {
	session, err := s.ownedSession(ctx, userID, sessionUUID)
	if err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, session.ID)
}

type AddActivityInput struct {
	ExerciseID int64
	Sets       int
	Repetition int
	Rest       int
	Weight     float64
}

func (s *WorkoutService) AddActivity(
	ctx context.Context,
	userID int64,
	sessionUUID uuid.UUID,
	input AddActivityInput,
) (*models.ActivityDetail, error) {
	if input.Sets < 0 || input.Repetition < 0 || input.Rest < 0 || input.Weight < 0 {
		return nil, ErrInvalidInput
	}

	session, err := s.ownedSession(ctx, userID, sessionUUID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	activity, err := s.activityRepo.Create(ctx, repository.CreateActivityInput{
		SessionID:  session.ID,
		ExerciseID: exercise.ID,
		Sets:       input.Sets,
		Repetition: input.Repetition,
		Rest:       input.Rest,
		Weight:     input.Weight,
	})
	if err != nil {
		return nil, err
	}

	return &models.ActivityDetail{
		Activity:     *activity,
		ExerciseName: exercise.Name,
	}, nil
}

func (s *WorkoutService) ListActivities(
	ctx context.Context,
	userID int64,
	sessionUUID uuid.UUID,
) ([]models.ActivityDetail, error) {
	session, err := s.ownedSession(ctx, userID, sessionUUID)
	if err != nil {
		return nil, err
	}
	return s.activityRepo.ListBySessionID(ctx, session.ID)
}

func (s *WorkoutService) ownedSession(
	ctx context.Context,
	userID int64,
	sessionUUID uuid.UUID,
) (*models.Session, error) {
	session, err := s.sessionRepo.GetByUUID(ctx, sessionUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}
