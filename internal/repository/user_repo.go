package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ughyper3/Spodaily-api/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, user_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Email, user.UserName, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, user_name, password_hash, first_name, name, birth, height, weight, sexe, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.UserName,
		&user.PasswordHash,
		&user.FirstName,
		&user.Name,
		&user.Birth,
		&user.Height,
		&user.Weight,
		&user.Sexe,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, user_name, password_hash, first_name, name, birth, height, weight, sexe, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.UserName,
		&user.PasswordHash,
		&user.FirstName,
		&user.Name,
		&user.Birth,
		&user.Height,
		&user.Weight,
		&user.Sexe,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTakenByOther reports whether a different user already owns the email.
func (r *UserRepository) EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND id <> $2
		)
	`
	var taken bool
	if err := r.db.QueryRow(ctx, query, email, userID).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

type UpdateProfileInput struct {
	Email     *string
	UserName  *string
	FirstName *string
	Name      *string
	Birth     *time.Time
	Height    *float64
	Weight    *float64
	Sexe      *string
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*models.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($1, email),
			user_name = COALESCE($2, user_name),
			first_name = COALESCE($3, first_name),
			name = COALESCE($4, name),
			birth = COALESCE($5, birth),
			height = COALESCE($6, height),
			weight = COALESCE($7, weight),
			sexe = COALESCE($8, sexe),
			updated_at = NOW()
		WHERE id = $9
		RETURNING id, email, user_name, password_hash, first_name, name, birth, height, weight, sexe, created_at, updated_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query,
		input.Email,
		input.UserName,
		input.FirstName,
		input.Name,
		input.Birth,
		input.Height,
		input.Weight,
		input.Sexe,
		userID,
	).Scan(
		&user.ID,
		&user.Email,
		&user.UserName,
		&user.PasswordHash,
		&user.FirstName,
		&user.Name,
		&user.Birth,
		&user.Height,
		&user.Weight,
		&user.Sexe,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
