package services

import (
	"context"
	"errors"

	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/repository"
)

var ErrEmailTaken = errors.New("email already in use")

type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, input repository.UpdateProfileInput) (*models.User, error)
}

type AccountService struct {
	userRepo userStore
}

func NewAccountService(userRepo userStore) *AccountService {
	return &AccountService{userRepo: userRepo}
}

func (s *AccountService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile re-checks email uniqueness against every user except the
// caller before writing.
func (s *AccountService) UpdateProfile(
	ctx context.Context,
	userID int64,
	input repository.UpdateProfileInput,
) (*models.User, error) {
	if input.Email != nil {
		taken, err := s.userRepo.EmailTakenByOther(ctx, *input.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	return s.userRepo.UpdateProfile(ctx, userID, input)
}
