package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "report2clean/database/repository/user"
	"report2clean/models"
)

var (
	// ErrNotFound marks a lookup for a user that does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrValidation marks bad client input.
	ErrValidation = errors.New("validation failed")
)

// UserService defines business logic for user profile operations.
// Registration and credential flows are handled outside this service.
type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// VerifyLocation stores the identity-verification coordinates and marks
	// the account verified in one step. The [0,0] sentinel is rejected.
	VerifyLocation(ctx context.Context, id string, lng, lat float64) error
	// SetFCMToken updates the push delivery target.
	SetFCMToken(ctx context.Context, id, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return u, nil
}

func (s *DefaultUserService) VerifyLocation(ctx context.Context, id string, lng, lat float64) error {
	if lng == 0 && lat == 0 {
		return fmt.Errorf("%w: coordinates [0,0] are reserved for unset locations", ErrValidation)
	}
	point := models.NewGeoPoint(lng, lat)
	if !point.Valid() {
		return fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	if err := s.Repo.SetVerifiedLocation(ctx, id, lng, lat); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to verify location for %s: %w", id, err)
	}
	return nil
}

func (s *DefaultUserService) SetFCMToken(ctx context.Context, id, token string) error {
	u := &models.User{ID: id, FCMToken: token}
	if err := s.Repo.UpdateProfile(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update FCM token for %s: %w", id, err)
	}
	return nil
}
