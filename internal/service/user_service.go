package service

import (
	"errors"

	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Get(id int64) (*entities.User, error)
	UpdateProfile(id int64, patch *models.UpdateProfileRequest) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Get fetches a user by ID
func (s *userService) Get(id int64) (*entities.User, error) {
	return s.userRepo.FindByID(id)
}

// UpdateProfile merges a partial patch over the user's row and returns the
// canonical row. Changing email re-checks uniqueness against other users.
func (s *userService) UpdateProfile(id int64, patch *models.UpdateProfileRequest) (*entities.User, error) {
	if patch.Email != nil {
		existing, err := s.userRepo.FindByEmail(*patch.Email)
		if err == nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	user, err := s.userRepo.Update(id, patch)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}
