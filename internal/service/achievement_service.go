package service

import (
	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// AchievementService defines the interface for achievement business logic
type AchievementService interface {
	List(userID int64) ([]*entities.Achievement, error)
	Create(userID int64, req *models.CreateAchievementRequest) (*entities.Achievement, error)
	Update(id, userID int64, patch *models.UpdateAchievementRequest) (*entities.Achievement, error)
	Delete(id, userID int64) error
}

type achievementService struct {
	repo repository.AchievementRepository
}

// NewAchievementService creates a new achievement service
func NewAchievementService(repo repository.AchievementRepository) AchievementService {
	return &achievementService{repo: repo}
}

// List returns all achievements for the user, most recent milestone first
func (s *achievementService) List(userID int64) ([]*entities.Achievement, error) {
	return s.repo.GetByUserID(userID)
}

// Create stores a new achievement owned by the user
func (s *achievementService) Create(userID int64, req *models.CreateAchievementRequest) (*entities.Achievement, error) {
	return s.repo.Create(userID, req)
}

// Update patches an achievement the user owns. Ownership mismatch is
// reported as not found, same as projects.
func (s *achievementService) Update(id, userID int64, patch *models.UpdateAchievementRequest) (*entities.Achievement, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return s.repo.Update(id, patch)
}

// Delete removes an achievement the user owns
func (s *achievementService) Delete(id, userID int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return repository.ErrNotFound
	}

	return s.repo.Delete(id)
}
