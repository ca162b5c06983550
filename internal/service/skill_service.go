package service

import (
	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// SkillService defines the interface for skill business logic
type SkillService interface {
	List(userID int64) ([]*entities.Skill, error)
	Create(userID int64, req *models.CreateSkillRequest) (*entities.Skill, error)
	Update(id, userID int64, patch *models.UpdateSkillRequest) (*entities.Skill, error)
	Delete(id, userID int64) error
}

type skillService struct {
	repo repository.SkillRepository
}

// NewSkillService creates a new skill service
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

// List returns all skills for the user in insertion order
func (s *skillService) List(userID int64) ([]*entities.Skill, error) {
	return s.repo.GetByUserID(userID)
}

// Create stores a new skill owned by the user
func (s *skillService) Create(userID int64, req *models.CreateSkillRequest) (*entities.Skill, error) {
	return s.repo.Create(userID, req)
}

// Update patches a skill the user owns. Ownership mismatch is reported as
// not found, same as projects.
func (s *skillService) Update(id, userID int64, patch *models.UpdateSkillRequest) (*entities.Skill, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return s.repo.Update(id, patch)
}

// Delete removes a skill the user owns
func (s *skillService) Delete(id, userID int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return repository.ErrNotFound
	}

	return s.repo.Delete(id)
}
