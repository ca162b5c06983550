package service

import (
	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	List(userID int64) ([]*entities.Project, error)
	Create(userID int64, req *models.CreateProjectRequest) (*entities.Project, error)
	Update(id, userID int64, patch *models.UpdateProjectRequest) (*entities.Project, error)
	Delete(id, userID int64) error
}

type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

// List returns all projects for the user, newest first
func (s *projectService) List(userID int64) ([]*entities.Project, error) {
	return s.repo.GetByUserID(userID)
}

// Create stores a new project owned by the user
func (s *projectService) Create(userID int64, req *models.CreateProjectRequest) (*entities.Project, error) {
	return s.repo.Create(userID, req)
}

// Update patches a project the user owns. A project owned by someone else is
// reported as not found, so non-owners cannot confirm it exists.
func (s *projectService) Update(id, userID int64, patch *models.UpdateProjectRequest) (*entities.Project, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return s.repo.Update(id, patch)
}

// Delete removes a project the user owns, with the same not-found masking
// as Update.
func (s *projectService) Delete(id, userID int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return repository.ErrNotFound
	}

	return s.repo.Delete(id)
}
