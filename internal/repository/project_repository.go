package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"folio-be/internal/entities"
	"folio-be/internal/models"
)

// ProjectRepository defines the interface for project database operations
type ProjectRepository interface {
	GetByUserID(userID int64) ([]*entities.Project, error)
	FindByID(id int64) (*entities.Project, error)
	Create(userID int64, req *models.CreateProjectRequest) (*entities.Project, error)
	Update(id int64, patch *models.UpdateProjectRequest) (*entities.Project, error)
	Delete(id int64) error
	CountByUserID(userID int64) (int, error)
}

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = "id, user_id, title, description, category, technologies, image_url, project_url, github_url, featured, created_at, updated_at"

// encodeTechnologies serializes the list for the TEXT column.
// A nil list is written as an empty JSON array, never NULL.
func encodeTechnologies(techs []string) (string, error) {
	if techs == nil {
		techs = []string{}
	}
	data, err := json.Marshal(techs)
	if err != nil {
		return "", fmt.Errorf("failed to encode technologies: %w", err)
	}
	return string(data), nil
}

// decodeTechnologies parses the TEXT column back into a list.
// NULL and empty values decode to an empty list.
func decodeTechnologies(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}
	var techs []string
	if err := json.Unmarshal([]byte(raw.String), &techs); err != nil {
		return nil, fmt.Errorf("invalid technologies column: %w", err)
	}
	if techs == nil {
		techs = []string{}
	}
	return techs, nil
}

func scanProject(row scanner) (*entities.Project, error) {
	var project entities.Project
	var rawTechs sql.NullString
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Title,
		&project.Description,
		&project.Category,
		&rawTechs,
		&project.ImageURL,
		&project.ProjectURL,
		&project.GithubURL,
		&project.Featured,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Technologies, err = decodeTechnologies(rawTechs)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// GetByUserID retrieves all projects for a user, newest first
func (r *projectRepository) GetByUserID(userID int64) ([]*entities.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, projectColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	projects := []*entities.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// FindByID finds a project by ID
func (r *projectRepository) FindByID(id int64) (*entities.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	project, err := scanProject(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return project, nil
}

// Create inserts a new project owned by userID and returns the canonical row
func (r *projectRepository) Create(userID int64, req *models.CreateProjectRequest) (*entities.Project, error) {
	techs, err := encodeTechnologies(req.Technologies)
	if err != nil {
		return nil, err
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (user_id, title, description, category, technologies, image_url, project_url, github_url, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(r.db.QueryRow(query,
		userID, req.Title, req.Description, req.Category, techs,
		req.ImageURL, req.ProjectURL, req.GithubURL, featured,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update applies a partial patch, stamps updated_at, and returns the
// canonical row. Fields absent from the patch are left untouched.
func (r *projectRepository) Update(id int64, patch *models.UpdateProjectRequest) (*entities.Project, error) {
	b := &updateBuilder{}
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.Category != nil {
		b.set("category", *patch.Category)
	}
	if patch.Technologies != nil {
		techs, err := encodeTechnologies(*patch.Technologies)
		if err != nil {
			return nil, err
		}
		b.set("technologies", techs)
	}
	if patch.ImageURL != nil {
		b.set("image_url", *patch.ImageURL)
	}
	if patch.ProjectURL != nil {
		b.set("project_url", *patch.ProjectURL)
	}
	if patch.GithubURL != nil {
		b.set("github_url", *patch.GithubURL)
	}
	if patch.Featured != nil {
		b.set("featured", *patch.Featured)
	}
	b.setExpr("updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, b.clause(), b.nextArg(), projectColumns)
	args := append(b.args, id)

	project, err := scanProject(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project by ID
func (r *projectRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountByUserID returns the number of projects owned by a user
func (r *projectRepository) CountByUserID(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
