package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"folio-be/internal/entities"
	"folio-be/internal/models"
)

// SkillRepository defines the interface for skill database operations
type SkillRepository interface {
	GetByUserID(userID int64) ([]*entities.Skill, error)
	FindByID(id int64) (*entities.Skill, error)
	Create(userID int64, req *models.CreateSkillRequest) (*entities.Skill, error)
	Update(id int64, patch *models.UpdateSkillRequest) (*entities.Skill, error)
	Delete(id int64) error
	CountByUserID(userID int64) (int, error)
}

type skillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *sql.DB) SkillRepository {
	return &skillRepository{db: db}
}

const skillColumns = "id, user_id, name, level, category, created_at"

func scanSkill(row scanner) (*entities.Skill, error) {
	var skill entities.Skill
	err := row.Scan(
		&skill.ID,
		&skill.UserID,
		&skill.Name,
		&skill.Level,
		&skill.Category,
		&skill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetByUserID retrieves all skills for a user in insertion order
func (r *skillRepository) GetByUserID(userID int64) ([]*entities.Skill, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM skills
		WHERE user_id = $1
		ORDER BY id
	`, skillColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	defer rows.Close()

	skills := []*entities.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	return skills, nil
}

// FindByID finds a skill by ID
func (r *skillRepository) FindByID(id int64) (*entities.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)

	skill, err := scanSkill(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	return skill, nil
}

// Create inserts a new skill owned by userID and returns the canonical row
func (r *skillRepository) Create(userID int64, req *models.CreateSkillRequest) (*entities.Skill, error) {
	query := fmt.Sprintf(`
		INSERT INTO skills (user_id, name, level, category)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, skillColumns)

	skill, err := scanSkill(r.db.QueryRow(query, userID, req.Name, req.Level, req.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// Update applies a partial patch and returns the canonical row.
// Skills carry no updated_at, so an empty patch is a plain read.
func (r *skillRepository) Update(id int64, patch *models.UpdateSkillRequest) (*entities.Skill, error) {
	b := &updateBuilder{}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Level != nil {
		b.set("level", *patch.Level)
	}
	if patch.Category != nil {
		b.set("category", *patch.Category)
	}

	if b.empty() {
		return r.FindByID(id)
	}

	query := fmt.Sprintf(`
		UPDATE skills
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, b.clause(), b.nextArg(), skillColumns)
	args := append(b.args, id)

	skill, err := scanSkill(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

// Delete removes a skill by ID
func (r *skillRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
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

// CountByUserID returns the number of skills owned by a user
func (r *skillRepository) CountByUserID(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM skills WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return count, nil
}
