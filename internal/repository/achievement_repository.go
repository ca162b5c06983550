package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"folio-be/internal/entities"
	"folio-be/internal/models"
)

// AchievementRepository defines the interface for achievement database operations
type AchievementRepository interface {
	GetByUserID(userID int64) ([]*entities.Achievement, error)
	FindByID(id int64) (*entities.Achievement, error)
	Create(userID int64, req *models.CreateAchievementRequest) (*entities.Achievement, error)
	Update(id int64, patch *models.UpdateAchievementRequest) (*entities.Achievement, error)
	Delete(id int64) error
	CountByUserID(userID int64) (int, error)
}

type achievementRepository struct {
	db *sql.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *sql.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

const achievementColumns = "id, user_id, title, description, icon, date, created_at"

func scanAchievement(row scanner) (*entities.Achievement, error) {
	var achievement entities.Achievement
	err := row.Scan(
		&achievement.ID,
		&achievement.UserID,
		&achievement.Title,
		&achievement.Description,
		&achievement.Icon,
		&achievement.Date,
		&achievement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

// GetByUserID retrieves all achievements for a user, most recent milestone first
func (r *achievementRepository) GetByUserID(userID int64) ([]*entities.Achievement, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM achievements
		WHERE user_id = $1
		ORDER BY date DESC
	`, achievementColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	defer rows.Close()

	achievements := []*entities.Achievement{}
	for rows.Next() {
		achievement, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievements: %w", err)
	}

	return achievements, nil
}

// FindByID finds an achievement by ID
func (r *achievementRepository) FindByID(id int64) (*entities.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE id = $1`, achievementColumns)

	achievement, err := scanAchievement(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find achievement: %w", err)
	}

	return achievement, nil
}

// Create inserts a new achievement owned by userID and returns the canonical
// row. A missing date defaults to NOW().
func (r *achievementRepository) Create(userID int64, req *models.CreateAchievementRequest) (*entities.Achievement, error) {
	query := fmt.Sprintf(`
		INSERT INTO achievements (user_id, title, description, icon, date)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING %s
	`, achievementColumns)

	achievement, err := scanAchievement(r.db.QueryRow(query,
		userID, req.Title, req.Description, req.Icon, req.Date,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	return achievement, nil
}

// Update applies a partial patch and returns the canonical row.
// Achievements carry no updated_at, so an empty patch is a plain read.
func (r *achievementRepository) Update(id int64, patch *models.UpdateAchievementRequest) (*entities.Achievement, error) {
	b := &updateBuilder{}
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.Icon != nil {
		b.set("icon", *patch.Icon)
	}
	if patch.Date != nil {
		b.set("date", *patch.Date)
	}

	if b.empty() {
		return r.FindByID(id)
	}

	query := fmt.Sprintf(`
		UPDATE achievements
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, b.clause(), b.nextArg(), achievementColumns)
	args := append(b.args, id)

	achievement, err := scanAchievement(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}

	return achievement, nil
}

// Delete removes an achievement by ID
func (r *achievementRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
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

// CountByUserID returns the number of achievements owned by a user
func (r *achievementRepository) CountByUserID(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM achievements WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}
