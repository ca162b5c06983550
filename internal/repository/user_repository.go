package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"folio-be/internal/entities"
	"folio-be/internal/models"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(username, email, passwordHash string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Update(id int64, patch *models.UpdateProfileRequest) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, username, email, password, name, bio, location, website, avatar, created_at, updated_at"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.Bio,
		&user.Location,
		&user.Website,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns the canonical row
func (r *userRepository) Create(username, email, passwordHash string) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(query, username, email, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Update applies a partial profile patch, stamps updated_at, and returns the
// canonical row. Fields absent from the patch are left untouched.
func (r *userRepository) Update(id int64, patch *models.UpdateProfileRequest) (*entities.User, error) {
	b := &updateBuilder{}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Email != nil {
		b.set("email", *patch.Email)
	}
	if patch.Bio != nil {
		b.set("bio", *patch.Bio)
	}
	if patch.Location != nil {
		b.set("location", *patch.Location)
	}
	if patch.Website != nil {
		b.set("website", *patch.Website)
	}
	if patch.Avatar != nil {
		b.set("avatar", *patch.Avatar)
	}
	b.setExpr("updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, b.clause(), b.nextArg(), userColumns)
	args := append(b.args, id)

	user, err := scanUser(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
