package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
	"folio-be/internal/session"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*entities.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*entities.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   session.Store
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, sessions session.Store, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user account with a hashed password.
// It never establishes a session; the user logs in afterward.
func (s *authService) Register(req *models.RegisterRequest) (*entities.User, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Username, req.Email, string(hashedPassword))
	if err != nil {
		// Backstop for the race between the existence checks and the insert
		if repository.IsUniqueViolation(err) {
			if strings.Contains(err.Error(), "username") {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and establishes a session, returning the user
// and the session token. Unknown username and wrong password are deliberately
// indistinguishable.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*entities.User, string, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, token, nil
}

// Logout destroys the session. Idempotent: unknown tokens are fine.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}
