package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bloglist/internal/model"
	"bloglist/internal/repository"
)

// UserService handles registration and credential verification.
type UserService struct {
	repo       repository.UserRepository
	bcryptCost int
}

func NewUserService(repo repository.UserRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The password is hashed with bcrypt before
// it ever reaches the repository; neither the plaintext nor the hash is
// logged anywhere.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < model.MinUsernameLength {
		return nil, model.NewValidationError(
			fmt.Sprintf("username must be at least %d characters long", model.MinUsernameLength))
	}
	if len(req.Password) < model.MinPasswordLength {
		return nil, model.NewValidationError(
			fmt.Sprintf("password must be at least %d characters long", model.MinPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if req.Name != "" {
		user.Name = &req.Name
	}

	// The unique index is the source of truth for username uniqueness; the
	// repository maps its violation to ErrUsernameTaken.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the matching user. Unknown username
// and wrong password collapse into the same failure so responses never
// reveal which usernames exist.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users with their blogs.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
