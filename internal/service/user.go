package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courier/internal/auth"
	"courier/internal/domain"
	"courier/internal/repository"
)

// UserService handles registration and credential checks.
type UserService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// RegisterRequest contains the parameters for registering a user.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.Role // optional, defaults to customer
}

// Register creates a new user with a hashed password. The email must not
// be registered already; the match is exact and case-sensitive.
// Registration never establishes a session.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Name == "" {
		return ErrInvalidName
	}

	if req.Email == "" {
		return ErrInvalidEmail
	}

	if req.Password == "" {
		return ErrInvalidPassword
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login checks credentials and returns the matching user. An unknown
// email and a wrong password both yield ErrInvalidCredentials so callers
// cannot tell which field was wrong.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
