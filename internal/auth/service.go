package auth

import (
	"errors"

	"github.com/RiniPat/aaDinehub/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates an account. The password is stored hashed.
func (s *Service) Register(username, password string) (*User, error) {
	if username == "" {
		return nil, apperr.Validation("username", "username is required")
	}
	if password == "" {
		return nil, apperr.Validation("password", "password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username: username,
		Password: string(hashed),
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, apperr.Conflict("Username already exists")
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the user.
func (s *Service) Login(username, password string) (*User, error) {
	if username == "" {
		return nil, apperr.Validation("username", "username is required")
	}
	if password == "" {
		return nil, apperr.Validation("password", "password is required")
	}

	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, apperr.Auth("Invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Auth("Invalid credentials")
	}

	return user, nil
}

// GetUser looks up a user by id.
func (s *Service) GetUser(id int) (*User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}
