package service

import (
	"errors"

	"github.com/realestate-api/internal/models"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/validate"
	"github.com/realestate-api/pkg/crypto"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService handles account operations
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SignUp validates the payload, hashes the password and persists a new
// user. Uniqueness of username and email is left to the store; a
// constraint violation propagates as a plain persistence error.
func (s *UserService) SignUp(payload map[string]any) (*models.User, error) {
	if err := validate.RequiredFields(payload, "username", "email", "password"); err != nil {
		return nil, err
	}

	hashed, err := crypto.HashPassword(asString(payload["password"]))
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: asString(payload["username"]),
		Email:    asString(payload["email"]),
		Password: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn checks the submitted credentials against the stored hash.
// A missing user and a wrong password both yield ErrInvalidCredentials
// so callers cannot probe which usernames exist.
func (s *UserService) SignIn(payload map[string]any) error {
	if err := validate.RequiredFields(payload, "username", "password"); err != nil {
		return err
	}

	user, err := s.userRepo.GetByUsername(asString(payload["username"]))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !crypto.CheckPassword(asString(payload["password"]), user.Password) {
		return ErrInvalidCredentials
	}

	return nil
}

// ListAll retrieves every user
func (s *UserService) ListAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Update overwrites the mutable fields named in the payload. Only
// username, email and password may be set; a new password is hashed
// before storing so the password column never holds plaintext.
func (s *UserService) Update(id uint, payload map[string]any) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for key, value := range payload {
		switch key {
		case "username":
			user.Username = asString(value)
		case "email":
			user.Email = asString(value)
		case "password":
			hashed, err := crypto.HashPassword(asString(value))
			if err != nil {
				return nil, err
			}
			user.Password = hashed
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by ID
func (s *UserService) Delete(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
