package services

import (
	"errors"
	"strings"

	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user with a bcrypt-hashed credential. Plaintext
// passwords are never persisted.
func (s *Service) Register(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return models.User{}, ErrValidation
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		// bcrypt rejects inputs over 72 bytes; that is a caller error,
		// not a server fault.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, ErrValidation
		}

		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.User{}, ErrDuplicateEmail
		}

		return models.User{}, err
	}

	return user, nil
}

// Login verifies the credential and returns the matching user. Session
// establishment is the caller's concern.
func (s *Service) Login(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.UserByEmail(email)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}

		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) User(id uint) (models.User, error) {
	user, err := s.store.UserByID(id)

	if err != nil {
		return models.User{}, mapStoreErr(err)
	}

	return user, nil
}
