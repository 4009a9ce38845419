package store

import (
	"github.com/synergy-dev/synergysphere/internal/models"
)

func (s *Store) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *Store) UserByID(id uint) (models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}
