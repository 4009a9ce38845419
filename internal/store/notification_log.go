package store

import (
	"github.com/synergy-dev/synergysphere/internal/models"
)

func (s *Store) RecordNotification(entry *models.NotificationLog) error {
	return translate(s.db.Create(entry).Error)
}

func (s *Store) NotificationsForUser(userID uint) ([]models.NotificationLog, error) {
	var entries []models.NotificationLog

	if err := s.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, translate(err)
	}

	return entries, nil
}
