package store

import (
	"github.com/synergy-dev/synergysphere/internal/models"
)

func (s *Store) CreateTask(task *models.Task) error {
	return translate(s.db.Create(task).Error)
}

func (s *Store) TaskByID(id uint) (models.Task, error) {
	var task models.Task

	if err := s.db.First(&task, id).Error; err != nil {
		return models.Task{}, translate(err)
	}

	return task, nil
}

func (s *Store) TasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}

	return tasks, nil
}

func (s *Store) UpdateTask(id uint, fields map[string]interface{}) (models.Task, error) {
	var task models.Task

	if err := s.db.First(&task, id).Error; err != nil {
		return models.Task{}, translate(err)
	}

	if err := s.db.Model(&task).Updates(fields).Error; err != nil {
		return models.Task{}, translate(err)
	}

	if err := s.db.First(&task, id).Error; err != nil {
		return models.Task{}, translate(err)
	}

	return task, nil
}

func (s *Store) DeleteTask(id uint) error {
	result := s.db.Delete(&models.Task{}, id)

	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
