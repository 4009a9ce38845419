package store

import (
	"github.com/synergy-dev/synergysphere/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateProject(project *models.Project) error {
	return translate(s.db.Create(project).Error)
}

func (s *Store) ProjectByID(id uint) (models.Project, error) {
	var project models.Project

	if err := s.db.First(&project, id).Error; err != nil {
		return models.Project{}, translate(err)
	}

	return project, nil
}

// ProjectsForUser returns the projects belonging to teams the user is a
// member of.
func (s *Store) ProjectsForUser(userID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Joins("JOIN team_memberships ON team_memberships.team_id = projects.team_id").
		Where("team_memberships.user_id = ? AND team_memberships.deleted_at IS NULL", userID).
		Find(&projects).Error

	if err != nil {
		return nil, translate(err)
	}

	return projects, nil
}

func (s *Store) UpdateProject(id uint, fields map[string]interface{}) (models.Project, error) {
	var project models.Project

	if err := s.db.First(&project, id).Error; err != nil {
		return models.Project{}, translate(err)
	}

	if err := s.db.Model(&project).Updates(fields).Error; err != nil {
		return models.Project{}, translate(err)
	}

	if err := s.db.First(&project, id).Error; err != nil {
		return models.Project{}, translate(err)
	}

	return project, nil
}

// DeleteProject removes the project and all of its tasks in one transaction,
// so no orphan task rows survive.
func (s *Store) DeleteProject(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, id)

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})

	return translate(err)
}
