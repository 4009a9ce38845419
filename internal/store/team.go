package store

import (
	"github.com/synergy-dev/synergysphere/internal/models"
	"gorm.io/gorm"
)

// CreateTeam persists the team and its leader's membership row in a single
// transaction, so a team is never observable without its leader as a member.
func (s *Store) CreateTeam(team *models.Team) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		membership := models.TeamMembership{
			TeamID: team.ID,
			UserID: team.LeaderID,
		}

		return tx.Create(&membership).Error
	})

	return translate(err)
}

func (s *Store) TeamByID(id uint) (models.Team, error) {
	var team models.Team

	if err := s.db.Preload("Memberships.User").First(&team, id).Error; err != nil {
		return models.Team{}, translate(err)
	}

	return team, nil
}

func (s *Store) Teams() ([]models.Team, error) {
	var teams []models.Team

	if err := s.db.Find(&teams).Error; err != nil {
		return nil, translate(err)
	}

	return teams, nil
}

func (s *Store) AddMembership(teamID, userID uint) error {
	membership := models.TeamMembership{
		TeamID: teamID,
		UserID: userID,
	}

	return translate(s.db.Create(&membership).Error)
}

// RemoveMembership deletes the row outright: a soft-deleted membership would
// still occupy the (team_id, user_id) unique index and block re-adding the
// user later.
func (s *Store) RemoveMembership(teamID, userID uint) error {
	result := s.db.Unscoped().Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMembership{})

	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) IsMember(teamID, userID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error

	if err != nil {
		return false, translate(err)
	}

	return count > 0, nil
}

func (s *Store) Memberships(teamID uint) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership

	if err := s.db.Where("team_id = ?", teamID).Find(&memberships).Error; err != nil {
		return nil, translate(err)
	}

	return memberships, nil
}
