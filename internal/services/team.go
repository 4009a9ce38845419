package services

import (
	"errors"
	"strings"

	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/policy"
	"github.com/synergy-dev/synergysphere/internal/store"
)

// CreateTeam persists a team led by the actor. The leader's membership is
// written in the same transaction, so the leader is a member from the first
// observable moment.
func (s *Service) CreateTeam(actorID uint, name string) (models.Team, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return models.Team{}, ErrValidation
	}

	team := models.Team{
		Name:     name,
		LeaderID: actorID,
	}

	if err := s.store.CreateTeam(&team); err != nil {
		return models.Team{}, err
	}

	return team, nil
}

func (s *Service) Team(id uint) (models.Team, error) {
	team, err := s.store.TeamByID(id)

	if err != nil {
		return models.Team{}, mapStoreErr(err)
	}

	return team, nil
}

func (s *Service) Teams() ([]models.Team, error) {
	return s.store.Teams()
}

// AddTeamMember adds a user to a team and dispatches a membership email as a
// detached best-effort side effect. Existence checks run before the
// leadership check.
func (s *Service) AddTeamMember(actorID, teamID, userID uint) error {
	team, err := s.store.TeamByID(teamID)

	if err != nil {
		return mapStoreErr(err)
	}

	user, err := s.store.UserByID(userID)

	if err != nil {
		return mapStoreErr(err)
	}

	if !policy.CanManageTeamMembership(actorID, team) {
		return ErrUnauthorized
	}

	if err := s.store.AddMembership(teamID, userID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyMember
		}

		return err
	}

	go s.notify.TeamAddition(user, team.Name)

	return nil
}

func (s *Service) RemoveTeamMember(actorID, teamID, userID uint) error {
	team, err := s.store.TeamByID(teamID)

	if err != nil {
		return mapStoreErr(err)
	}

	if _, err := s.store.UserByID(userID); err != nil {
		return mapStoreErr(err)
	}

	if !policy.CanManageTeamMembership(actorID, team) {
		return ErrUnauthorized
	}

	if userID == team.LeaderID {
		return ErrCannotRemoveLeader
	}

	if err := s.store.RemoveMembership(teamID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotMember
		}

		return err
	}

	return nil
}
