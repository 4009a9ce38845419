package services

import (
	"strings"

	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/policy"
)

type ProjectUpdate struct {
	Name        *string
	Description *string
}

func (s *Service) CreateProject(actorID, teamID uint, name, description string) (models.Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return models.Project{}, ErrValidation
	}

	team, err := s.store.TeamByID(teamID)

	if err != nil {
		return models.Project{}, mapStoreErr(err)
	}

	if !policy.IsTeamMember(actorID, team.Memberships) {
		return models.Project{}, ErrUnauthorized
	}

	project := models.Project{
		Name:        name,
		Description: description,
		TeamID:      teamID,
		CreatedBy:   actorID,
	}

	if err := s.store.CreateProject(&project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (s *Service) Project(id uint) (models.Project, error) {
	project, err := s.store.ProjectByID(id)

	if err != nil {
		return models.Project{}, mapStoreErr(err)
	}

	return project, nil
}

// Projects lists the projects of every team the actor belongs to.
func (s *Service) Projects(actorID uint) ([]models.Project, error) {
	return s.store.ProjectsForUser(actorID)
}

func (s *Service) UpdateProject(actorID, id uint, input ProjectUpdate) (models.Project, error) {
	project, err := s.store.ProjectByID(id)

	if err != nil {
		return models.Project{}, mapStoreErr(err)
	}

	team, err := s.store.TeamByID(project.TeamID)

	if err != nil {
		return models.Project{}, mapStoreErr(err)
	}

	if !policy.CanModifyProject(actorID, project, team) {
		return models.Project{}, ErrUnauthorized
	}

	fields := make(map[string]interface{})

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)

		if name == "" {
			return models.Project{}, ErrValidation
		}

		fields["name"] = name
	}

	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if len(fields) == 0 {
		return project, nil
	}

	updated, err := s.store.UpdateProject(id, fields)

	if err != nil {
		return models.Project{}, mapStoreErr(err)
	}

	return updated, nil
}

func (s *Service) DeleteProject(actorID, id uint) error {
	project, err := s.store.ProjectByID(id)

	if err != nil {
		return mapStoreErr(err)
	}

	team, err := s.store.TeamByID(project.TeamID)

	if err != nil {
		return mapStoreErr(err)
	}

	if !policy.CanModifyProject(actorID, project, team) {
		return ErrUnauthorized
	}

	return mapStoreErr(s.store.DeleteProject(id))
}
