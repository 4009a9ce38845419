package services

import (
	"log"
	"strings"
	"time"

	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/policy"
)

type TaskCreate struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
	AssigneeID  *uint
}

type TaskUpdate struct {
	Title         *string
	Description   *string
	Status        *string
	DueDate       *time.Time
	ClearDueDate  bool
	AssigneeID    *uint
	ClearAssignee bool
}

func (s *Service) CreateTask(actorID, projectID uint, input TaskCreate) (models.Task, error) {
	input.Title = strings.TrimSpace(input.Title)

	if input.Title == "" {
		return models.Task{}, ErrValidation
	}

	project, err := s.store.ProjectByID(projectID)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	member, err := s.store.IsMember(project.TeamID, actorID)

	if err != nil {
		return models.Task{}, err
	}

	if !member {
		return models.Task{}, ErrUnauthorized
	}

	status := models.TaskStatusTodo

	if input.Status != "" {
		normalized, ok := models.NormalizeStatus(input.Status)

		if !ok {
			return models.Task{}, ErrValidation
		}

		status = normalized
	}

	var assignee models.User

	if input.AssigneeID != nil {
		assignee, err = s.store.UserByID(*input.AssigneeID)

		if err != nil {
			return models.Task{}, mapStoreErr(err)
		}
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		ProjectID:   projectID,
		AssigneeID:  input.AssigneeID,
		CreatedBy:   actorID,
	}

	if err := s.store.CreateTask(&task); err != nil {
		return models.Task{}, err
	}

	if input.AssigneeID != nil {
		go s.notify.TaskAssigned(assignee, task.Title, project.Name)
	}

	return task, nil
}

func (s *Service) Task(id uint) (models.Task, error) {
	task, err := s.store.TaskByID(id)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	return task, nil
}

func (s *Service) ProjectTasks(projectID uint) ([]models.Task, error) {
	if _, err := s.store.ProjectByID(projectID); err != nil {
		return nil, mapStoreErr(err)
	}

	return s.store.TasksByProject(projectID)
}

// UpdateTask applies a partial update, then dispatches status-change and
// reassignment emails as independent best-effort side effects. The previous
// status and assignee are captured before the mutation.
func (s *Service) UpdateTask(actorID, taskID uint, input TaskUpdate) (models.Task, error) {
	task, err := s.store.TaskByID(taskID)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	project, err := s.store.ProjectByID(task.ProjectID)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	team, err := s.store.TeamByID(project.TeamID)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	if !policy.CanModifyTask(actorID, task, team) {
		return models.Task{}, ErrUnauthorized
	}

	previousStatus := task.Status
	previousAssignee := task.AssigneeID

	fields := make(map[string]interface{})

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)

		if title == "" {
			return models.Task{}, ErrValidation
		}

		fields["title"] = title
	}

	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if input.Status != nil {
		normalized, ok := models.NormalizeStatus(*input.Status)

		if !ok {
			return models.Task{}, ErrValidation
		}

		fields["status"] = normalized
	}

	if input.ClearDueDate {
		fields["due_date"] = nil
	} else if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}

	if input.ClearAssignee {
		fields["assignee_id"] = nil
	} else if input.AssigneeID != nil {
		if _, err := s.store.UserByID(*input.AssigneeID); err != nil {
			return models.Task{}, mapStoreErr(err)
		}

		fields["assignee_id"] = *input.AssigneeID
	}

	if len(fields) == 0 {
		return task, nil
	}

	updated, err := s.store.UpdateTask(taskID, fields)

	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}

	if updated.Status != previousStatus && updated.AssigneeID != nil {
		if assignee, err := s.store.UserByID(*updated.AssigneeID); err != nil {
			log.Printf("Failed to load assignee %d for status notification: %v", *updated.AssigneeID, err)
		} else {
			go s.notify.TaskStatusChanged(assignee, updated.Title, previousStatus, updated.Status)
		}
	}

	if assigneeChanged(previousAssignee, updated.AssigneeID) && updated.AssigneeID != nil {
		if assignee, err := s.store.UserByID(*updated.AssigneeID); err != nil {
			log.Printf("Failed to load assignee %d for assignment notification: %v", *updated.AssigneeID, err)
		} else {
			go s.notify.TaskAssigned(assignee, updated.Title, project.Name)
		}
	}

	return updated, nil
}

func (s *Service) DeleteTask(actorID, taskID uint) error {
	task, err := s.store.TaskByID(taskID)

	if err != nil {
		return mapStoreErr(err)
	}

	project, err := s.store.ProjectByID(task.ProjectID)

	if err != nil {
		return mapStoreErr(err)
	}

	team, err := s.store.TeamByID(project.TeamID)

	if err != nil {
		return mapStoreErr(err)
	}

	if !policy.CanDeleteTask(actorID, task, team) {
		return ErrUnauthorized
	}

	return mapStoreErr(s.store.DeleteTask(taskID))
}

func assigneeChanged(previous, current *uint) bool {
	if previous == nil || current == nil {
		return previous != current
	}

	return *previous != *current
}
