// Package policy holds the pure authorization decisions. Functions here take
// already-loaded entities and return a verdict; they never touch the store
// and never return errors. The service layer turns a false verdict into an
// authorization failure.
package policy

import "github.com/synergy-dev/synergysphere/internal/models"

// CanManageTeamMembership reports whether the actor may add or remove team
// members. Only the team leader may.
func CanManageTeamMembership(actorID uint, team models.Team) bool {
	return actorID == team.LeaderID
}

// CanModifyProject reports whether the actor may update or delete a project:
// the project's creator or the owning team's leader.
func CanModifyProject(actorID uint, project models.Project, team models.Team) bool {
	return actorID == project.CreatedBy || actorID == team.LeaderID
}

// CanModifyTask reports whether the actor may update a task: the owning
// team's leader, the task's creator, or its current assignee.
func CanModifyTask(actorID uint, task models.Task, team models.Team) bool {
	if actorID == team.LeaderID || actorID == task.CreatedBy {
		return true
	}

	return task.AssigneeID != nil && *task.AssigneeID == actorID
}

// CanDeleteTask is stricter than CanModifyTask: assignees may work a task but
// not delete it.
func CanDeleteTask(actorID uint, task models.Task, team models.Team) bool {
	return actorID == team.LeaderID || actorID == task.CreatedBy
}

// IsTeamMember reports whether the user appears in the given membership rows.
func IsTeamMember(userID uint, memberships []models.TeamMembership) bool {
	for _, m := range memberships {
		if m.UserID == userID {
			return true
		}
	}

	return false
}
