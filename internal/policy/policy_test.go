package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/synergy-dev/synergysphere/internal/models"
)

func TestCanManageTeamMembership(t *testing.T) {
	team := models.Team{LeaderID: 1}

	require.True(t, CanManageTeamMembership(1, team))
	require.False(t, CanManageTeamMembership(2, team))
}

func TestCanModifyProject(t *testing.T) {
	team := models.Team{LeaderID: 1}
	project := models.Project{TeamID: 10, CreatedBy: 2}

	require.True(t, CanModifyProject(1, project, team), "team leader may modify")
	require.True(t, CanModifyProject(2, project, team), "creator may modify")
	require.False(t, CanModifyProject(3, project, team), "other members may not")
}

func TestCanModifyTask(t *testing.T) {
	team := models.Team{LeaderID: 1}
	assignee := uint(3)

	task := models.Task{CreatedBy: 2, AssigneeID: &assignee}

	require.True(t, CanModifyTask(1, task, team), "team leader")
	require.True(t, CanModifyTask(2, task, team), "task creator")
	require.True(t, CanModifyTask(3, task, team), "assignee")
	require.False(t, CanModifyTask(4, task, team), "unrelated user")

	unassigned := models.Task{CreatedBy: 2}
	require.False(t, CanModifyTask(3, unassigned, team))
}

func TestCanDeleteTaskExcludesAssignee(t *testing.T) {
	team := models.Team{LeaderID: 1}
	assignee := uint(3)
	task := models.Task{CreatedBy: 2, AssigneeID: &assignee}

	require.True(t, CanDeleteTask(1, task, team))
	require.True(t, CanDeleteTask(2, task, team))
	require.False(t, CanDeleteTask(3, task, team), "assignee may not delete")
}

func TestIsTeamMember(t *testing.T) {
	memberships := []models.TeamMembership{
		{TeamID: 1, UserID: 1},
		{TeamID: 1, UserID: 2},
	}

	require.True(t, IsTeamMember(2, memberships))
	require.False(t, IsTeamMember(3, memberships))
	require.False(t, IsTeamMember(1, nil))
}
