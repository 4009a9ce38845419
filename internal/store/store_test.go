package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/synergy-dev/synergysphere/internal/models"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMembership{},
		&models.Project{},
		&models.Task{},
		&models.NotificationLog{},
	)
	require.NoError(t, err)

	return New(gdb)
}

func seedUser(t *testing.T, s *Store, email string) models.User {
	t.Helper()

	user := models.User{Name: "User", Email: email, PasswordHash: "x"}
	require.NoError(t, s.CreateUser(&user))

	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "a@x.com")

	dup := models.User{Name: "Dup", Email: "a@x.com", PasswordHash: "x"}
	require.ErrorIs(t, s.CreateUser(&dup), ErrConflict)
}

func TestMembershipLifecycle(t *testing.T) {
	s := newTestStore(t)

	leader := seedUser(t, s, "a@x.com")
	bob := seedUser(t, s, "b@x.com")

	team := models.Team{Name: "Core", LeaderID: leader.ID}
	require.NoError(t, s.CreateTeam(&team))

	member, err := s.IsMember(team.ID, leader.ID)
	require.NoError(t, err)
	require.True(t, member, "leader is a member from creation")

	require.NoError(t, s.AddMembership(team.ID, bob.ID))
	require.ErrorIs(t, s.AddMembership(team.ID, bob.ID), ErrConflict)

	require.NoError(t, s.RemoveMembership(team.ID, bob.ID))
	require.ErrorIs(t, s.RemoveMembership(team.ID, bob.ID), ErrNotFound)

	// removal must not block re-adding
	require.NoError(t, s.AddMembership(team.ID, bob.ID))
}

func TestProjectsForUserScopedToMemberships(t *testing.T) {
	s := newTestStore(t)

	alice := seedUser(t, s, "a@x.com")
	bob := seedUser(t, s, "b@x.com")

	teamA := models.Team{Name: "A", LeaderID: alice.ID}
	require.NoError(t, s.CreateTeam(&teamA))
	teamB := models.Team{Name: "B", LeaderID: bob.ID}
	require.NoError(t, s.CreateTeam(&teamB))

	inA := models.Project{Name: "In A", TeamID: teamA.ID, CreatedBy: alice.ID}
	require.NoError(t, s.CreateProject(&inA))
	inB := models.Project{Name: "In B", TeamID: teamB.ID, CreatedBy: bob.ID}
	require.NoError(t, s.CreateProject(&inB))

	projects, err := s.ProjectsForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "In A", projects[0].Name)
}

func TestDeleteProjectCascadesTasks(t *testing.T) {
	s := newTestStore(t)

	alice := seedUser(t, s, "a@x.com")
	team := models.Team{Name: "Core", LeaderID: alice.ID}
	require.NoError(t, s.CreateTeam(&team))

	project := models.Project{Name: "Demo", TeamID: team.ID, CreatedBy: alice.ID}
	require.NoError(t, s.CreateProject(&project))

	task := models.Task{Title: "Fix bug", Status: models.TaskStatusTodo, ProjectID: project.ID, CreatedBy: alice.ID}
	require.NoError(t, s.CreateTask(&task))

	require.NoError(t, s.DeleteProject(project.ID))

	_, err := s.ProjectByID(project.ID)
	require.ErrorIs(t, err, ErrNotFound)

	tasks, err := s.TasksByProject(project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.ErrorIs(t, s.DeleteProject(project.ID), ErrNotFound)
}
