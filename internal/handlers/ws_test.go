package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/synergy-dev/synergysphere/internal/models"
)

func (a *testApp) project(t *testing.T, leader models.User) models.Project {
	t.Helper()

	team, err := a.svc.CreateTeam(leader.ID, "Core")
	require.NoError(t, err)

	project, err := a.svc.CreateProject(leader.ID, team.ID, "Apollo", "")
	require.NoError(t, err)

	return project
}

func dialWS(t *testing.T, srv *httptest.Server, projectID uint, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/%d", projectID)
	header := http.Header{
		"Authorization": {"Bearer " + token},
		"Origin":        {"http://localhost:5173"},
	}

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	return conn
}

func TestWebSocketDeliversTaskEvents(t *testing.T) {
	app := newTestApp(t)

	alice, token := app.user(t, "Alice", "a@x.com")
	project := app.project(t, alice)

	srv := httptest.NewServer(app.router)
	defer srv.Close()

	conn := dialWS(t, srv, project.ID, token)
	defer conn.Close()

	body := gin.H{"title": "Ship it"}
	rec := app.do(t, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", project.ID), body, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var event map[string]interface{}

	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, "task_created", event["type"])
	require.Equal(t, float64(project.ID), event["project_id"])
}

func TestWebSocketDisconnectReleasesGoroutines(t *testing.T) {
	app := newTestApp(t)

	alice, token := app.user(t, "Alice", "a@x.com")
	project := app.project(t, alice)

	srv := httptest.NewServer(app.router)
	defer srv.Close()

	// warm up so lazily started runtime goroutines don't skew the baseline
	warm := dialWS(t, srv, project.ID, token)
	require.NoError(t, warm.Close())
	time.Sleep(100 * time.Millisecond)

	baseline := runtime.NumGoroutine()

	for i := 0; i < 30; i++ {
		conn := dialWS(t, srv, project.ID, token)
		require.NoError(t, conn.Close())
	}

	// every per-connection goroutine must wind down after disconnect
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline+5
	}, 3*time.Second, 50*time.Millisecond)
}
