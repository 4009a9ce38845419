package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/synergy-dev/synergysphere/internal/handlers"
)

func New(h *handlers.Handler, authRequired gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.HealthCheck)
	r.GET("/ws/:project_id", authRequired, h.WebSocket)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.GET("/me", authRequired, h.Me)
		auth.POST("/logout", authRequired, h.Logout)
	}

	teams := r.Group("/teams", authRequired)
	{
		teams.POST("", h.CreateTeam)
		teams.GET("", h.ListTeams)
		teams.GET("/:team_id", h.GetTeam)
		teams.POST("/:team_id/members", h.AddTeamMember)
		teams.DELETE("/:team_id/members/:user_id", h.RemoveTeamMember)
	}

	projects := r.Group("/projects", authRequired)
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:project_id", h.GetProject)
		projects.PUT("/:project_id", h.UpdateProject)
		projects.DELETE("/:project_id", h.DeleteProject)

		projects.GET("/:project_id/tasks", h.ListProjectTasks)
		projects.POST("/:project_id/tasks", h.CreateTask)
	}

	tasks := r.Group("/tasks", authRequired)
	{
		tasks.GET("/:task_id", h.GetTask)
		tasks.PUT("/:task_id", h.UpdateTask)
		tasks.DELETE("/:task_id", h.DeleteTask)
	}

	return r
}
