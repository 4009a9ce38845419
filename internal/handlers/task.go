package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/services"
	"github.com/synergy-dev/synergysphere/internal/utils"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"` // RFC 3339
	AssigneeID  *uint  `json:"assignee_id"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`    // RFC 3339; empty string clears the date
	AssigneeID  *uint   `json:"assignee_id"` // zero clears the assignee
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	ProjectID   uint       `json:"project_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	CreatedBy   uint       `json:"created_by"`
}

func taskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		ProjectID:   task.ProjectID,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
	}
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	projectID, err := utils.ParseIDParam(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	input := services.TaskCreate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse(time.RFC3339, req.DueDate)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date"})
			return
		}

		input.DueDate = &dueDate
	}

	task, err := h.svc.CreateTask(userID, projectID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.hub.Broadcast(projectID, "task_created")

	ctx.JSON(http.StatusCreated, taskResponse(task))
}

func (h *Handler) ListProjectTasks(ctx *gin.Context) {
	projectID, err := utils.ParseIDParam(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.svc.ProjectTasks(projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, taskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetTask(ctx *gin.Context) {
	taskID, err := utils.ParseIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.Task(taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	taskID, err := utils.ParseIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	input := services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDueDate = true
		} else {
			dueDate, err := time.Parse(time.RFC3339, *req.DueDate)

			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date"})
				return
			}

			input.DueDate = &dueDate
		}
	}

	if req.AssigneeID != nil {
		if *req.AssigneeID == 0 {
			input.ClearAssignee = true
		} else {
			input.AssigneeID = req.AssigneeID
		}
	}

	task, err := h.svc.UpdateTask(userID, taskID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.hub.Broadcast(task.ProjectID, "task_updated")

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	taskID, err := utils.ParseIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	task, err := h.svc.Task(taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.svc.DeleteTask(userID, taskID); err != nil {
		respondError(ctx, err)
		return
	}

	h.hub.Broadcast(task.ProjectID, "task_deleted")

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
