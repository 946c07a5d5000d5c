package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habitus-backend/internal/habit/domain"
	"habitus-backend/internal/habit/usecase"
	"habitus-backend/pkg/date"
)

// TaskHandler handles task-definition and completion HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrTaskInactive):
		c.JSON(http.StatusConflict, gin.H{"error": "Task is inactive"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetTasks returns the user's task definitions of a kind
// GET /api/tasks?kind=mit&include_inactive=false
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	kind := domain.Kind(c.DefaultQuery("kind", string(domain.KindMIT)))
	includeInactive := c.Query("include_inactive") == "true"

	tasks, err := h.taskUsecase.ListTasks(userID, kind, includeInactive)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if tasks == nil {
		tasks = []*domain.TaskDefinition{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTaskByID returns a specific task definition
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTask(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task definition
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task definition
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.UpdateTaskRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deactivates a task definition (soft delete)
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeactivateTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deactivated"})
}

// GetTasksForDay returns the definitions expected on a day with their
// completion state
// GET /api/tasks/day/:date
func (h *TaskHandler) GetTasksForDay(c *gin.Context) {
	userID := c.GetString("userID")

	day, err := date.Parse(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	tasks, err := h.taskUsecase.TasksForDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day,
		"tasks": tasks,
	})
}

// SearchTasks fuzzy-searches the user's active definitions
// GET /api/tasks/search?q=medit
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	userID := c.GetString("userID")

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter required"})
		return
	}

	tasks, err := h.taskUsecase.SearchTasks(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// CompleteTaskRequest carries the day being completed.
type CompleteTaskRequest struct {
	Date string `json:"date" binding:"required"`
}

// CompleteTask logs a completion for a task on a day
// POST /api/tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := date.Parse(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	rec, err := h.taskUsecase.CompleteTask(userID, taskID, day)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// UncompleteTask removes the completion of a task on a day
// DELETE /api/tasks/:id/complete/:date
func (h *TaskHandler) UncompleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	day, err := date.Parse(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	if err := h.taskUsecase.UncompleteTask(userID, taskID, day); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Completion removed"})
}
