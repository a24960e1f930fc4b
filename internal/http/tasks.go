package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordmail/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	client        TaskQueue
	retentionDays int
}

func NewTasksController(client TaskQueue, retentionDays int) *TasksController {
	return &TasksController{client: client, retentionDays: retentionDays}
}

// TaskInfo represents basic information about a task.
type TaskInfo struct {
	ID        string `json:"id"`
	Queue     string `json:"queue"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/tasks/types
// Returns the list of available task types that can be triggered.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "send_daily_words",
			Description: "Send today's vocabulary email now",
			Queue:       tasks.SendDailyWordsTask{}.Config().Name,
		},
		{
			Type:        "cleanup_sent_words",
			Description: "Forget sent words older than the retention period",
			Queue:       tasks.CleanupSentWordsTask{}.Config().Name,
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
		"workers":    tc.client.Workers(),
	})
}

// GetTaskStatus handles GET /api/tasks/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	statusStr := taskStatusToString(status)

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": statusStr,
	})
}

// RunTaskRequest is the request body for running a task.
type RunTaskRequest struct {
	// RetentionDays is optional for cleanup_sent_words
	RetentionDays int `json:"retention_days,omitempty" form:"retention_days"`
}

// RunTask handles POST /api/tasks/:type/run
// Manually triggers a task of the specified type.
// Supports both JSON API and HTMX (form) requests.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var req RunTaskRequest
	// Try to bind from form data first (for HTMX), then JSON
	if c.ContentType() == "application/x-www-form-urlencoded" || c.ContentType() == "multipart/form-data" {
		_ = c.ShouldBind(&req)
	} else if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&req)
	}

	var task backlite.Task
	switch taskType {
	case "send_daily_words":
		task = tasks.SendDailyWordsTask{Trigger: "api"}

	case "cleanup_sent_words":
		days := req.RetentionDays
		if days == 0 {
			days = tc.retentionDays
		}
		if days < 0 {
			tc.respondTaskError(c, "retention_days must be positive")
			return
		}
		task = tasks.CleanupSentWordsTask{RetentionDays: days}

	default:
		tc.respondTaskError(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	ids, err := tc.client.Add(task).Save()
	if err != nil {
		logger.WithError(err).Errorf("Failed to enqueue %s", taskType)
		tc.respondTaskError(c, "failed to enqueue task")
		return
	}
	logger.Infof("Enqueued %s task with ID: %s", taskType, ids[0])

	tc.respondTaskSuccess(c, ids[0], taskType)
}

func (tc *TasksController) respondTaskSuccess(c *gin.Context, taskID, taskType string) {
	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, "task-result", gin.H{"Success": true, "TaskID": taskID, "Type": taskType})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"task_id": taskID,
		"type":    taskType,
		"message": "task enqueued",
	})
}

func (tc *TasksController) respondTaskError(c *gin.Context, errorMsg string) {
	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, "task-result", gin.H{"Success": false, "Error": errorMsg})
		return
	}

	respondBadRequest(c, errorMsg)
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
