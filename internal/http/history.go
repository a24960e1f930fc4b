package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordmail/internal/tasks"
)

// HistoryController exposes the sent-word history.
type HistoryController struct {
	store         HistoryStore
	taskClient    TaskQueue
	retentionDays int
}

func NewHistoryController(store HistoryStore, taskClient TaskQueue, retentionDays int) *HistoryController {
	return &HistoryController{
		store:         store,
		taskClient:    taskClient,
		retentionDays: retentionDays,
	}
}

// ListWords handles GET /api/history?limit=N
func (hc *HistoryController) ListWords(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", 50, 1, 1000)
	if !ok {
		return
	}

	words, err := hc.store.GetSentWords(limit)
	if err != nil {
		respondInternalError(c, err, "list sent words")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"words": words,
		"count": len(words),
	})
}

// Info handles GET /api/history/info
func (hc *HistoryController) Info(c *gin.Context) {
	info, err := hc.store.GetInfo(time.Now())
	if err != nil {
		respondInternalError(c, err, "history info")
		return
	}
	c.JSON(http.StatusOK, info)
}

// Cleanup handles POST /api/history/cleanup?days=N
// Runs through the task queue when one is configured.
func (hc *HistoryController) Cleanup(c *gin.Context) {
	def := hc.retentionDays
	if def <= 0 {
		def = tasks.DefaultHistoryRetentionDays
	}
	days, ok := parseIntQuery(c, "days", def, 1, 36500)
	if !ok {
		return
	}

	if hc.taskClient != nil {
		ids, err := hc.taskClient.Add(tasks.CleanupSentWordsTask{RetentionDays: days}).Save()
		if err != nil {
			respondInternalError(c, err, "enqueue history cleanup")
			return
		}
		logger.Infof("Enqueued CleanupSentWordsTask with ID: %s", ids[0])
		respondAccepted(c, "history cleanup enqueued", gin.H{"task_id": ids[0], "days": days})
		return
	}

	deleted, err := hc.store.CleanupOldWords(days, time.Now())
	if err != nil {
		respondInternalError(c, err, "history cleanup")
		return
	}
	respondSuccess(c, "history cleaned up", gin.H{"deleted": deleted, "days": days})
}

// Reset handles DELETE /api/history?confirm=true
func (hc *HistoryController) Reset(c *gin.Context) {
	if c.Query("confirm") != "true" {
		respondBadRequest(c, "pass confirm=true to delete the entire history")
		return
	}

	deleted, err := hc.store.ResetHistory()
	if err != nil {
		respondInternalError(c, err, "reset history")
		return
	}
	logger.Warnf("Sent-word history reset (%d words removed)", deleted)
	respondSuccess(c, "history reset", gin.H{"deleted": deleted})
}

// HistoryPage handles GET /history
func (hc *HistoryController) HistoryPage(c *gin.Context) {
	words, err := hc.store.GetSentWords(200)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading history: %s", err.Error())
		return
	}
	info, err := hc.store.GetInfo(time.Now())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading history: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "history", gin.H{
		"Words":     words,
		"Info":      info,
		"CSRFToken": csrfToken(c),
	})
}
