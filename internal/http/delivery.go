package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordmail/internal/scheduler"
	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
	"github.com/mrlokans/wordmail/internal/tasks"
)

// DeliveryController triggers, previews and reports on deliveries.
type DeliveryController struct {
	delivery   DeliveryService
	scheduler  DeliveryScheduler
	settings   DeliverySettingsStore
	taskClient TaskQueue
}

func NewDeliveryController(delivery DeliveryService, sched DeliveryScheduler, settings DeliverySettingsStore, taskClient TaskQueue) *DeliveryController {
	return &DeliveryController{
		delivery:   delivery,
		scheduler:  sched,
		settings:   settings,
		taskClient: taskClient,
	}
}

// DeliveryStatusResponse is the response for GET /api/delivery/status
type DeliveryStatusResponse struct {
	LastRun    settingsstore.DeliveryStatus `json:"last_run"`
	Scheduler  *scheduler.Status            `json:"scheduler,omitempty"`
	Delivering bool                         `json:"delivering"`
}

// Status handles GET /api/delivery/status
func (dc *DeliveryController) Status(c *gin.Context) {
	resp := DeliveryStatusResponse{
		LastRun:    dc.settings.GetDeliveryStatus(),
		Delivering: dc.delivery.IsDelivering(),
	}
	if dc.scheduler != nil {
		st := dc.scheduler.Status()
		resp.Scheduler = &st
	}
	respondHTMXOrJSON(c, http.StatusOK, "delivery-status", resp)
}

// Preview handles GET /api/preview?count=N
// Selects words without sending or recording them.
func (dc *DeliveryController) Preview(c *gin.Context) {
	count, ok := parseIntQuery(c, "count", 0, 1, 10)
	if !ok {
		return
	}

	words, err := dc.delivery.Preview(c.Request.Context(), count)
	if errors.Is(err, services.ErrNoNewWords) {
		respondError(c, http.StatusConflict, "no_new_words", err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "preview")
		return
	}

	respondHTMXOrJSON(c, http.StatusOK, "word-preview", gin.H{
		"words": words,
		"count": len(words),
	})
}

// RunNow handles POST /api/delivery/run
// Sends today's email immediately, through the task queue when available.
func (dc *DeliveryController) RunNow(c *gin.Context) {
	if dc.delivery.IsDelivering() {
		respondError(c, http.StatusConflict, "delivery_in_progress", services.ErrDeliveryInProgress.Error())
		return
	}

	if dc.taskClient != nil {
		ids, err := dc.taskClient.Add(tasks.SendDailyWordsTask{Trigger: "api"}).Save()
		if err != nil {
			respondInternalError(c, err, "enqueue delivery")
			return
		}
		logger.Infof("Enqueued SendDailyWordsTask with ID: %s", ids[0])
		respondAccepted(c, "delivery enqueued", gin.H{"task_id": ids[0]})
		return
	}

	if dc.scheduler == nil {
		respondError(c, http.StatusServiceUnavailable, "not_configured", "scheduler not available")
		return
	}
	dc.scheduler.RunNow()
	respondAccepted(c, "delivery started", nil)
}

// SendTest handles POST /api/delivery/test
func (dc *DeliveryController) SendTest(c *gin.Context) {
	result, err := dc.delivery.SendTest(c.Request.Context())
	switch {
	case errors.Is(err, services.ErrEmailNotConfigured):
		respondError(c, http.StatusServiceUnavailable, "email_not_configured", err.Error())
		return
	case errors.Is(err, services.ErrNoNewWords):
		respondError(c, http.StatusConflict, "no_new_words", err.Error())
		return
	case err != nil:
		logger.WithError(err).Error("Test email failed")
		respondError(c, http.StatusBadGateway, "send_failed", err.Error())
		return
	}
	respondSuccess(c, "test email sent to "+result.Recipient, result)
}

// TestConnection handles POST /api/delivery/test-connection
func (dc *DeliveryController) TestConnection(c *gin.Context) {
	err := dc.delivery.TestConnection(c.Request.Context())
	switch {
	case errors.Is(err, services.ErrEmailNotConfigured):
		respondError(c, http.StatusServiceUnavailable, "email_not_configured", err.Error())
	case err != nil:
		respondError(c, http.StatusBadGateway, "connection_failed", err.Error())
	default:
		respondSuccess(c, "email connection ok", nil)
	}
}
