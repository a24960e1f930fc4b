package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordmail/internal/settingsstore"
)

// SettingsController handles the delivery settings editor.
type SettingsController struct {
	settingsStore DeliverySettingsStore
	scheduler     DeliveryScheduler
	taskWorkers   int
}

func NewSettingsController(store DeliverySettingsStore, sched DeliveryScheduler, taskWorkers int) *SettingsController {
	return &SettingsController{
		settingsStore: store,
		scheduler:     sched,
		taskWorkers:   taskWorkers,
	}
}

// DeliverySettingsResponse is the response for GET /settings
type DeliverySettingsResponse struct {
	Config      settingsstore.DeliverySettingsInfo `json:"config"`
	Status      settingsstore.DeliveryStatus       `json:"status"`
	NextRun     *time.Time                         `json:"next_run,omitempty"`
	IsRunning   bool                               `json:"is_running"`
	TaskWorkers int                                `json:"task_workers"`
	CSRFToken   string                             `json:"-"`
}

// SettingsPage returns the current settings as a page, or as JSON when asked.
func (sc *SettingsController) SettingsPage(c *gin.Context) {
	response := DeliverySettingsResponse{
		Config:      sc.settingsStore.GetDeliverySettingsInfo(),
		Status:      sc.settingsStore.GetDeliveryStatus(),
		TaskWorkers: sc.taskWorkers,
		CSRFToken:   csrfToken(c),
	}
	if sc.scheduler != nil {
		st := sc.scheduler.Status()
		response.NextRun = st.NextRun
		response.IsRunning = st.Running
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, response)
		return
	}
	c.HTML(http.StatusOK, "settings", response)
}

// UpdateSettings handles POST /settings/delivery/save
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req settingsstore.DeliverySettingsUpdate
	if err := c.ShouldBind(&req); err != nil {
		sc.respondResult(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	// Unchecked checkboxes are not submitted at all
	if req.Enabled == nil && c.ContentType() == "application/x-www-form-urlencoded" {
		enabled := false
		req.Enabled = &enabled
	}

	if err := sc.settingsStore.UpdateDeliverySettings(req); err != nil {
		if errors.Is(err, settingsstore.ErrInvalidSettings) {
			sc.respondResult(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.WithError(err).Error("Failed to save delivery settings")
		sc.respondResult(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	if !sc.reschedule(c) {
		return
	}
	sc.respondResult(c, http.StatusOK, "")
}

// ResetSettings handles POST /settings/delivery/reset
// Clears database overrides, reverting to the configured values.
func (sc *SettingsController) ResetSettings(c *gin.Context) {
	if err := sc.settingsStore.ClearDeliverySettings(); err != nil {
		logger.WithError(err).Error("Failed to reset delivery settings")
		sc.respondResult(c, http.StatusInternalServerError, "Failed to reset settings")
		return
	}

	if !sc.reschedule(c) {
		return
	}
	sc.respondResult(c, http.StatusOK, "")
}

func (sc *SettingsController) reschedule(c *gin.Context) bool {
	if sc.scheduler == nil {
		return true
	}
	if err := sc.scheduler.Reschedule(); err != nil {
		logger.WithError(err).Error("Failed to reschedule delivery")
		sc.respondResult(c, http.StatusInternalServerError, "Settings saved but failed to reschedule: "+err.Error())
		return false
	}
	return true
}

// respondResult renders the settings result fragment, or JSON for API clients.
// An empty errMsg means success.
func (sc *SettingsController) respondResult(c *gin.Context, status int, errMsg string) {
	if c.ContentType() == "application/json" || wantsJSON(c) {
		if errMsg != "" {
			c.JSON(status, ErrorResponse{Error: errMsg})
			return
		}
		c.JSON(status, sc.settingsStore.GetDeliverySettingsInfo())
		return
	}

	data := gin.H{"Success": errMsg == "", "Error": errMsg}
	if errMsg == "" {
		data["Config"] = sc.settingsStore.GetDeliverySettingsInfo()
	}
	c.HTML(status, "delivery-settings-result", data)
}
