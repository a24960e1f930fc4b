package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// UIController renders the dashboard.
type UIController struct {
	history   HistoryStore
	settings  DeliverySettingsStore
	scheduler DeliveryScheduler
	version   string
}

func NewUIController(history HistoryStore, settings DeliverySettingsStore, sched DeliveryScheduler, version string) *UIController {
	return &UIController{
		history:   history,
		settings:  settings,
		scheduler: sched,
		version:   version,
	}
}

func (controller *UIController) Dashboard(c *gin.Context) {
	info, err := controller.history.GetInfo(time.Now())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading dashboard: %s", err.Error())
		return
	}
	recent, err := controller.history.GetSentWords(10)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading dashboard: %s", err.Error())
		return
	}

	data := gin.H{
		"Info":      info,
		"Recent":    recent,
		"Settings":  controller.settings.GetDeliverySettingsInfo(),
		"LastRun":   controller.settings.GetDeliveryStatus(),
		"Version":   controller.version,
		"CSRFToken": csrfToken(c),
	}
	if controller.scheduler != nil {
		data["Scheduler"] = controller.scheduler.Status()
	}

	c.HTML(http.StatusOK, "index", data)
}
