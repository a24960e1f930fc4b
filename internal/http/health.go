package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordmail/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db         *database.Database
	dictionary DictionaryPinger
	version    string
}

func NewHealthController(db *database.Database, dictionary DictionaryPinger, version string) *HealthController {
	return &HealthController{
		db:         db,
		dictionary: dictionary,
		version:    version,
	}
}

// Status reports database health. With ?deep=true it also probes the
// dictionary API; an unreachable dictionary degrades but does not fail
// the service, since selection falls back to curated entries.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		sqlDB, err := h.db.DB.DB()
		if err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if err := sqlDB.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	if c.Query("deep") == "true" && h.dictionary != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.dictionary.Ping(ctx); err != nil {
			checks["dictionary"] = "error: " + err.Error()
			if status == "healthy" {
				status = "degraded"
			}
		} else {
			checks["dictionary"] = "ok"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// Ping handles GET /api/dictionary/ping
func (h *HealthController) PingDictionary(c *gin.Context) {
	if h.dictionary == nil {
		respondError(c, http.StatusServiceUnavailable, "not_configured", "dictionary client not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.dictionary.Ping(ctx); err != nil {
		logger.WithError(err).Warn("Dictionary API ping failed")
		respondError(c, http.StatusBadGateway, "dictionary_unreachable", err.Error())
		return
	}
	respondSuccess(c, h.dictionary.Name()+" is reachable", gin.H{
		"latency_ms": time.Since(start).Milliseconds(),
	})
}
