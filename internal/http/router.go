package http

import (
	"html/template"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// requestLogger logs each request through logrus instead of gin's default writer.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"status":   c.Writer.Status(),
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		}).Debug("request")
	}
}

// templateFuncs are available to every HTML template.
var templateFuncs = template.FuncMap{
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"formatTime": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "never"
		}
		return t.Local().Format("Jan 2, 2006 15:04")
	},
	"formatDate": func(t time.Time) string {
		return t.Local().Format("Jan 2, 2006")
	},
}

// LoadTemplates parses every *.html file in dir.
func LoadTemplates(dir string) (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseGlob(dir + "/*.html")
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger != nil {
		logger = cfg.Logger.WithField("component", "http")
	}

	router := gin.New()
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.SetHTMLTemplate(template.Must(LoadTemplates(cfg.TemplatesPath)))
	router.Static("/static", cfg.StaticPath)

	health := NewHealthController(cfg.Database, cfg.Dictionary, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/api/dictionary/ping", health.PingDictionary)

	// History endpoints
	historyController := NewHistoryController(cfg.History, cfg.TaskClient, cfg.RetentionDays)
	router.GET("/api/history", historyController.ListWords)
	router.GET("/api/history/info", historyController.Info)
	router.POST("/api/history/cleanup", historyController.Cleanup)
	router.DELETE("/api/history", historyController.Reset)
	router.GET("/history", historyController.HistoryPage)

	// Delivery endpoints
	deliveryController := NewDeliveryController(cfg.Delivery, cfg.Scheduler, cfg.SettingsStore, cfg.TaskClient)
	router.GET("/api/preview", deliveryController.Preview)
	router.GET("/api/delivery/status", deliveryController.Status)
	router.POST("/api/delivery/run", deliveryController.RunNow)
	router.POST("/api/delivery/test", deliveryController.SendTest)
	router.POST("/api/delivery/test-connection", deliveryController.TestConnection)

	// Task management endpoints
	taskWorkers := 0
	if cfg.TaskClient != nil {
		taskWorkers = cfg.TaskClient.Workers()
		tasksController := NewTasksController(cfg.TaskClient, cfg.RetentionDays)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	// Settings routes
	settingsController := NewSettingsController(cfg.SettingsStore, cfg.Scheduler, taskWorkers)
	router.GET("/settings", settingsController.SettingsPage)
	router.POST("/settings/delivery/save", settingsController.UpdateSettings)
	router.POST("/settings/delivery/reset", settingsController.ResetSettings)

	// UI routes
	uiController := NewUIController(cfg.History, cfg.SettingsStore, cfg.Scheduler, cfg.Version)
	router.GET("/", uiController.Dashboard)

	return router
}
