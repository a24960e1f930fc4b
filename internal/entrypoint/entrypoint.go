package entrypoint

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/config"
	http_controllers "github.com/mrlokans/wordmail/internal/http"
	"github.com/mrlokans/wordmail/internal/scheduler"
	"github.com/mrlokans/wordmail/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM.
func Serve(router *gin.Engine, cfg *config.Config, logger logrus.FieldLogger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server exiting")
	return nil
}

// Run wires every component and serves until interrupted.
func Run(cfg *config.Config, version string, logger logrus.FieldLogger) error {
	logger.Infof("Starting Daily Vocabulary Bot v%s", version)

	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.WithError(err).Error("Error closing database")
		}
	}()

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Warn("Configuration is incomplete; the web UI still starts so settings can be fixed")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:      app.DB,
		History:       app.DB,
		SettingsStore: app.Settings,
		Delivery:      app.Delivery,
		Dictionary:    app.Dictionary,
		RetentionDays: cfg.History.RetentionDays,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		CSRFSecret:    csrfSecret(cfg.UI.CSRFSecret),
		Version:       version,
		Logger:        logger,
	}

	// Task queue
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.ConfigFrom(cfg.Tasks), logger)
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				logger.WithError(err).Error("Error closing task client")
			}
		}()

		taskClient.Register(
			tasks.NewSendDailyWordsQueue(app.Delivery, logger),
			tasks.NewCleanupSentWordsQueue(app.DB, logger),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		routerCfg.TaskClient = taskClient
	}

	// Daily delivery
	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()

	deliveryScheduler := scheduler.NewDailyDeliveryScheduler(app.Delivery, app.Settings, logger)
	if err := deliveryScheduler.Start(schedCtx); err != nil {
		return fmt.Errorf("failed to start delivery scheduler: %w", err)
	}
	routerCfg.Scheduler = deliveryScheduler

	// History cleanup
	retention := cfg.History.RetentionDays
	if retention <= 0 {
		retention = tasks.DefaultHistoryRetentionDays
	}
	cleanupJob := func(ctx context.Context) error {
		if taskClient != nil {
			_, err := taskClient.Add(tasks.CleanupSentWordsTask{RetentionDays: retention}).Save()
			return err
		}
		deleted, err := app.DB.CleanupOldWords(retention, time.Now())
		if err == nil {
			logger.Infof("History cleanup removed %d words", deleted)
		}
		return err
	}
	cleanupScheduler := scheduler.NewHistoryCleanupScheduler(cfg.History.CleanupSchedule, cleanupJob, logger)
	if err := cleanupScheduler.Start(); err != nil {
		logger.WithError(err).Error("History cleanup scheduler not started")
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		deliveryScheduler.Stop()
		cleanupScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	return Serve(router, cfg, logger, onShutdown)
}

// csrfSecret accepts a hex-encoded key or raw bytes. Empty disables CSRF.
func csrfSecret(value string) []byte {
	if value == "" {
		return nil
	}
	if decoded, err := hex.DecodeString(value); err == nil {
		return decoded
	}
	return []byte(value)
}
