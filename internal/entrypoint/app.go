package entrypoint

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/database"
	"github.com/mrlokans/wordmail/internal/dictionary"
	"github.com/mrlokans/wordmail/internal/emailer"
	"github.com/mrlokans/wordmail/internal/selector"
	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

// App holds the components shared by the server and the one-shot commands.
type App struct {
	Config     *config.Config
	Logger     logrus.FieldLogger
	DB         *database.Database
	Settings   *settingsstore.SettingsStore
	Dictionary *dictionary.FreeDictionaryClient
	Selector   *selector.Selector
	Sender     emailer.Sender // nil when no email service is configured
	Delivery   *services.DeliveryService
}

// NewApp opens the database and wires the delivery pipeline.
func NewApp(cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	policy, err := selector.ParsePolicy(cfg.Dictionary.Policy)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	dictCfg := dictionary.DefaultFreeDictionaryConfig()
	dictCfg.BaseURL = cfg.Dictionary.APIURL
	dictCfg.Timeout = cfg.Dictionary.Timeout
	dictCfg.MaxRetries = cfg.Dictionary.MaxRetries
	dictClient := dictionary.NewFreeDictionaryClient(dictCfg)

	opts := []selector.Option{
		selector.WithPolicy(policy),
		selector.WithLogger(logger.WithField("component", "selector")),
	}
	if cfg.Dictionary.Seed != 0 {
		opts = append(opts, selector.WithSeed(cfg.Dictionary.Seed))
	}
	wordSelector := selector.New(dictClient, opts...)

	sender, err := emailer.NewSender(cfg)
	if err != nil {
		if !errors.Is(err, emailer.ErrNotConfigured) {
			db.Close()
			return nil, err
		}
		logger.Warn("No email service configured; deliveries will fail until GMAIL_USER or SENDGRID_API_KEY is set")
	}

	store := settingsstore.New(db, cfg)
	delivery := services.NewDeliveryService(wordSelector, db, store, sender, logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Settings:   store,
		Dictionary: dictClient,
		Selector:   wordSelector,
		Sender:     sender,
		Delivery:   delivery,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
