package http

import (
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database      *database.Database
	History       HistoryStore
	SettingsStore DeliverySettingsStore
	Delivery      DeliveryService
	Scheduler     DeliveryScheduler

	// Task queue (optional); without it runs and cleanups happen inline
	TaskClient TaskQueue

	// Dictionary API probe (optional)
	Dictionary DictionaryPinger

	// History cleanup retention used by the cleanup endpoint
	RetentionDays int

	// UI paths
	TemplatesPath string
	StaticPath    string

	// CSRF protection for the settings forms; disabled when empty
	CSRFSecret    []byte
	SecureCookies bool

	// Application info
	Version string

	Logger logrus.FieldLogger
}
