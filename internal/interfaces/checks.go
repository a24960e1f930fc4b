package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordmail/internal/database"
	"github.com/mrlokans/wordmail/internal/dictionary"
	"github.com/mrlokans/wordmail/internal/emailer"
	"github.com/mrlokans/wordmail/internal/http"
	"github.com/mrlokans/wordmail/internal/scheduler"
	"github.com/mrlokans/wordmail/internal/selector"
	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
	"github.com/mrlokans/wordmail/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Sent-word history
var _ services.HistoryStore = (*database.Database)(nil)
var _ http.HistoryStore = (*database.Database)(nil)
var _ tasks.HistoryCleaner = (*database.Database)(nil)

// Delivery settings
var _ services.DeliverySettingsStore = (*settingsstore.SettingsStore)(nil)
var _ http.DeliverySettingsStore = (*settingsstore.SettingsStore)(nil)
var _ scheduler.DeliverySettingsReader = (*settingsstore.SettingsStore)(nil)

// =============================================================================
// External Services
// =============================================================================

// DictionaryClient implementations
var _ dictionary.Client = (*dictionary.FreeDictionaryClient)(nil)
var _ http.DictionaryPinger = (*dictionary.FreeDictionaryClient)(nil)

// Email backends
var _ emailer.Sender = (*emailer.SMTPSender)(nil)
var _ emailer.Sender = (*emailer.SendGridSender)(nil)

// =============================================================================
// Delivery Pipeline
// =============================================================================

var _ services.WordSelector = (*selector.Selector)(nil)
var _ http.DeliveryService = (*services.DeliveryService)(nil)
var _ scheduler.DeliveryRunner = (*services.DeliveryService)(nil)
var _ tasks.DeliveryRunner = (*services.DeliveryService)(nil)

// =============================================================================
// Scheduling
// =============================================================================

var _ http.DeliveryScheduler = (*scheduler.DailyDeliveryScheduler)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
