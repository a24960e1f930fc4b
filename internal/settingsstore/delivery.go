package settingsstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/entities"
)

// ErrInvalidSettings wraps validation failures from UpdateDeliverySettings.
var ErrInvalidSettings = errors.New("invalid delivery settings")

// Delivery statuses
const (
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusRunning  = "running"
	StatusNoWords  = "no_words"
	StatusDegraded = "sent_not_recorded"
)

// DeliverySettings is the effective configuration of the daily email.
type DeliverySettings struct {
	Enabled        bool   `json:"enabled"`
	RecipientEmail string `json:"recipient_email"`
	WordsPerDay    int    `json:"words_per_day"`
	ScheduleTime   string `json:"schedule_time"`
	SubjectPrefix  string `json:"subject_prefix"`
	BotName        string `json:"bot_name"`
}

// DeliverySettingsInfo includes source information for each field
type DeliverySettingsInfo struct {
	Enabled       bool   `json:"enabled"`
	EnabledSource string `json:"enabled_source"`

	RecipientEmail       string `json:"recipient_email"`
	RecipientEmailSource string `json:"recipient_email_source"`

	WordsPerDay       int    `json:"words_per_day"`
	WordsPerDaySource string `json:"words_per_day_source"`

	ScheduleTime       string `json:"schedule_time"`
	ScheduleTimeSource string `json:"schedule_time_source"`

	SubjectPrefix       string `json:"subject_prefix"`
	SubjectPrefixSource string `json:"subject_prefix_source"`

	BotName       string `json:"bot_name"`
	BotNameSource string `json:"bot_name_source"`

	EmailService string `json:"email_service"`
}

// DeliverySettingsUpdate carries the fields a user changed; nil fields are left alone.
type DeliverySettingsUpdate struct {
	Enabled        *bool   `json:"enabled" form:"enabled"`
	RecipientEmail *string `json:"recipient_email" form:"recipient_email" validate:"omitempty,email"`
	WordsPerDay    *int    `json:"words_per_day" form:"words_per_day" validate:"omitempty,min=1,max=10"`
	ScheduleTime   *string `json:"schedule_time" form:"schedule_time"`
	SubjectPrefix  *string `json:"subject_prefix" form:"subject_prefix" validate:"omitempty,max=20"`
	BotName        *string `json:"bot_name" form:"bot_name" validate:"omitempty,max=100"`
}

// DeliveryStatus represents the outcome of the last delivery run
type DeliveryStatus struct {
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	Status    string     `json:"status,omitempty"`
	Message   string     `json:"message,omitempty"`
	WordsSent int        `json:"words_sent,omitempty"`
}

// GetDeliveryEnabled returns whether scheduled delivery is on (database > config)
func (s *SettingsStore) GetDeliveryEnabled() bool {
	if v, ok := s.override(entities.SettingKeyDeliveryEnabled); ok {
		return v == "true" || v == "1"
	}
	return s.cfg.Delivery.Enabled
}

func (s *SettingsStore) SetDeliveryEnabled(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeyDeliveryEnabled, strconv.FormatBool(enabled))
}

func (s *SettingsStore) GetRecipientEmail() string {
	if v, ok := s.override(entities.SettingKeyDeliveryRecipient); ok {
		return v
	}
	return s.cfg.Email.RecipientEmail
}

// GetWordsPerDay ignores stored values outside 1..10.
func (s *SettingsStore) GetWordsPerDay() int {
	if v, ok := s.override(entities.SettingKeyDeliveryWordsPerDay); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 10 {
			return n
		}
	}
	return s.cfg.Delivery.WordsPerDay
}

// GetScheduleTime returns the HH:MM delivery time, falling back to the
// default when neither the database nor the configuration holds a valid one.
func (s *SettingsStore) GetScheduleTime() string {
	if v, ok := s.override(entities.SettingKeyDeliveryScheduleTime); ok {
		if _, _, err := config.ParseScheduleTime(v); err == nil {
			return v
		}
	}
	if _, _, err := config.ParseScheduleTime(s.cfg.Delivery.ScheduleTime); err == nil {
		return s.cfg.Delivery.ScheduleTime
	}
	return config.DefaultScheduleTime
}

func (s *SettingsStore) GetSubjectPrefix() string {
	if v, ok := s.override(entities.SettingKeyDeliverySubjectPrefix); ok {
		return v
	}
	return s.cfg.Bot.SubjectPrefix
}

func (s *SettingsStore) GetBotName() string {
	if v, ok := s.override(entities.SettingKeyDeliveryBotName); ok {
		return v
	}
	return s.cfg.Bot.Name
}

// GetDeliverySettings returns the effective configuration
func (s *SettingsStore) GetDeliverySettings() DeliverySettings {
	return DeliverySettings{
		Enabled:        s.GetDeliveryEnabled(),
		RecipientEmail: s.GetRecipientEmail(),
		WordsPerDay:    s.GetWordsPerDay(),
		ScheduleTime:   s.GetScheduleTime(),
		SubjectPrefix:  s.GetSubjectPrefix(),
		BotName:        s.GetBotName(),
	}
}

// GetDeliverySettingsInfo returns the configuration with source information
func (s *SettingsStore) GetDeliverySettingsInfo() DeliverySettingsInfo {
	return DeliverySettingsInfo{
		Enabled:              s.GetDeliveryEnabled(),
		EnabledSource:        s.source(entities.SettingKeyDeliveryEnabled),
		RecipientEmail:       s.GetRecipientEmail(),
		RecipientEmailSource: s.source(entities.SettingKeyDeliveryRecipient),
		WordsPerDay:          s.GetWordsPerDay(),
		WordsPerDaySource:    s.source(entities.SettingKeyDeliveryWordsPerDay),
		ScheduleTime:         s.GetScheduleTime(),
		ScheduleTimeSource:   s.source(entities.SettingKeyDeliveryScheduleTime),
		SubjectPrefix:        s.GetSubjectPrefix(),
		SubjectPrefixSource:  s.source(entities.SettingKeyDeliverySubjectPrefix),
		BotName:              s.GetBotName(),
		BotNameSource:        s.source(entities.SettingKeyDeliveryBotName),
		EmailService:         s.cfg.EmailService(),
	}
}

// UpdateDeliverySettings validates and stores the changed fields as database overrides.
func (s *SettingsStore) UpdateDeliverySettings(update DeliverySettingsUpdate) error {
	update.RecipientEmail = trimmed(update.RecipientEmail)
	update.ScheduleTime = trimmed(update.ScheduleTime)
	update.BotName = trimmed(update.BotName)
	if err := validateUpdate(update); err != nil {
		return err
	}

	values := map[string]string{}
	if update.Enabled != nil {
		values[entities.SettingKeyDeliveryEnabled] = strconv.FormatBool(*update.Enabled)
	}
	if update.RecipientEmail != nil {
		values[entities.SettingKeyDeliveryRecipient] = *update.RecipientEmail
	}
	if update.WordsPerDay != nil {
		values[entities.SettingKeyDeliveryWordsPerDay] = strconv.Itoa(*update.WordsPerDay)
	}
	if update.ScheduleTime != nil {
		values[entities.SettingKeyDeliveryScheduleTime] = *update.ScheduleTime
	}
	if update.SubjectPrefix != nil {
		values[entities.SettingKeyDeliverySubjectPrefix] = *update.SubjectPrefix
	}
	if update.BotName != nil {
		values[entities.SettingKeyDeliveryBotName] = *update.BotName
	}
	if len(values) == 0 {
		return nil
	}
	return s.db.SetSettings(values)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func validateUpdate(update DeliverySettingsUpdate) error {
	if err := validator.New().Struct(update); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("%w: %s failed '%s' check", ErrInvalidSettings, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if update.ScheduleTime != nil {
		if _, _, err := config.ParseScheduleTime(*update.ScheduleTime); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	return nil
}

// ClearDeliverySettings clears all database overrides, reverting to the configuration
func (s *SettingsStore) ClearDeliverySettings() error {
	return s.clear(
		entities.SettingKeyDeliveryEnabled,
		entities.SettingKeyDeliveryRecipient,
		entities.SettingKeyDeliveryWordsPerDay,
		entities.SettingKeyDeliveryScheduleTime,
		entities.SettingKeyDeliverySubjectPrefix,
		entities.SettingKeyDeliveryBotName,
	)
}

// GetDeliveryStatus returns the last delivery outcome
func (s *SettingsStore) GetDeliveryStatus() DeliveryStatus {
	status := DeliveryStatus{}

	if v, ok := s.override(entities.SettingKeyDeliveryLastAt); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			status.LastRunAt = &ts
		}
	}
	status.Status, _ = s.override(entities.SettingKeyDeliveryLastStatus)
	status.Message, _ = s.override(entities.SettingKeyDeliveryLastMessage)
	if v, ok := s.override(entities.SettingKeyDeliveryWordsSent); ok {
		if n, err := strconv.Atoi(v); err == nil {
			status.WordsSent = n
		}
	}
	return status
}

// SetDeliveryStatus records the outcome of a delivery run
func (s *SettingsStore) SetDeliveryStatus(status, message string, wordsSent int) error {
	return s.db.SetSettings(map[string]string{
		entities.SettingKeyDeliveryLastAt:      time.Now().UTC().Format(time.RFC3339),
		entities.SettingKeyDeliveryLastStatus:  status,
		entities.SettingKeyDeliveryLastMessage: message,
		entities.SettingKeyDeliveryWordsSent:   strconv.Itoa(wordsSent),
	})
}
