package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid is returned by Validate when the configuration cannot be used to deliver email.
var ErrInvalid = errors.New("invalid configuration")

type (
	Config struct {
		HTTP
		Global
		Database
		Email
		Bot
		Delivery
		Dictionary
		Logging
		UI
		Tasks
		History
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Email struct {
		RecipientEmail   string `validate:"required,email"`
		GmailUser        string `validate:"omitempty,email"`
		GmailAppPassword string
		SendGridAPIKey   string
		SendGridFrom     string `validate:"omitempty,email"`
		SMTPHost         string `validate:"required"`
		SMTPPort         int    `validate:"min=1,max=65535"`
	}
	Bot struct {
		Name          string
		SubjectPrefix string
	}
	Delivery struct {
		Enabled      bool
		WordsPerDay  int    `validate:"min=1,max=10"`
		ScheduleTime string // HH:MM, local time
	}
	Dictionary struct {
		APIURL     string        `validate:"required,url"`
		Timeout    time.Duration `validate:"gt=0"`
		MaxRetries int           `validate:"min=0"`
		Policy     string        `validate:"oneof=curated external"`
		Seed       int64         // 0 means seed from the clock
	}
	Logging struct {
		Level      string
		File       string // Empty disables file output
		MaxSizeMB  int
		MaxBackups int
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
		CSRFSecret    string // Enables CSRF protection on the settings form when set
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	History struct {
		RetentionDays   int    // Sent words older than this are pruned by the cleanup task
		CleanupSchedule string // Cron format: "30 3 * * 0" = Sundays at 03:30
	}
)

// NewConfig builds the configuration from the environment. When envFile is
// non-empty and exists it is read first as a dotenv file; real environment
// variables still take precedence over its values.
func NewConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	v.SetDefault("port", 5000)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("csrf_secret", "")

	// Email defaults
	v.SetDefault("recipient_email", "")
	v.SetDefault("gmail_user", "")
	v.SetDefault("gmail_app_password", "")
	v.SetDefault("sendgrid_api_key", "")
	v.SetDefault("sendgrid_from", DefaultSendGridFrom)
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("bot_name", "Daily Vocabulary Bot")
	v.SetDefault("email_subject_prefix", "📚")

	// Delivery defaults
	v.SetDefault("delivery_enabled", true)
	v.SetDefault("words_per_day", 2)
	v.SetDefault("schedule_time", DefaultScheduleTime)

	// Dictionary defaults
	v.SetDefault("dictionary_api_url", DefaultDictionaryAPIURL)
	v.SetDefault("api_timeout", "10s")
	v.SetDefault("api_max_retries", 2)
	v.SetDefault("dictionary_policy", DefinitionPolicyCurated)
	v.SetDefault("selector_seed", 0)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_max_size_mb", 5)
	v.SetDefault("log_max_backups", 3)

	// History defaults
	v.SetDefault("history_retention_days", 365)
	v.SetDefault("history_cleanup_schedule", "30 3 * * 0")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Email: Email{
			RecipientEmail:   strings.TrimSpace(v.GetString("RECIPIENT_EMAIL")),
			GmailUser:        strings.TrimSpace(v.GetString("GMAIL_USER")),
			GmailAppPassword: v.GetString("GMAIL_APP_PASSWORD"),
			SendGridAPIKey:   v.GetString("SENDGRID_API_KEY"),
			SendGridFrom:     v.GetString("SENDGRID_FROM"),
			SMTPHost:         v.GetString("SMTP_HOST"),
			SMTPPort:         v.GetInt("SMTP_PORT"),
		},
		Bot: Bot{
			Name:          v.GetString("BOT_NAME"),
			SubjectPrefix: v.GetString("EMAIL_SUBJECT_PREFIX"),
		},
		Delivery: Delivery{
			Enabled:      v.GetBool("DELIVERY_ENABLED"),
			WordsPerDay:  v.GetInt("WORDS_PER_DAY"),
			ScheduleTime: v.GetString("SCHEDULE_TIME"),
		},
		Dictionary: Dictionary{
			APIURL:     strings.TrimRight(v.GetString("DICTIONARY_API_URL"), "/"),
			Timeout:    parseTimeout(v.GetString("API_TIMEOUT")),
			MaxRetries: v.GetInt("API_MAX_RETRIES"),
			Policy:     strings.ToLower(v.GetString("DICTIONARY_POLICY")),
			Seed:       v.GetInt64("SELECTOR_SEED"),
		},
		Logging: Logging{
			Level:      v.GetString("LOG_LEVEL"),
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		History: History{
			RetentionDays:   v.GetInt("HISTORY_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("HISTORY_CLEANUP_SCHEDULE"),
		},
	}, nil
}

// parseTimeout accepts either a Go duration ("10s") or a bare number of seconds ("10").
func parseTimeout(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return 10 * time.Second
}

// EmailService reports which delivery backend is configured.
// SendGrid wins when both are present.
func (c *Config) EmailService() string {
	if c.Email.SendGridAPIKey != "" {
		return EmailServiceSendGrid
	}
	if c.Email.GmailUser != "" && c.Email.GmailAppPassword != "" {
		return EmailServiceGmail
	}
	return EmailServiceNone
}

// Validate checks everything needed to send the daily email.
func (c *Config) Validate() error {
	var problems []string

	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				problems = append(problems, fmt.Sprintf("%s failed '%s' check", fe.Namespace(), fe.Tag()))
			}
		} else {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if c.Email.SendGridAPIKey == "" && c.Email.GmailUser == "" {
		problems = append(problems, "either GMAIL_USER or SENDGRID_API_KEY must be set")
	}
	if c.Email.GmailUser != "" && c.Email.GmailAppPassword == "" {
		problems = append(problems, "GMAIL_APP_PASSWORD is required when using Gmail")
	}
	if _, _, err := ParseScheduleTime(c.Delivery.ScheduleTime); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ParseScheduleTime parses an "HH:MM" time of day.
func ParseScheduleTime(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: expected HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: hour must be 0-23", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: minute must be 00-59", value)
	}
	return hour, minute, nil
}

// SummaryEntry is one line of the printable configuration summary.
type SummaryEntry struct {
	Name  string
	Value string
}

// Summary returns a display-safe view of the configuration with secrets masked.
func (c *Config) Summary() []SummaryEntry {
	return []SummaryEntry{
		{Name: "Recipient email", Value: c.Email.RecipientEmail},
		{Name: "Email service", Value: c.EmailService()},
		{Name: "Gmail user", Value: c.Email.GmailUser},
		{Name: "Gmail app password", Value: MaskSecret(c.Email.GmailAppPassword)},
		{Name: "SendGrid API key", Value: MaskSecret(c.Email.SendGridAPIKey)},
		{Name: "Bot name", Value: c.Bot.Name},
		{Name: "Subject prefix", Value: c.Bot.SubjectPrefix},
		{Name: "Words per day", Value: strconv.Itoa(c.Delivery.WordsPerDay)},
		{Name: "Schedule time", Value: c.Delivery.ScheduleTime},
		{Name: "Delivery enabled", Value: strconv.FormatBool(c.Delivery.Enabled)},
		{Name: "Database path", Value: c.Database.Path},
		{Name: "Dictionary API", Value: c.Dictionary.APIURL},
		{Name: "Definition policy", Value: c.Dictionary.Policy},
		{Name: "Log level", Value: c.Logging.Level},
		{Name: "Log file", Value: c.Logging.File},
	}
}

// MaskSecret returns a masked version of a secret for display.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****" + secret[len(secret)-4:]
}
