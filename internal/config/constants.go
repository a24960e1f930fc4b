package config

// Default paths and endpoints
const (
	// DefaultDatabasePath is the default path for the sent-word history database
	DefaultDatabasePath = "./vocabulary.db"

	// DefaultLogFile is the default path of the rotated log file
	DefaultLogFile = "vocabulary_bot.log"

	// DefaultDictionaryAPIURL is the Free Dictionary API entries endpoint
	DefaultDictionaryAPIURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	// DefaultScheduleTime is used when SCHEDULE_TIME is missing or malformed
	DefaultScheduleTime = "09:00"

	DefaultSendGridFrom = "noreply@vocabularybot.com"
)

// Email service identifiers returned by Config.EmailService
const (
	EmailServiceSendGrid = "sendgrid"
	EmailServiceGmail    = "gmail"
	EmailServiceNone     = "none"
)

// Definition policies understood by the word selector
const (
	DefinitionPolicyCurated  = "curated"
	DefinitionPolicyExternal = "external"
)
