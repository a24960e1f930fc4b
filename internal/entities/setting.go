package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Delivery overrides editable from the web UI
	SettingKeyDeliveryEnabled       = "delivery_enabled"
	SettingKeyDeliveryRecipient     = "delivery_recipient_email"
	SettingKeyDeliveryWordsPerDay   = "delivery_words_per_day"
	SettingKeyDeliveryScheduleTime  = "delivery_schedule_time"
	SettingKeyDeliverySubjectPrefix = "delivery_subject_prefix"
	SettingKeyDeliveryBotName       = "delivery_bot_name"

	// Last delivery outcome
	SettingKeyDeliveryLastAt      = "delivery_last_at"
	SettingKeyDeliveryLastStatus  = "delivery_last_status"
	SettingKeyDeliveryLastMessage = "delivery_last_message"
	SettingKeyDeliveryWordsSent   = "delivery_words_sent"
)
