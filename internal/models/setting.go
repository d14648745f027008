package models

import (
	"time"
)

// Setting rows have upsert-on-write semantics keyed by Key.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	SettingServerHostname     = "server_hostname"
	SettingMaxUploadSize      = "max_upload_size"
	SettingDefaultToteFields  = "default_tote_fields"
	SettingDefaultMetaKeys    = "default_metadata_keys"
	SettingTheme              = "theme"
	DefaultServerHostname     = "http://localhost:3000"
	DefaultMaxUploadSizeBytes = 5242880
)
