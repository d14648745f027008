package models

import (
	"time"
)

// MetadataKey is the append-only registry of keys ever used, kept for
// autocomplete suggestions. Entries are never pruned when the metadata
// referencing them is deleted.
type MetadataKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	KeyName   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"key_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
