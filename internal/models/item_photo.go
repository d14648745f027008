package models

import (
	"time"
)

type ItemPhoto struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemID        uint      `gorm:"index;not null" json:"item_id"`
	Filename      string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalPath  string    `gorm:"type:text;not null" json:"original_path"`
	ThumbnailPath string    `gorm:"type:text;not null" json:"thumbnail_path"`
	FileSize      int64     `gorm:"not null" json:"file_size"`
	MimeType      string    `gorm:"type:varchar(100);not null" json:"mime_type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
