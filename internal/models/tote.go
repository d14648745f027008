package models

import (
	"time"
)

// Tote IDs are 6-character alphanumeric strings generated at creation
// time, not auto-increment integers, so Tote does not embed BaseModel.
type Tote struct {
	ID        string    `gorm:"primaryKey;type:varchar(6)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Location  string    `gorm:"type:varchar(255);not null" json:"location"`
	Size      *string   `gorm:"type:varchar(255)" json:"size"`
	Color     *string   `gorm:"type:varchar(255)" json:"color"`
	Owner     *string   `gorm:"type:varchar(255)" json:"owner"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Items     []Item    `gorm:"foreignKey:ToteID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
