package models

import (
	"time"
)

// ItemMovementHistory is an append-only log of moves between totes.
// FromToteID is null when the origin is unknown; rows disappear only
// through cascading item/tote deletion.
type ItemMovementHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ItemID     uint      `gorm:"index;not null" json:"item_id"`
	FromToteID *string   `gorm:"type:varchar(6)" json:"from_tote_id"`
	ToToteID   string    `gorm:"type:varchar(6);not null" json:"to_tote_id"`
	MovedAt    time.Time `gorm:"autoCreateTime" json:"moved_at"`

	FromTote *Tote `gorm:"foreignKey:FromToteID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	ToTote   *Tote `gorm:"foreignKey:ToToteID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ItemMovementHistory) TableName() string {
	return "item_movement_history"
}
