package models

type Item struct {
	BaseModel
	ToteID      string                `gorm:"type:varchar(6);index;not null" json:"tote_id"`
	Name        string                `gorm:"type:varchar(255);not null" json:"name"`
	Description *string               `gorm:"type:text" json:"description"`
	Quantity    int                   `gorm:"not null;default:1" json:"quantity"`
	Photos      []ItemPhoto           `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Metadata    []ItemMetadata        `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"metadata,omitempty"`
	Movements   []ItemMovementHistory `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"movement_history,omitempty"`
}
