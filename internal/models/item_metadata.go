package models

// ItemMetadata is a free-form key/value pair attached to an item.
// Duplicate keys on the same item are allowed.
type ItemMetadata struct {
	BaseModel
	ItemID uint   `gorm:"index;not null" json:"item_id"`
	Key    string `gorm:"type:varchar(255);not null" json:"key"`
	Value  string `gorm:"type:text;not null" json:"value"`
}

func (ItemMetadata) TableName() string {
	return "item_metadata"
}
