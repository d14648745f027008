package dto

import (
	"ToteSonar/internal/models"
)

type ItemWithTote struct {
	models.Item
	ToteName     string `json:"tote_name"`
	ToteLocation string `json:"tote_location"`
}

type MovementWithNames struct {
	models.ItemMovementHistory
	FromToteName *string `json:"from_tote_name"`
	ToToteName   string  `json:"to_tote_name"`
}

type ItemDetail struct {
	ItemWithTote
	Metadata        []models.ItemMetadata `json:"metadata"`
	Photos          []models.ItemPhoto    `json:"photos"`
	MovementHistory []MovementWithNames   `json:"movement_history"`
}

type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
}
