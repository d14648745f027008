package dto

import (
	"ToteSonar/internal/models"
)

type ToteWithCount struct {
	models.Tote
	ItemCount int `json:"item_count"`
}

type ToteDetail struct {
	models.Tote
	Items     []models.Item `json:"items"`
	ItemCount int           `json:"item_count"`
}

// ToteUpdate carries the optional fields of a partial tote update. A nil
// pointer means "leave the column untouched".
type ToteUpdate struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Size     *string `json:"size"`
	Color    *string `json:"color"`
	Owner    *string `json:"owner"`
}
