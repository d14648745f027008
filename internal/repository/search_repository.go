package repository

import (
	"ToteSonar/internal/dto"
	"strings"

	"gorm.io/gorm"
)

type SearchRepository interface {
	Search(query dto.SearchQuery) ([]dto.ItemWithTote, error)
}

type SearchRepositoryImpl struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &SearchRepositoryImpl{db: db}
}

const searchLimit = 100

// Search matches items by name, description and metadata values, with
// optional tote-location, tote-owner and metadata-key filters. All filters
// are ANDed together; the free-text query ORs across its three targets.
func (r *SearchRepositoryImpl) Search(query dto.SearchQuery) ([]dto.ItemWithTote, error) {
	var conditions []string
	var args []interface{}

	if q := strings.TrimSpace(query.Query); q != "" {
		term := "%" + q + "%"
		conditions = append(conditions, `(i.name LIKE ? OR i.description LIKE ? OR i.id IN (
			SELECT im.item_id FROM item_metadata im WHERE im.value LIKE ?))`)
		args = append(args, term, term, term)
	}
	if location := strings.TrimSpace(query.Location); location != "" {
		conditions = append(conditions, "t.location LIKE ?")
		args = append(args, "%"+location+"%")
	}
	if owner := strings.TrimSpace(query.Owner); owner != "" {
		conditions = append(conditions, "t.owner LIKE ?")
		args = append(args, "%"+owner+"%")
	}
	if key := strings.TrimSpace(query.MetadataKey); key != "" {
		conditions = append(conditions, `i.id IN (
			SELECT im.item_id FROM item_metadata im WHERE im.key LIKE ?)`)
		args = append(args, "%"+key+"%")
	}

	sql := `
		SELECT i.*, t.name AS tote_name, t.location AS tote_location
		FROM items i
		JOIN totes t ON i.tote_id = t.id`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY i.updated_at DESC LIMIT ?"
	args = append(args, searchLimit)

	var items []dto.ItemWithTote
	err := r.db.Raw(sql, args...).Scan(&items).Error
	return items, err
}
