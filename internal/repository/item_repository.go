package repository

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/models"
	"errors"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindWithTote(id uint) (*dto.ItemWithTote, error)
	FindByToteID(toteID string) ([]models.Item, error)
	Move(item *models.Item, targetToteID string) error
	Duplicate(item *models.Item, targetToteID string) (*models.Item, error)
	MovementHistory(itemID uint) ([]dto.MovementWithNames, error)
	Recent(limit int) ([]dto.ItemWithTote, error)
	Count() (int64, error)
}

type ItemRepositoryImpl struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) FindWithTote(id uint) (*dto.ItemWithTote, error) {
	var item dto.ItemWithTote
	err := r.db.Raw(`
		SELECT i.*, t.name AS tote_name, t.location AS tote_location
		FROM items i
		JOIN totes t ON i.tote_id = t.id
		WHERE i.id = ?`, id).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) FindByToteID(toteID string) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("tote_id = ?", toteID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// Move reassigns the item to targetToteID and records a movement-history
// row. Both writes happen in one transaction or not at all.
func (r *ItemRepositoryImpl) Move(item *models.Item, targetToteID string) error {
	fromToteID := item.ToteID
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Update("tote_id", targetToteID).Error; err != nil {
			return err
		}
		history := models.ItemMovementHistory{
			ItemID:     item.ID,
			FromToteID: &fromToteID,
			ToToteID:   targetToteID,
		}
		return tx.Create(&history).Error
	})
}

// Duplicate inserts a copy of the item (name suffixed " (Copy)") into
// targetToteID together with copies of its metadata rows. Photos are
// never copied.
func (r *ItemRepositoryImpl) Duplicate(item *models.Item, targetToteID string) (*models.Item, error) {
	duplicate := models.Item{
		ToteID:      targetToteID,
		Name:        item.Name + " (Copy)",
		Description: item.Description,
		Quantity:    item.Quantity,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&duplicate).Error; err != nil {
			return err
		}
		var metadata []models.ItemMetadata
		if err := tx.Where("item_id = ?", item.ID).Find(&metadata).Error; err != nil {
			return err
		}
		for i := range metadata {
			row := models.ItemMetadata{
				ItemID: duplicate.ID,
				Key:    metadata[i].Key,
				Value:  metadata[i].Value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &duplicate, nil
}

func (r *ItemRepositoryImpl) MovementHistory(itemID uint) ([]dto.MovementWithNames, error) {
	var history []dto.MovementWithNames
	err := r.db.Raw(`
		SELECT imh.*, ft.name AS from_tote_name, tt.name AS to_tote_name
		FROM item_movement_history imh
		LEFT JOIN totes ft ON imh.from_tote_id = ft.id
		JOIN totes tt ON imh.to_tote_id = tt.id
		WHERE imh.item_id = ?
		ORDER BY imh.moved_at DESC`, itemID).Scan(&history).Error
	return history, err
}

func (r *ItemRepositoryImpl) Recent(limit int) ([]dto.ItemWithTote, error) {
	var items []dto.ItemWithTote
	err := r.db.Raw(`
		SELECT i.*, t.name AS tote_name, t.location AS tote_location
		FROM items i
		JOIN totes t ON t.id = i.tote_id
		ORDER BY i.created_at DESC
		LIMIT ?`, limit).Scan(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Count(&count).Error
	return count, err
}
