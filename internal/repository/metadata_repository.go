package repository

import (
	"ToteSonar/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetadataRepository interface {
	GenericRepository[models.ItemMetadata]
	FindByItemID(itemID uint) ([]models.ItemMetadata, error)
	FindByIDForItem(id, itemID uint) (*models.ItemMetadata, error)
	DeleteForItem(id, itemID uint) error
	RegisterKey(key string) error
	ListKeys() ([]string, error)
}

type MetadataRepositoryImpl struct {
	GenericRepository[models.ItemMetadata]
	db *gorm.DB
}

func NewMetadataRepository(db *gorm.DB) MetadataRepository {
	return &MetadataRepositoryImpl{
		GenericRepository: NewGenericRepository[models.ItemMetadata](db),
		db:                db,
	}
}

func (r *MetadataRepositoryImpl) FindByItemID(itemID uint) ([]models.ItemMetadata, error) {
	var metadata []models.ItemMetadata
	err := r.db.Where("item_id = ?", itemID).Order("created_at DESC").Find(&metadata).Error
	return metadata, err
}

func (r *MetadataRepositoryImpl) FindByIDForItem(id, itemID uint) (*models.ItemMetadata, error) {
	var entry models.ItemMetadata
	err := r.db.Where("id = ? AND item_id = ?", id, itemID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *MetadataRepositoryImpl) DeleteForItem(id, itemID uint) error {
	return r.db.Where("id = ? AND item_id = ?", id, itemID).Delete(&models.ItemMetadata{}).Error
}

// RegisterKey upserts into the metadata_keys registry. INSERT OR IGNORE
// semantics: an existing key is left untouched.
func (r *MetadataRepositoryImpl) RegisterKey(key string) error {
	entry := models.MetadataKey{KeyName: key}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

func (r *MetadataRepositoryImpl) ListKeys() ([]string, error) {
	var keys []string
	err := r.db.Model(&models.MetadataKey{}).
		Order("key_name ASC").
		Pluck("key_name", &keys).Error
	return keys, err
}
