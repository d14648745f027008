package repository

import (
	"ToteSonar/internal/models"
	"errors"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	GenericRepository[models.ItemPhoto]
	FindByItemID(itemID uint) ([]models.ItemPhoto, error)
	CountByItemID(itemID uint) (int64, error)
}

type PhotoRepositoryImpl struct {
	GenericRepository[models.ItemPhoto]
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &PhotoRepositoryImpl{
		GenericRepository: NewGenericRepository[models.ItemPhoto](db),
		db:                db,
	}
}

func (r *PhotoRepositoryImpl) FindByID(id uint) (*models.ItemPhoto, error) {
	var photo models.ItemPhoto
	err := r.db.First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) FindByItemID(itemID uint) ([]models.ItemPhoto, error) {
	var photos []models.ItemPhoto
	err := r.db.Where("item_id = ?", itemID).Order("created_at DESC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) CountByItemID(itemID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ItemPhoto{}).Where("item_id = ?", itemID).Count(&count).Error
	return count, err
}
