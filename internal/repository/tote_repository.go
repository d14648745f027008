package repository

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/models"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Sort columns accepted by FindAllWithCounts. Anything else falls back to
// created_at; the column name is interpolated into the query so the
// whitelist is the only defense.
var allowedToteSorts = map[string]bool{
	"name":       true,
	"location":   true,
	"owner":      true,
	"created_at": true,
	"updated_at": true,
}

type ToteRepository interface {
	Create(tote *models.Tote) error
	FindByID(id string) (*models.Tote, error)
	FindByIDs(ids []string) ([]models.Tote, error)
	FindAllWithCounts(sortBy, order string) ([]dto.ToteWithCount, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
	Count() (int64, error)
	CountItems(id string) (int64, error)
	DistinctLocations() ([]string, error)
	DistinctOwners() ([]string, error)
}

type ToteRepositoryImpl struct {
	db *gorm.DB
}

func NewToteRepository(db *gorm.DB) ToteRepository {
	return &ToteRepositoryImpl{db: db}
}

func (r *ToteRepositoryImpl) Create(tote *models.Tote) error {
	return r.db.Create(tote).Error
}

func (r *ToteRepositoryImpl) FindByID(id string) (*models.Tote, error) {
	var tote models.Tote
	err := r.db.Where("id = ?", id).First(&tote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tote, nil
}

func (r *ToteRepositoryImpl) FindByIDs(ids []string) ([]models.Tote, error) {
	var totes []models.Tote
	err := r.db.Where("id IN ?", ids).Find(&totes).Error
	return totes, err
}

func (r *ToteRepositoryImpl) FindAllWithCounts(sortBy, order string) ([]dto.ToteWithCount, error) {
	if !allowedToteSorts[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}

	var totes []dto.ToteWithCount
	query := fmt.Sprintf(`
		SELECT t.*, COUNT(i.id) AS item_count
		FROM totes t
		LEFT JOIN items i ON i.tote_id = t.id
		GROUP BY t.id
		ORDER BY t.%s %s`, sortBy, direction)
	err := r.db.Raw(query).Scan(&totes).Error
	return totes, err
}

func (r *ToteRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Tote{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ToteRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Tote{}, "id = ?", id).Error
}

func (r *ToteRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tote{}).Count(&count).Error
	return count, err
}

func (r *ToteRepositoryImpl) CountItems(id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Where("tote_id = ?", id).Count(&count).Error
	return count, err
}

func (r *ToteRepositoryImpl) DistinctLocations() ([]string, error) {
	var locations []string
	err := r.db.Model(&models.Tote{}).
		Distinct("location").
		Where("location IS NOT NULL AND location != ''").
		Order("location ASC").
		Pluck("location", &locations).Error
	return locations, err
}

func (r *ToteRepositoryImpl) DistinctOwners() ([]string, error) {
	var owners []string
	err := r.db.Model(&models.Tote{}).
		Distinct("owner").
		Where("owner IS NOT NULL AND owner != ''").
		Order("owner ASC").
		Pluck("owner", &owners).Error
	return owners, err
}
