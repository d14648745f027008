package services

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/dto"
	"ToteSonar/internal/helpers"
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

type ItemService interface {
	CreateItem(toteID, name string, description *string, quantity *int) (*models.Item, error)
	GetItemsByTote(toteID string) ([]models.Item, error)
	GetItemByID(id uint) (*models.Item, error)
	GetItemDetail(id uint) (*dto.ItemDetail, error)
	UpdateItem(id uint, update dto.ItemUpdate) (*dto.ItemWithTote, error)
	DeleteItem(id uint) (*models.Item, error)
	MoveItem(id uint, targetToteID string) (*dto.ItemWithTote, *models.Tote, error)
	DuplicateItem(id uint, targetToteID string) (*dto.ItemWithTote, error)
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	toteRepo     repository.ToteRepository
	photoRepo    repository.PhotoRepository
	metadataRepo repository.MetadataRepository
	logService   LogService
	dataDir      string
}

func NewItemService(
	itemRepo repository.ItemRepository,
	toteRepo repository.ToteRepository,
	photoRepo repository.PhotoRepository,
	metadataRepo repository.MetadataRepository,
	logService LogService,
	configuration *config.Configuration,
) ItemService {
	return &itemServiceImpl{
		itemRepo:     itemRepo,
		toteRepo:     toteRepo,
		photoRepo:    photoRepo,
		metadataRepo: metadataRepo,
		logService:   logService,
		dataDir:      configuration.Storage.DataDir,
	}
}

func (s *itemServiceImpl) CreateItem(toteID, name string, description *string, quantity *int) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}

	tote, err := s.toteRepo.FindByID(toteID)
	if err != nil {
		return nil, err
	}
	if tote == nil {
		return nil, ErrToteNotFound
	}

	qty := 1
	if quantity != nil {
		if *quantity < 1 {
			return nil, NewValidationError("Quantity must be a positive whole number")
		}
		qty = *quantity
	}

	item := &models.Item{
		ToteID:      toteID,
		Name:        name,
		Description: trimOptional(description),
		Quantity:    qty,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemsByTote(toteID string) ([]models.Item, error) {
	tote, err := s.toteRepo.FindByID(toteID)
	if err != nil {
		return nil, err
	}
	if tote == nil {
		return nil, ErrToteNotFound
	}
	return s.itemRepo.FindByToteID(toteID)
}

func (s *itemServiceImpl) GetItemByID(id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemDetail(id uint) (*dto.ItemDetail, error) {
	item, err := s.itemRepo.FindWithTote(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	metadata, err := s.metadataRepo.FindByItemID(id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.FindByItemID(id)
	if err != nil {
		return nil, err
	}
	history, err := s.itemRepo.MovementHistory(id)
	if err != nil {
		return nil, err
	}

	return &dto.ItemDetail{
		ItemWithTote:    *item,
		Metadata:        metadata,
		Photos:          photos,
		MovementHistory: history,
	}, nil
}

func (s *itemServiceImpl) UpdateItem(id uint, update dto.ItemUpdate) (*dto.ItemWithTote, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	changed := false
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, NewValidationError("Name is required")
		}
		item.Name = name
		changed = true
	}
	if update.Description != nil {
		item.Description = trimOptional(update.Description)
		changed = true
	}
	if update.Quantity != nil {
		if *update.Quantity < 1 {
			return nil, NewValidationError("Quantity must be a positive whole number")
		}
		item.Quantity = *update.Quantity
		changed = true
	}
	if !changed {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return s.itemRepo.FindWithTote(id)
}

// DeleteItem removes the row (cascades take the photos, metadata and
// movement history) and then removes the photo files from disk. File
// removal failures are logged, never surfaced: the DB is the source of
// truth.
func (s *itemServiceImpl) DeleteItem(id uint) (*models.Item, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.FindByItemID(id)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Delete(id); err != nil {
		return nil, err
	}

	for _, photo := range photos {
		s.removePhotoFiles(photo)
	}
	return item, nil
}

func (s *itemServiceImpl) removePhotoFiles(photo models.ItemPhoto) {
	for _, relPath := range []string{photo.OriginalPath, photo.ThumbnailPath} {
		if err := helpers.RemoveFileIfExists(filepath.Join(s.dataDir, relPath)); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"photo_id": photo.ID,
				"path":     relPath,
				"error":    err.Error(),
			}).Warn("Failed to delete photo file")
		}
	}
}

func (s *itemServiceImpl) MoveItem(id uint, targetToteID string) (*dto.ItemWithTote, *models.Tote, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, nil, err
	}
	targetTote, err := s.toteRepo.FindByID(targetToteID)
	if err != nil {
		return nil, nil, err
	}
	if targetTote == nil {
		return nil, nil, ErrTargetToteNotFound
	}
	if item.ToteID == targetToteID {
		return nil, nil, ErrSameTote
	}

	if err := s.itemRepo.Move(item, targetToteID); err != nil {
		return nil, nil, err
	}
	moved, err := s.itemRepo.FindWithTote(id)
	if err != nil {
		return nil, nil, err
	}
	return moved, targetTote, nil
}

// DuplicateItem copies the item and its metadata into targetToteID (or
// the item's own tote when empty). Photos are not copied.
func (s *itemServiceImpl) DuplicateItem(id uint, targetToteID string) (*dto.ItemWithTote, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	toteID := item.ToteID
	if targetToteID != "" {
		targetTote, err := s.toteRepo.FindByID(targetToteID)
		if err != nil {
			return nil, err
		}
		if targetTote == nil {
			return nil, ErrTargetToteNotFound
		}
		toteID = targetToteID
	}

	duplicate, err := s.itemRepo.Duplicate(item, toteID)
	if err != nil {
		return nil, err
	}
	return s.itemRepo.FindWithTote(duplicate.ID)
}
