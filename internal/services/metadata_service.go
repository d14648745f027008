package services

import (
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
	"encoding/json"
	"sort"
	"strings"
)

type MetadataService interface {
	GetMetadataByItem(itemID uint) ([]models.ItemMetadata, error)
	AddMetadata(itemID uint, key, value string) (*models.ItemMetadata, error)
	UpdateMetadata(itemID, metadataID uint, key, value *string) (*models.ItemMetadata, error)
	DeleteMetadata(itemID, metadataID uint) error
	ListKeys() ([]string, error)
}

type metadataServiceImpl struct {
	metadataRepo repository.MetadataRepository
	itemRepo     repository.ItemRepository
	settingsRepo repository.SettingsRepository
}

func NewMetadataService(
	metadataRepo repository.MetadataRepository,
	itemRepo repository.ItemRepository,
	settingsRepo repository.SettingsRepository,
) MetadataService {
	return &metadataServiceImpl{
		metadataRepo: metadataRepo,
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *metadataServiceImpl) GetMetadataByItem(itemID uint) ([]models.ItemMetadata, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return s.metadataRepo.FindByItemID(itemID)
}

// AddMetadata inserts the pair and registers the key for autocomplete.
// Duplicate keys on one item are allowed.
func (s *metadataServiceImpl) AddMetadata(itemID uint, key, value string) (*models.ItemMetadata, error) {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return nil, NewValidationError("Metadata key is required")
	}
	if value == "" {
		return nil, NewValidationError("Metadata value is required")
	}

	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	entry := &models.ItemMetadata{ItemID: itemID, Key: key, Value: value}
	if err := s.metadataRepo.Create(entry); err != nil {
		return nil, err
	}
	if err := s.metadataRepo.RegisterKey(key); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *metadataServiceImpl) UpdateMetadata(itemID, metadataID uint, key, value *string) (*models.ItemMetadata, error) {
	entry, err := s.metadataRepo.FindByIDForItem(metadataID, itemID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrMetadataNotFound
	}

	changed := false
	if key != nil && strings.TrimSpace(*key) != "" {
		entry.Key = strings.TrimSpace(*key)
		if err := s.metadataRepo.RegisterKey(entry.Key); err != nil {
			return nil, err
		}
		changed = true
	}
	if value != nil && strings.TrimSpace(*value) != "" {
		entry.Value = strings.TrimSpace(*value)
		changed = true
	}
	if !changed {
		return nil, NewValidationError("No valid fields to update")
	}

	if err := s.metadataRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *metadataServiceImpl) DeleteMetadata(itemID, metadataID uint) error {
	entry, err := s.metadataRepo.FindByIDForItem(metadataID, itemID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrMetadataNotFound
	}
	return s.metadataRepo.DeleteForItem(metadataID, itemID)
}

// ListKeys merges the append-only key registry with the
// default_metadata_keys setting, deduplicated and sorted.
func (s *metadataServiceImpl) ListKeys() ([]string, error) {
	keys, err := s.metadataRepo.ListKeys()
	if err != nil {
		return nil, err
	}

	keySet := make(map[string]bool, len(keys))
	for _, key := range keys {
		keySet[key] = true
	}

	setting, err := s.settingsRepo.Get(models.SettingDefaultMetaKeys)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		var defaults []string
		// invalid JSON in the setting is ignored
		if json.Unmarshal([]byte(setting.Value), &defaults) == nil {
			for _, key := range defaults {
				if trimmed := strings.TrimSpace(key); trimmed != "" {
					keySet[trimmed] = true
				}
			}
		}
	}

	merged := make([]string, 0, len(keySet))
	for key := range keySet {
		merged = append(merged, key)
	}
	sort.Strings(merged)
	return merged, nil
}
