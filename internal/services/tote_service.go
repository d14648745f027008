package services

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/helpers"
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
	"strings"
)

type ToteService interface {
	CreateTote(name, location string, size, color, owner *string) (*models.Tote, error)
	GetToteByID(id string) (*models.Tote, error)
	GetToteDetail(id string) (*dto.ToteDetail, error)
	GetTotes(sortBy, order string) ([]dto.ToteWithCount, error)
	UpdateTote(id string, update dto.ToteUpdate) (*models.Tote, error)
	DeleteTote(id string) (*models.Tote, int64, error)
}

type toteServiceImpl struct {
	toteRepo repository.ToteRepository
	itemRepo repository.ItemRepository
}

func NewToteService(toteRepo repository.ToteRepository, itemRepo repository.ItemRepository) ToteService {
	return &toteServiceImpl{toteRepo: toteRepo, itemRepo: itemRepo}
}

func (s *toteServiceImpl) CreateTote(name, location string, size, color, owner *string) (*models.Tote, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}
	if location == "" {
		return nil, NewValidationError("Location is required")
	}

	id, err := s.generateUniqueID()
	if err != nil {
		return nil, err
	}
	tote := &models.Tote{
		ID:       id,
		Name:     name,
		Location: location,
		Size:     trimOptional(size),
		Color:    trimOptional(color),
		Owner:    trimOptional(owner),
	}
	if err := s.toteRepo.Create(tote); err != nil {
		return nil, err
	}
	return tote, nil
}

// generateUniqueID retries on collision. With 62^6 possible IDs a retry
// is already unlikely; more than a handful means the RNG is broken.
func (s *toteServiceImpl) generateUniqueID() (string, error) {
	for {
		id := helpers.GenerateToteID()
		existing, err := s.toteRepo.FindByID(id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (s *toteServiceImpl) GetToteByID(id string) (*models.Tote, error) {
	tote, err := s.toteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tote == nil {
		return nil, ErrToteNotFound
	}
	return tote, nil
}

func (s *toteServiceImpl) GetToteDetail(id string) (*dto.ToteDetail, error) {
	tote, err := s.GetToteByID(id)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindByToteID(id)
	if err != nil {
		return nil, err
	}
	return &dto.ToteDetail{
		Tote:      *tote,
		Items:     items,
		ItemCount: len(items),
	}, nil
}

func (s *toteServiceImpl) GetTotes(sortBy, order string) ([]dto.ToteWithCount, error) {
	return s.toteRepo.FindAllWithCounts(sortBy, order)
}

// UpdateTote touches only the provided fields, applied through a fixed
// column mapping rather than assembled SQL.
func (s *toteServiceImpl) UpdateTote(id string, update dto.ToteUpdate) (*models.Tote, error) {
	tote, err := s.GetToteByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Location != nil {
		fields["location"] = strings.TrimSpace(*update.Location)
	}
	if update.Size != nil {
		fields["size"] = trimOptional(update.Size)
	}
	if update.Color != nil {
		fields["color"] = trimOptional(update.Color)
	}
	if update.Owner != nil {
		fields["owner"] = trimOptional(update.Owner)
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.toteRepo.UpdateFields(tote.ID, fields); err != nil {
		return nil, err
	}
	return s.GetToteByID(id)
}

// DeleteTote removes the tote and, via FK cascades, every item it holds
// together with their photos, metadata and movement history. Returns the
// deleted tote and how many items went with it.
func (s *toteServiceImpl) DeleteTote(id string) (*models.Tote, int64, error) {
	tote, err := s.GetToteByID(id)
	if err != nil {
		return nil, 0, err
	}
	itemCount, err := s.toteRepo.CountItems(id)
	if err != nil {
		return nil, 0, err
	}
	if err := s.toteRepo.Delete(id); err != nil {
		return nil, 0, err
	}
	return tote, itemCount, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
