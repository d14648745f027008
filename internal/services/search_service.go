package services

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/repository"
	"strings"
)

type SearchService interface {
	Search(query dto.SearchQuery) (*dto.SearchResult, error)
	GetFilters() (*dto.SearchFilters, error)
}

type searchServiceImpl struct {
	searchRepo   repository.SearchRepository
	toteRepo     repository.ToteRepository
	metadataRepo repository.MetadataRepository
}

func NewSearchService(
	searchRepo repository.SearchRepository,
	toteRepo repository.ToteRepository,
	metadataRepo repository.MetadataRepository,
) SearchService {
	return &searchServiceImpl{
		searchRepo:   searchRepo,
		toteRepo:     toteRepo,
		metadataRepo: metadataRepo,
	}
}

func (s *searchServiceImpl) Search(query dto.SearchQuery) (*dto.SearchResult, error) {
	// no criteria at all short-circuits to an empty result
	if strings.TrimSpace(query.Query) == "" &&
		strings.TrimSpace(query.Location) == "" &&
		strings.TrimSpace(query.Owner) == "" &&
		strings.TrimSpace(query.MetadataKey) == "" {
		return &dto.SearchResult{Items: []dto.ItemWithTote{}, Total: 0}, nil
	}

	items, err := s.searchRepo.Search(query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dto.ItemWithTote{}
	}
	return &dto.SearchResult{Items: items, Total: len(items)}, nil
}

// GetFilters returns the distinct values backing the search filter
// dropdowns.
func (s *searchServiceImpl) GetFilters() (*dto.SearchFilters, error) {
	locations, err := s.toteRepo.DistinctLocations()
	if err != nil {
		return nil, err
	}
	owners, err := s.toteRepo.DistinctOwners()
	if err != nil {
		return nil, err
	}
	keys, err := s.metadataRepo.ListKeys()
	if err != nil {
		return nil, err
	}
	return &dto.SearchFilters{
		Locations:    locations,
		Owners:       owners,
		MetadataKeys: keys,
	}, nil
}
