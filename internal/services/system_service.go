package services

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/repository"
)

const dashboardRecentItems = 10

type SystemService interface {
	Health() error
	Dashboard() (*dto.Dashboard, error)
	SchemaReport() (*dto.SchemaReport, error)
}

type systemServiceImpl struct {
	systemRepo repository.SystemRepository
	toteRepo   repository.ToteRepository
	itemRepo   repository.ItemRepository
}

func NewSystemService(
	systemRepo repository.SystemRepository,
	toteRepo repository.ToteRepository,
	itemRepo repository.ItemRepository,
) SystemService {
	return &systemServiceImpl{
		systemRepo: systemRepo,
		toteRepo:   toteRepo,
		itemRepo:   itemRepo,
	}
}

func (s *systemServiceImpl) Health() error {
	return s.systemRepo.Ping()
}

func (s *systemServiceImpl) Dashboard() (*dto.Dashboard, error) {
	totes, err := s.toteRepo.Count()
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.itemRepo.Recent(dashboardRecentItems)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []dto.ItemWithTote{}
	}
	return &dto.Dashboard{
		TotalTotes:  totes,
		TotalItems:  items,
		RecentItems: recent,
	}, nil
}

func (s *systemServiceImpl) SchemaReport() (*dto.SchemaReport, error) {
	return s.systemRepo.SchemaReport()
}
