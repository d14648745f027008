package services

import (
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
)

type SettingsService interface {
	GetSettings() (map[string]string, error)
	UpdateSettings(values map[string]string) (map[string]string, error)
	GetServerHostname() (string, error)
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *settingsServiceImpl) GetSettings() (map[string]string, error) {
	rows, err := s.settingsRepo.FindAll()
	if err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// UpdateSettings upserts every pair in one transaction and returns the
// full set afterwards. Unknown keys are accepted.
func (s *settingsServiceImpl) UpdateSettings(values map[string]string) (map[string]string, error) {
	if err := s.settingsRepo.UpsertAll(values); err != nil {
		return nil, err
	}
	return s.GetSettings()
}

func (s *settingsServiceImpl) GetServerHostname() (string, error) {
	setting, err := s.settingsRepo.Get(models.SettingServerHostname)
	if err != nil {
		return "", err
	}
	if setting == nil || setting.Value == "" {
		return models.DefaultServerHostname, nil
	}
	return setting.Value, nil
}
