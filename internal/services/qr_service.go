package services

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/repository"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrImageSize     = 300
	maxBulkQRLabels = 50
)

type QRService interface {
	GeneratePNG(toteID string) ([]byte, error)
	GenerateDataURL(toteID string) (*dto.QRCodeEntry, error)
	GenerateBulk(toteIDs []string) ([]dto.QRCodeEntry, error)
}

type qrServiceImpl struct {
	toteRepo        repository.ToteRepository
	settingsService SettingsService
}

func NewQRService(toteRepo repository.ToteRepository, settingsService SettingsService) QRService {
	return &qrServiceImpl{toteRepo: toteRepo, settingsService: settingsService}
}

func (s *qrServiceImpl) toteURL(toteID string) (string, error) {
	hostname, err := s.settingsService.GetServerHostname()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/totes/%s", hostname, toteID), nil
}

func (s *qrServiceImpl) GeneratePNG(toteID string) ([]byte, error) {
	tote, err := s.toteRepo.FindByID(toteID)
	if err != nil {
		return nil, err
	}
	if tote == nil {
		return nil, ErrToteNotFound
	}
	url, err := s.toteURL(toteID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(url, qrcode.Medium, qrImageSize)
}

func (s *qrServiceImpl) GenerateDataURL(toteID string) (*dto.QRCodeEntry, error) {
	tote, err := s.toteRepo.FindByID(toteID)
	if err != nil {
		return nil, err
	}
	if tote == nil {
		return nil, ErrToteNotFound
	}
	url, err := s.toteURL(toteID)
	if err != nil {
		return nil, err
	}
	dataURL, err := encodeDataURL(url)
	if err != nil {
		return nil, err
	}
	return &dto.QRCodeEntry{
		ToteID:     toteID,
		QRDataURL:  dataURL,
		EncodedURL: url,
	}, nil
}

// GenerateBulk encodes label data for up to 50 totes at once. IDs that do
// not exist are silently skipped; an entirely unknown set is a 404.
func (s *qrServiceImpl) GenerateBulk(toteIDs []string) ([]dto.QRCodeEntry, error) {
	if len(toteIDs) == 0 {
		return nil, NewValidationError("tote_ids must be a non-empty array")
	}
	if len(toteIDs) > maxBulkQRLabels {
		return nil, NewValidationError("Maximum 50 totes can be printed at once")
	}

	totes, err := s.toteRepo.FindByIDs(toteIDs)
	if err != nil {
		return nil, err
	}
	if len(totes) == 0 {
		return nil, ErrNoTotesFound
	}

	entries := make([]dto.QRCodeEntry, 0, len(totes))
	for _, tote := range totes {
		url, err := s.toteURL(tote.ID)
		if err != nil {
			return nil, err
		}
		dataURL, err := encodeDataURL(url)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dto.QRCodeEntry{
			ToteID:       tote.ID,
			ToteName:     tote.Name,
			ToteLocation: tote.Location,
			QRDataURL:    dataURL,
			EncodedURL:   url,
		})
	}
	return entries, nil
}

func encodeDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
