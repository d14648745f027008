package services

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/helpers"
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/webp"
)

const (
	maxPhotosPerItem = 3
	thumbnailWidth   = 200
	thumbnailHeight  = 200
)

type PhotoService interface {
	UploadPhoto(itemID uint, fileHeader *multipart.FileHeader) (*models.ItemPhoto, error)
	GetPhotosByItem(itemID uint) ([]models.ItemPhoto, error)
	GetAllPhotos() ([]models.ItemPhoto, error)
	GetPhotoFile(id uint, thumbnail bool) (path string, mimeType string, err error)
	DeletePhoto(id uint) error
}

type photoServiceImpl struct {
	photoRepo    repository.PhotoRepository
	itemRepo     repository.ItemRepository
	settingsRepo repository.SettingsRepository
	logService   LogService
	dataDir      string
}

func NewPhotoService(
	photoRepo repository.PhotoRepository,
	itemRepo repository.ItemRepository,
	settingsRepo repository.SettingsRepository,
	logService LogService,
	configuration *config.Configuration,
) PhotoService {
	return &photoServiceImpl{
		photoRepo:    photoRepo,
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
		logService:   logService,
		dataDir:      configuration.Storage.DataDir,
	}
}

// UploadPhoto validates the upload (item exists, under the 3-photo limit,
// supported MIME type, within the configured size limit), writes the
// original and a 200x200 cover-crop thumbnail to disk and inserts the
// photo row. The DB insert happens last so a failed file write never
// leaves a row without files.
func (s *photoServiceImpl) UploadPhoto(itemID uint, fileHeader *multipart.FileHeader) (*models.ItemPhoto, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	count, err := s.photoRepo.CountByItemID(itemID)
	if err != nil {
		return nil, err
	}
	if count >= maxPhotosPerItem {
		return nil, ErrPhotoLimitReached
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	ext := helpers.ExtensionForMime(mimeType)
	if ext == "" {
		return nil, NewValidationError(fmt.Sprintf(
			"Invalid file type: %s. Supported formats: JPEG, PNG, WebP", mimeType))
	}

	maxSize := s.maxUploadSize()
	if fileHeader.Size > maxSize {
		maxSizeMB := float64(maxSize) / (1024 * 1024)
		return nil, NewValidationError(fmt.Sprintf(
			"File size exceeds maximum of %.1fMB", maxSizeMB))
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, err
	}

	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	originalPath := filepath.Join(s.dataDir, "uploads", filename)
	if err := os.WriteFile(originalPath, data, 0o644); err != nil {
		return nil, err
	}

	thumbnailFilename, err := s.writeThumbnail(data, filename, mimeType)
	if err != nil {
		// keep disk consistent with the (absent) DB row
		if removeErr := helpers.RemoveFileIfExists(originalPath); removeErr != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"path":  originalPath,
				"error": removeErr.Error(),
			}).Warn("Failed to clean up original after thumbnail error")
		}
		return nil, err
	}

	photo := &models.ItemPhoto{
		ItemID:        itemID,
		Filename:      filename,
		OriginalPath:  "uploads/" + filename,
		ThumbnailPath: "thumbnails/" + thumbnailFilename,
		FileSize:      fileHeader.Size,
		MimeType:      mimeType,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoServiceImpl) maxUploadSize() int64 {
	setting, err := s.settingsRepo.Get(models.SettingMaxUploadSize)
	if err != nil || setting == nil {
		return models.DefaultMaxUploadSizeBytes
	}
	size, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil || size <= 0 {
		return models.DefaultMaxUploadSizeBytes
	}
	return size
}

// writeThumbnail decodes the upload and saves a 200x200 cover crop.
// WebP originals get a JPEG thumbnail since there is no pure-Go WebP
// encoder; the thumbnail path stored on the row carries the real name.
func (s *photoServiceImpl) writeThumbnail(data []byte, filename, mimeType string) (string, error) {
	var img image.Image
	var err error
	if mimeType == "image/webp" {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return "", NewValidationError("Invalid image file: could not decode " + mimeType)
	}

	thumbnail := imaging.Fill(img, thumbnailWidth, thumbnailHeight, imaging.Center, imaging.Lanczos)
	thumbnailFilename := "thumb_" + filename
	if mimeType == "image/webp" {
		thumbnailFilename = strings.TrimSuffix(thumbnailFilename, ".webp") + ".jpg"
	}
	thumbnailPath := filepath.Join(s.dataDir, "thumbnails", thumbnailFilename)
	if err := imaging.Save(thumbnail, thumbnailPath); err != nil {
		return "", err
	}
	return thumbnailFilename, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
	}()
	return io.ReadAll(src)
}

func (s *photoServiceImpl) GetPhotosByItem(itemID uint) ([]models.ItemPhoto, error) {
	return s.photoRepo.FindByItemID(itemID)
}

func (s *photoServiceImpl) GetAllPhotos() ([]models.ItemPhoto, error) {
	return s.photoRepo.FindAll()
}

// GetPhotoFile resolves the on-disk path for the original or thumbnail.
// A missing file is a plain 404, not a corruption signal.
func (s *photoServiceImpl) GetPhotoFile(id uint, thumbnail bool) (string, string, error) {
	photo, err := s.photoRepo.FindByID(id)
	if err != nil {
		return "", "", err
	}
	if photo == nil {
		return "", "", ErrPhotoNotFound
	}

	relPath := photo.OriginalPath
	if thumbnail {
		relPath = photo.ThumbnailPath
	}
	path := filepath.Join(s.dataDir, relPath)
	if _, err := os.Stat(path); err != nil {
		return "", "", ErrPhotoFileNotFound
	}

	mimeType := photo.MimeType
	// WebP originals carry JPEG thumbnails
	if thumbnail && strings.HasSuffix(relPath, ".jpg") {
		mimeType = "image/jpeg"
	}
	return path, mimeType, nil
}

func (s *photoServiceImpl) DeletePhoto(id uint) error {
	photo, err := s.photoRepo.FindByID(id)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	if err := s.photoRepo.Delete(id); err != nil {
		return err
	}

	for _, relPath := range []string{photo.OriginalPath, photo.ThumbnailPath} {
		if err := helpers.RemoveFileIfExists(filepath.Join(s.dataDir, relPath)); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"photo_id": photo.ID,
				"path":     relPath,
				"error":    err.Error(),
			}).Warn("Failed to delete photo file")
		}
	}
	return nil
}
