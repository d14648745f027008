package services

import (
	"ToteSonar/database"
	"ToteSonar/internal/config"
	"ToteSonar/internal/models"
	"ToteSonar/internal/repository"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPhotoService(t *testing.T) (PhotoService, *gorm.DB, string) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	assert.NoError(t, database.Migrate(db))

	dataDir := t.TempDir()
	for _, folder := range []string{"uploads", "thumbnails"} {
		assert.NoError(t, os.MkdirAll(filepath.Join(dataDir, folder), 0o755))
	}

	cfg := &config.Configuration{}
	cfg.Storage.DataDir = dataDir
	service := NewPhotoService(
		repository.NewPhotoRepository(db),
		repository.NewItemRepository(db),
		repository.NewSettingsRepository(db),
		NewLogService(cfg),
		cfg,
	)
	return service, db, dataDir
}

func testPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartHeader(t *testing.T, filename, mimeType string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["photo"][0]
}

func seedPhotoItem(t *testing.T, db *gorm.DB) *models.Item {
	assert.NoError(t, db.Create(&models.Tote{ID: "Abc123", Name: "Tools", Location: "Garage"}).Error)
	item := &models.Item{ToteID: "Abc123", Name: "Hammer", Quantity: 1}
	assert.NoError(t, db.Create(item).Error)
	return item
}

func TestPhotoService_UploadWritesFilesAndRow(t *testing.T) {
	service, db, dataDir := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	photo, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", testPNG(t)))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", photo.MimeType)
	assert.NotZero(t, photo.ID)

	_, err = os.Stat(filepath.Join(dataDir, photo.OriginalPath))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, photo.ThumbnailPath))
	assert.NoError(t, err)
}

func TestPhotoService_UploadRejectsUnsupportedType(t *testing.T) {
	service, db, _ := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	_, err := service.UploadPhoto(item.ID, multipartHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assert.True(t, IsValidation(err))
}

func TestPhotoService_UploadEnforcesLimit(t *testing.T) {
	service, db, _ := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	content := testPNG(t)
	for i := 0; i < 3; i++ {
		_, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", content))
		assert.NoError(t, err)
	}
	_, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", content))
	assert.ErrorIs(t, err, ErrPhotoLimitReached)
}

func TestPhotoService_UploadEnforcesConfiguredSizeLimit(t *testing.T) {
	service, db, _ := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	settingsRepo := repository.NewSettingsRepository(db)
	assert.NoError(t, settingsRepo.UpsertAll(map[string]string{
		models.SettingMaxUploadSize: strconv.Itoa(10),
	}))

	_, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", testPNG(t)))
	assert.True(t, IsValidation(err))
}

func TestPhotoService_UploadUndecodableImageLeavesNothingBehind(t *testing.T) {
	service, db, dataDir := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	_, err := service.UploadPhoto(item.ID, multipartHeader(t, "fake.png", "image/png", []byte("not an image")))
	assert.True(t, IsValidation(err))

	uploads, err := os.ReadDir(filepath.Join(dataDir, "uploads"))
	assert.NoError(t, err)
	assert.Empty(t, uploads)

	var photoCount int64
	db.Model(&models.ItemPhoto{}).Count(&photoCount)
	assert.Zero(t, photoCount)
}

func TestPhotoService_DeleteRemovesFiles(t *testing.T) {
	service, db, dataDir := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	photo, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", testPNG(t)))
	assert.NoError(t, err)

	assert.NoError(t, service.DeletePhoto(photo.ID))

	_, err = os.Stat(filepath.Join(dataDir, photo.OriginalPath))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dataDir, photo.ThumbnailPath))
	assert.True(t, os.IsNotExist(err))
}

func TestPhotoService_GetPhotoFileMissingOnDisk(t *testing.T) {
	service, db, dataDir := setupPhotoService(t)
	item := seedPhotoItem(t, db)

	photo, err := service.UploadPhoto(item.ID, multipartHeader(t, "hammer.png", "image/png", testPNG(t)))
	assert.NoError(t, err)
	assert.NoError(t, os.Remove(filepath.Join(dataDir, photo.OriginalPath)))

	_, _, err = service.GetPhotoFile(photo.ID, false)
	assert.ErrorIs(t, err, ErrPhotoFileNotFound)
}
