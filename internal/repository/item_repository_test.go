package repository

import (
	"ToteSonar/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemRepository_FindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	item, err := repo.FindByID(42)
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestItemRepository_FindWithTote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	item := createTestItem(t, db, "aaaaaa", "Hammer")

	found, err := repo.FindWithTote(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hammer", found.Name)
	assert.Equal(t, "Tools", found.ToteName)
	assert.Equal(t, "Garage", found.ToteLocation)

	missing, err := repo.FindWithTote(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepository_MoveRecordsHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	createTestTote(t, db, "bbbbbb", "Paint", "Basement")
	item := createTestItem(t, db, "aaaaaa", "Hammer")

	assert.NoError(t, repo.Move(item, "bbbbbb"))

	moved, err := repo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bbbbbb", moved.ToteID)

	history, err := repo.MovementHistory(item.ID)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "aaaaaa", *history[0].FromToteID)
	assert.Equal(t, "bbbbbb", history[0].ToToteID)
	assert.Equal(t, "Tools", *history[0].FromToteName)
	assert.Equal(t, "Paint", history[0].ToToteName)
}

func TestItemRepository_MoveToMissingToteRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	item := createTestItem(t, db, "aaaaaa", "Hammer")

	err := repo.Move(item, "nosuch")
	assert.Error(t, err)

	var historyCount int64
	db.Model(&models.ItemMovementHistory{}).Count(&historyCount)
	assert.Zero(t, historyCount)
}

func TestItemRepository_DuplicateCopiesMetadataNotPhotos(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	item := createTestItem(t, db, "aaaaaa", "Hammer")
	assert.NoError(t, db.Create(&models.ItemMetadata{ItemID: item.ID, Key: "brand", Value: "Stanley"}).Error)
	assert.NoError(t, db.Create(&models.ItemPhoto{ItemID: item.ID, Filename: "a.jpg",
		OriginalPath: "uploads/a.jpg", ThumbnailPath: "thumbnails/thumb_a.jpg", MimeType: "image/jpeg"}).Error)

	duplicate, err := repo.Duplicate(item, "aaaaaa")
	assert.NoError(t, err)
	assert.Equal(t, "Hammer (Copy)", duplicate.Name)
	assert.Equal(t, "aaaaaa", duplicate.ToteID)
	assert.NotEqual(t, item.ID, duplicate.ID)

	var metadata []models.ItemMetadata
	assert.NoError(t, db.Where("item_id = ?", duplicate.ID).Find(&metadata).Error)
	assert.Len(t, metadata, 1)
	assert.Equal(t, "brand", metadata[0].Key)

	var photoCount int64
	db.Model(&models.ItemPhoto{}).Where("item_id = ?", duplicate.ID).Count(&photoCount)
	assert.Zero(t, photoCount)
}

func TestItemRepository_DeleteKeepsHistoryOfOtherItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	createTestTote(t, db, "bbbbbb", "Paint", "Basement")
	item := createTestItem(t, db, "aaaaaa", "Hammer")
	assert.NoError(t, repo.Move(item, "bbbbbb"))

	assert.NoError(t, repo.Delete(item.ID))

	var historyCount int64
	db.Model(&models.ItemMovementHistory{}).Count(&historyCount)
	assert.Zero(t, historyCount)
}

func TestItemRepository_Recent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	for _, name := range []string{"One", "Two", "Three"} {
		createTestItem(t, db, "aaaaaa", name)
	}

	recent, err := repo.Recent(2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
}
