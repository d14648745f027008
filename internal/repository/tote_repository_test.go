package repository

import (
	"ToteSonar/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToteRepository_FindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	tote, err := repo.FindByID("ZZZZZZ")
	assert.NoError(t, err)
	assert.Nil(t, tote)
}

func TestToteRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	owner := "Alice"
	tote := &models.Tote{ID: "Abc123", Name: "Tools", Location: "Garage", Owner: &owner}
	assert.NoError(t, repo.Create(tote))

	found, err := repo.FindByID("Abc123")
	assert.NoError(t, err)
	assert.Equal(t, "Tools", found.Name)
	assert.Equal(t, "Garage", found.Location)
	assert.Equal(t, "Alice", *found.Owner)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestToteRepository_FindAllWithCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	createTestTote(t, db, "aaaaaa", "Beta", "Garage")
	createTestTote(t, db, "bbbbbb", "Alpha", "Attic")
	createTestItem(t, db, "aaaaaa", "Hammer")
	createTestItem(t, db, "aaaaaa", "Saw")

	totes, err := repo.FindAllWithCounts("name", "asc")
	assert.NoError(t, err)
	assert.Len(t, totes, 2)
	assert.Equal(t, "Alpha", totes[0].Name)
	assert.Equal(t, 0, totes[0].ItemCount)
	assert.Equal(t, "Beta", totes[1].Name)
	assert.Equal(t, 2, totes[1].ItemCount)
}

func TestToteRepository_FindAllWithCountsRejectsUnknownSort(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	createTestTote(t, db, "aaaaaa", "Beta", "Garage")

	// a hostile sort column must not reach the query
	totes, err := repo.FindAllWithCounts("id; DROP TABLE totes", "asc")
	assert.NoError(t, err)
	assert.Len(t, totes, 1)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToteRepository_UpdateFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	err := repo.UpdateFields("aaaaaa", map[string]interface{}{"location": "Basement"})
	assert.NoError(t, err)

	tote, err := repo.FindByID("aaaaaa")
	assert.NoError(t, err)
	assert.Equal(t, "Basement", tote.Location)
	assert.Equal(t, "Tools", tote.Name)
}

func TestToteRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	createTestTote(t, db, "aaaaaa", "Tools", "Garage")
	item := createTestItem(t, db, "aaaaaa", "Hammer")
	assert.NoError(t, db.Create(&models.ItemMetadata{ItemID: item.ID, Key: "brand", Value: "Stanley"}).Error)
	assert.NoError(t, db.Create(&models.ItemPhoto{ItemID: item.ID, Filename: "a.jpg",
		OriginalPath: "uploads/a.jpg", ThumbnailPath: "thumbnails/thumb_a.jpg", MimeType: "image/jpeg"}).Error)

	assert.NoError(t, repo.Delete("aaaaaa"))

	var items, metadata, photos int64
	db.Model(&models.Item{}).Count(&items)
	db.Model(&models.ItemMetadata{}).Count(&metadata)
	db.Model(&models.ItemPhoto{}).Count(&photos)
	assert.Zero(t, items)
	assert.Zero(t, metadata)
	assert.Zero(t, photos)
}

func TestToteRepository_DistinctLocationsAndOwners(t *testing.T) {
	db := setupTestDB(t)
	repo := NewToteRepository(db)

	owner := "Alice"
	assert.NoError(t, db.Create(&models.Tote{ID: "aaaaaa", Name: "A", Location: "Garage", Owner: &owner}).Error)
	assert.NoError(t, db.Create(&models.Tote{ID: "bbbbbb", Name: "B", Location: "Garage"}).Error)
	assert.NoError(t, db.Create(&models.Tote{ID: "cccccc", Name: "C", Location: "Attic"}).Error)

	locations, err := repo.DistinctLocations()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Attic", "Garage"}, locations)

	owners, err := repo.DistinctOwners()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, owners)
}
