package repository

import (
	"ToteSonar/database"
	"ToteSonar/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	assert.NoError(t, database.Migrate(db))
	return db
}

func createTestTote(t *testing.T, db *gorm.DB, id, name, location string) *models.Tote {
	tote := &models.Tote{ID: id, Name: name, Location: location}
	assert.NoError(t, db.Create(tote).Error)
	return tote
}

func createTestItem(t *testing.T, db *gorm.DB, toteID, name string) *models.Item {
	item := &models.Item{ToteID: toteID, Name: name, Quantity: 1}
	assert.NoError(t, db.Create(item).Error)
	return item
}
