package database

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/models"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDatabase opens (or creates) the SQLite database under the data
// directory, enables WAL and foreign-key enforcement, migrates the schema
// and seeds default settings. Initialization is idempotent: tables are
// created only if absent and existing setting values are never overwritten.
func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	dataDir := cfg.Storage.DataDir
	dirs := []string{dataDir, filepath.Join(dataDir, "uploads"), filepath.Join(dataDir, "thumbnails")}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create data directory %s: %w", dir, err)
		}
	}

	dbPath := filepath.Join(dataDir, "tote-sonar.db")
	db, err := gorm.Open(sqlite.Open(dbPath+"?_journal_mode=WAL&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// A single connection keeps session pragmas (the import toggles
	// foreign_keys off) scoped to every statement that follows.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema and seeds default settings. Split out of
// SetupDatabase so tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Tote{},
		&models.Item{},
		&models.ItemPhoto{},
		&models.ItemMetadata{},
		&models.MetadataKey{},
		&models.ItemMovementHistory{},
		&models.Setting{},
	)
	if err != nil {
		return err
	}
	return seedDefaultSettings(db)
}

func seedDefaultSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingServerHostname:    models.DefaultServerHostname,
		models.SettingMaxUploadSize:     strconv.Itoa(models.DefaultMaxUploadSizeBytes),
		models.SettingDefaultToteFields: "[]",
		models.SettingDefaultMetaKeys:   "[]",
		models.SettingTheme:             "light",
	}
	for key, value := range defaults {
		setting := models.Setting{Key: key, Value: value}
		err := db.Where(models.Setting{Key: key}).FirstOrCreate(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
