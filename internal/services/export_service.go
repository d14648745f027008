package services

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/dto"
	"ToteSonar/internal/models"
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ManifestFilename is the fixed name of the JSON document inside an
// export archive. Archives without it are rejected on import.
const ManifestFilename = "tote-sonar-data.json"

const (
	exportVersion = "1.0"
	exportAppName = "Tote Sonar"
)

type ExportManifest struct {
	Version    string       `json:"version"`
	ExportedAt string       `json:"exported_at"`
	App        string       `json:"app"`
	Data       ExportTables `json:"data"`
}

type ExportTables struct {
	Totes               []models.Tote                `json:"totes"`
	Items               []models.Item                `json:"items"`
	ItemPhotos          []models.ItemPhoto           `json:"item_photos"`
	ItemMetadata        []models.ItemMetadata        `json:"item_metadata"`
	MetadataKeys        []models.MetadataKey         `json:"metadata_keys"`
	ItemMovementHistory []models.ItemMovementHistory `json:"item_movement_history"`
	Settings            []models.Setting             `json:"settings"`
}

var requiredTables = []string{
	"totes", "items", "item_photos", "item_metadata",
	"metadata_keys", "item_movement_history", "settings",
}

type ExportService interface {
	Export(w io.Writer) error
	Import(archive []byte) (*dto.ImportSummary, error)
}

// The export/import engine operates on the whole store at once, bypassing
// the per-entity repositories, so it holds the DB handle directly.
type exportServiceImpl struct {
	db         *gorm.DB
	logService LogService
	dataDir    string
}

func NewExportService(db *gorm.DB, logService LogService, configuration *config.Configuration) ExportService {
	return &exportServiceImpl{
		db:         db,
		logService: logService,
		dataDir:    configuration.Storage.DataDir,
	}
}

// Export writes a ZIP archive holding the JSON manifest plus every file
// under uploads/ and thumbnails/. Any read or archival error aborts the
// whole export.
func (s *exportServiceImpl) Export(w io.Writer) error {
	manifest, err := s.buildManifest()
	if err != nil {
		return err
	}
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	entry, err := zw.Create(ManifestFilename)
	if err != nil {
		return err
	}
	if _, err = entry.Write(manifestJSON); err != nil {
		return err
	}

	for _, folder := range []string{"uploads", "thumbnails"} {
		if err = s.archiveFolder(zw, folder); err != nil {
			return err
		}
	}
	return zw.Close()
}

func (s *exportServiceImpl) buildManifest() (*ExportManifest, error) {
	var tables ExportTables
	queries := []struct {
		dest  interface{}
		order string
	}{
		{&tables.Totes, "created_at"},
		{&tables.Items, "created_at"},
		{&tables.ItemPhotos, "created_at"},
		{&tables.ItemMetadata, "created_at"},
		{&tables.MetadataKeys, "created_at"},
		{&tables.ItemMovementHistory, "moved_at"},
		{&tables.Settings, ""},
	}
	for _, q := range queries {
		query := s.db
		if q.order != "" {
			query = query.Order(q.order)
		}
		if err := query.Find(q.dest).Error; err != nil {
			return nil, err
		}
	}

	return &ExportManifest{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		App:        exportAppName,
		Data:       tables,
	}, nil
}

// archiveFolder adds every regular file in dataDir/<folder> to the
// archive under "<folder>/<basename>".
func (s *exportServiceImpl) archiveFolder(zw *zip.Writer, folder string) error {
	dir := filepath.Join(s.dataDir, folder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, dirEntry := range entries {
		if dirEntry.IsDir() {
			continue
		}
		src, err := os.Open(filepath.Join(dir, dirEntry.Name()))
		if err != nil {
			return err
		}
		dst, err := zw.Create(folder + "/" + dirEntry.Name())
		if err != nil {
			src.Close()
			return err
		}
		if _, err = io.Copy(dst, src); err != nil {
			src.Close()
			return err
		}
		src.Close()
	}
	return nil
}

// Import validates the uploaded archive, destructively replaces all table
// contents in one transaction, then replaces the upload/thumbnail files
// on disk. The relational replace is atomic; the file replacement that
// follows the commit is not covered by the transaction.
func (s *exportServiceImpl) Import(archive []byte) (*dto.ImportSummary, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, NewValidationError("Invalid ZIP file. The file could not be read as a ZIP archive.")
	}

	manifestJSON, err := readArchiveEntry(zr, ManifestFilename)
	if err != nil {
		return nil, err
	}
	manifest, err := parseManifest(manifestJSON)
	if err != nil {
		return nil, err
	}

	if err = s.replaceTables(&manifest.Data); err != nil {
		return nil, err
	}
	s.replaceFiles(zr)

	return &dto.ImportSummary{
		Totes:    len(manifest.Data.Totes),
		Items:    len(manifest.Data.Items),
		Photos:   len(manifest.Data.ItemPhotos),
		Metadata: len(manifest.Data.ItemMetadata),
		Settings: len(manifest.Data.Settings),
	}, nil
}

func readArchiveEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, file := range zr.File {
		if file.Name == name {
			rc, err := file.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, NewValidationError("Invalid export file. Missing " + name + " in the ZIP archive.")
}

// parseManifest type-checks the manifest shape (version and app strings,
// data object with all seven table arrays) before decoding the rows.
func parseManifest(manifestJSON []byte) (*ExportManifest, error) {
	var shape struct {
		Version json.RawMessage            `json:"version"`
		App     json.RawMessage            `json:"app"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(manifestJSON, &shape); err != nil {
		return nil, NewValidationError("Invalid JSON in export file. The " + ManifestFilename + " could not be parsed.")
	}

	structureErr := NewValidationError("Invalid export data structure. The JSON file is missing required fields or tables.")
	var version, app string
	if shape.Version == nil || json.Unmarshal(shape.Version, &version) != nil {
		return nil, structureErr
	}
	if shape.App == nil || json.Unmarshal(shape.App, &app) != nil {
		return nil, structureErr
	}
	if shape.Data == nil {
		return nil, structureErr
	}
	for _, table := range requiredTables {
		rawTable, ok := shape.Data[table]
		if !ok {
			return nil, structureErr
		}
		var rows []json.RawMessage
		if json.Unmarshal(rawTable, &rows) != nil {
			return nil, structureErr
		}
	}

	var manifest ExportManifest
	if err := json.Unmarshal(manifestJSON, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// replaceTables empties all seven tables in reverse-dependency order and
// re-inserts the manifest rows in forward-dependency order, inside one
// transaction with foreign-key checks suspended. Missing timestamps get
// the current time.
func (s *exportServiceImpl) replaceTables(tables *ExportTables) error {
	if err := s.db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return err
	}
	defer s.db.Exec("PRAGMA foreign_keys = ON")

	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		deletions := []string{
			"item_movement_history", "item_metadata", "item_photos",
			"items", "totes", "metadata_keys", "settings",
		}
		for _, table := range deletions {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		for i := range tables.Totes {
			tote := &tables.Totes[i]
			defaultTime(&tote.CreatedAt, now)
			defaultTime(&tote.UpdatedAt, now)
			tote.Items = nil
			if err := tx.Create(tote).Error; err != nil {
				return err
			}
		}
		for i := range tables.Items {
			item := &tables.Items[i]
			defaultTime(&item.CreatedAt, now)
			defaultTime(&item.UpdatedAt, now)
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			item.Photos = nil
			item.Metadata = nil
			item.Movements = nil
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		for i := range tables.ItemPhotos {
			photo := &tables.ItemPhotos[i]
			defaultTime(&photo.CreatedAt, now)
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}
		for i := range tables.ItemMetadata {
			meta := &tables.ItemMetadata[i]
			defaultTime(&meta.CreatedAt, now)
			defaultTime(&meta.UpdatedAt, now)
			if err := tx.Create(meta).Error; err != nil {
				return err
			}
		}
		for i := range tables.MetadataKeys {
			key := &tables.MetadataKeys[i]
			defaultTime(&key.CreatedAt, now)
			if err := tx.Create(key).Error; err != nil {
				return err
			}
		}
		for i := range tables.ItemMovementHistory {
			move := &tables.ItemMovementHistory[i]
			defaultTime(&move.MovedAt, now)
			move.FromTote = nil
			move.ToTote = nil
			if err := tx.Create(move).Error; err != nil {
				return err
			}
		}
		for i := range tables.Settings {
			setting := &tables.Settings[i]
			defaultTime(&setting.UpdatedAt, now)
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(setting).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func defaultTime(t *time.Time, now time.Time) {
	if t.IsZero() {
		*t = now
	}
}

// replaceFiles clears uploads/ and thumbnails/ and extracts the archive's
// entries for both folders, keeping only the base filename of each entry
// so a crafted archive cannot write outside the two directories.
func (s *exportServiceImpl) replaceFiles(zr *zip.Reader) {
	for _, folder := range []string{"uploads", "thumbnails"} {
		s.clearFolder(filepath.Join(s.dataDir, folder))
	}

	for _, file := range zr.File {
		if file.FileInfo().IsDir() {
			continue
		}
		var folder string
		switch {
		case len(file.Name) > len("uploads/") && file.Name[:len("uploads/")] == "uploads/":
			folder = "uploads"
		case len(file.Name) > len("thumbnails/") && file.Name[:len("thumbnails/")] == "thumbnails/":
			folder = "thumbnails"
		default:
			continue
		}

		baseName := filepath.Base(file.Name)
		if baseName == "." || baseName == "/" {
			continue
		}
		if err := s.extractFile(file, filepath.Join(s.dataDir, folder, baseName)); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"entry": file.Name,
				"error": err.Error(),
			}).Warn("Failed to extract archive entry")
		}
	}
}

func (s *exportServiceImpl) clearFolder(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"path":  filepath.Join(dir, entry.Name()),
				"error": err.Error(),
			}).Warn("Failed to remove file before import")
		}
	}
}

func (s *exportServiceImpl) extractFile(file *zip.File, destPath string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, rc)
	return err
}
