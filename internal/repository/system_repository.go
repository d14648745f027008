package repository

import (
	"ToteSonar/internal/dto"
	"fmt"

	"gorm.io/gorm"
)

var expectedTables = []string{
	"totes", "items", "item_photos", "item_metadata",
	"metadata_keys", "item_movement_history", "settings",
}

type SystemRepository interface {
	Ping() error
	SchemaReport() (*dto.SchemaReport, error)
}

type SystemRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) SystemRepository {
	return &SystemRepositoryImpl{db: db}
}

func (r *SystemRepositoryImpl) Ping() error {
	var one int
	return r.db.Raw("SELECT 1").Scan(&one).Error
}

// SchemaReport introspects the live SQLite schema: tables, columns,
// foreign keys and whether foreign-key enforcement is on.
func (r *SystemRepositoryImpl) SchemaReport() (*dto.SchemaReport, error) {
	var tables []string
	err := r.db.Raw(`SELECT name FROM sqlite_master
		WHERE type = 'table' AND name != 'sqlite_sequence' ORDER BY name`).
		Scan(&tables).Error
	if err != nil {
		return nil, err
	}

	schemas := make(map[string]dto.TableSchema, len(tables))
	for _, table := range tables {
		var columns []struct {
			Name      string  `gorm:"column:name"`
			Type      string  `gorm:"column:type"`
			NotNull   int     `gorm:"column:notnull"`
			DfltValue *string `gorm:"column:dflt_value"`
			PK        int     `gorm:"column:pk"`
		}
		err = r.db.Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).Scan(&columns).Error
		if err != nil {
			return nil, err
		}

		var foreignKeys []struct {
			Table    string `gorm:"column:table"`
			From     string `gorm:"column:from"`
			To       string `gorm:"column:to"`
			OnDelete string `gorm:"column:on_delete"`
		}
		err = r.db.Raw(fmt.Sprintf("PRAGMA foreign_key_list(%q)", table)).Scan(&foreignKeys).Error
		if err != nil {
			return nil, err
		}

		schema := dto.TableSchema{
			Columns:     make([]dto.ColumnInfo, 0, len(columns)),
			ForeignKeys: make([]dto.ForeignKeyInfo, 0, len(foreignKeys)),
		}
		for _, col := range columns {
			schema.Columns = append(schema.Columns, dto.ColumnInfo{
				Name:         col.Name,
				Type:         col.Type,
				NotNull:      col.NotNull == 1,
				PrimaryKey:   col.PK == 1,
				DefaultValue: col.DfltValue,
			})
		}
		for _, fk := range foreignKeys {
			schema.ForeignKeys = append(schema.ForeignKeys, dto.ForeignKeyInfo{
				From:             fk.From,
				ReferencesTable:  fk.Table,
				ReferencesColumn: fk.To,
				OnDelete:         fk.OnDelete,
			})
		}
		schemas[table] = schema
	}

	var fkEnabled int
	if err = r.db.Raw("PRAGMA foreign_keys").Scan(&fkEnabled).Error; err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for _, expected := range expectedTables {
		found := false
		for _, table := range tables {
			if table == expected {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, expected)
		}
	}

	return &dto.SchemaReport{
		Tables:             tables,
		Schemas:            schemas,
		ForeignKeysEnabled: fkEnabled == 1,
		MissingTables:      missing,
		AllTablesPresent:   len(missing) == 0,
	}, nil
}
