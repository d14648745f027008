package dto

type Dashboard struct {
	TotalTotes  int64          `json:"total_totes"`
	TotalItems  int64          `json:"total_items"`
	RecentItems []ItemWithTote `json:"recent_items"`
}

type QRCodeEntry struct {
	ToteID       string `json:"tote_id"`
	ToteName     string `json:"tote_name,omitempty"`
	ToteLocation string `json:"tote_location,omitempty"`
	QRDataURL    string `json:"qr_data_url"`
	EncodedURL   string `json:"encoded_url"`
}

type ImportSummary struct {
	Totes    int `json:"totes"`
	Items    int `json:"items"`
	Photos   int `json:"photos"`
	Metadata int `json:"metadata"`
	Settings int `json:"settings"`
}

type ColumnInfo struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	NotNull      bool    `json:"notnull"`
	PrimaryKey   bool    `json:"pk"`
	DefaultValue *string `json:"default_value"`
}

type ForeignKeyInfo struct {
	From             string `json:"from"`
	ReferencesTable  string `json:"references_table"`
	ReferencesColumn string `json:"references_column"`
	OnDelete         string `json:"on_delete"`
}

type TableSchema struct {
	Columns     []ColumnInfo     `json:"columns"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys"`
}

type SchemaReport struct {
	Tables             []string               `json:"tables"`
	Schemas            map[string]TableSchema `json:"schemas"`
	ForeignKeysEnabled bool                   `json:"foreign_keys_enabled"`
	MissingTables      []string               `json:"missing_tables"`
	AllTablesPresent   bool                   `json:"all_tables_present"`
}
