package dto

type SearchQuery struct {
	Query       string
	Location    string
	Owner       string
	MetadataKey string
}

type SearchResult struct {
	Items []ItemWithTote `json:"items"`
	Total int            `json:"total"`
}

type SearchFilters struct {
	Locations    []string `json:"locations"`
	Owners       []string `json:"owners"`
	MetadataKeys []string `json:"metadataKeys"`
}
