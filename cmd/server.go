package cmd

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/handlers"
	"ToteSonar/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	ToteService     services.ToteService
	ToteHandler     *handlers.ToteHandler
	ItemService     services.ItemService
	ItemHandler     *handlers.ItemHandler
	PhotoService    services.PhotoService
	PhotoHandler    *handlers.PhotoHandler
	MetadataService services.MetadataService
	MetadataHandler *handlers.MetadataHandler
	SearchService   services.SearchService
	SearchHandler   *handlers.SearchHandler
	SettingsService services.SettingsService
	SettingsHandler *handlers.SettingsHandler
	ExportService   services.ExportService
	ExportHandler   *handlers.ExportHandler
	QRService       services.QRService
	QRHandler       *handlers.QRHandler
	SystemService   services.SystemService
	SystemHandler   *handlers.SystemHandler
	LogService      services.LogService
	JanitorService  *services.Janitor
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	toteService services.ToteService,
	toteHandler *handlers.ToteHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	photoService services.PhotoService,
	photoHandler *handlers.PhotoHandler,
	metadataService services.MetadataService,
	metadataHandler *handlers.MetadataHandler,
	searchService services.SearchService,
	searchHandler *handlers.SearchHandler,
	settingsService services.SettingsService,
	settingsHandler *handlers.SettingsHandler,
	exportService services.ExportService,
	exportHandler *handlers.ExportHandler,
	qrService services.QRService,
	qrHandler *handlers.QRHandler,
	systemService services.SystemService,
	systemHandler *handlers.SystemHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		ToteService:     toteService,
		ToteHandler:     toteHandler,
		ItemService:     itemService,
		ItemHandler:     itemHandler,
		PhotoService:    photoService,
		PhotoHandler:    photoHandler,
		MetadataService: metadataService,
		MetadataHandler: metadataHandler,
		SearchService:   searchService,
		SearchHandler:   searchHandler,
		SettingsService: settingsService,
		SettingsHandler: settingsHandler,
		ExportService:   exportService,
		ExportHandler:   exportHandler,
		QRService:       qrService,
		QRHandler:       qrHandler,
		SystemService:   systemService,
		SystemHandler:   systemHandler,
		LogService:      logService,
		JanitorService:  janitorService,
	}
}
