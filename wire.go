//go:build wireinject
// +build wireinject

package main

import (
	"ToteSonar/cmd"
	"ToteSonar/database"
	"ToteSonar/internal/config"
	"ToteSonar/internal/handlers"
	"ToteSonar/internal/repository"
	"ToteSonar/internal/services"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("tote-sonar.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewToteService,
		handlers.NewToteHandler,
		repository.NewToteRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		services.NewPhotoService,
		handlers.NewPhotoHandler,
		repository.NewPhotoRepository,
		services.NewMetadataService,
		handlers.NewMetadataHandler,
		repository.NewMetadataRepository,
		services.NewSearchService,
		handlers.NewSearchHandler,
		repository.NewSearchRepository,
		services.NewSettingsService,
		handlers.NewSettingsHandler,
		repository.NewSettingsRepository,
		services.NewExportService,
		handlers.NewExportHandler,
		services.NewQRService,
		handlers.NewQRHandler,
		services.NewSystemService,
		handlers.NewSystemHandler,
		repository.NewSystemRepository,
		database.SetupDatabase,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
