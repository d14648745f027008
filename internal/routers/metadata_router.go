package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupMetadataRouter(api fiber.Router, server *cmd.Server) {
	metadataHandler := server.MetadataHandler
	api.Get("/items/:id/metadata", metadataHandler.ListItemMetadata)
	api.Post("/items/:id/metadata", metadataHandler.AddMetadata)
	api.Put("/items/:id/metadata/:metadataId", metadataHandler.UpdateMetadata)
	api.Delete("/items/:id/metadata/:metadataId", metadataHandler.DeleteMetadata)
	api.Get("/metadata-keys", metadataHandler.ListKeys)
}
