package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRouter(api fiber.Router, server *cmd.Server) {
	exportHandler := server.ExportHandler
	api.Get("/export", exportHandler.Export)
	api.Post("/import", exportHandler.Import)
}
