package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api")
	SetupToteRouter(api, server)
	SetupItemRouter(api, server)
	SetupPhotoRouter(api, server)
	SetupMetadataRouter(api, server)
	SetupSearchRouter(api, server)
	SetupSettingsRouter(api, server)
	SetupExportRouter(api, server)
	SetupSystemRouter(api, server)
	SetupJanitorRouter(api, server)
}
