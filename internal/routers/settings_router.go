package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRouter(api fiber.Router, server *cmd.Server) {
	settingsHandler := server.SettingsHandler
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", settingsHandler.UpdateSettings)
}
