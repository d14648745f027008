package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSystemRouter(api fiber.Router, server *cmd.Server) {
	systemHandler := server.SystemHandler
	api.Get("/health", systemHandler.Health)
	api.Get("/dashboard", systemHandler.Dashboard)
	api.Get("/schema-check", systemHandler.SchemaCheck)
}
