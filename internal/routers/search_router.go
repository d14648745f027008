package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSearchRouter(api fiber.Router, server *cmd.Server) {
	searchHandler := server.SearchHandler
	api.Get("/search", searchHandler.Search)
	api.Get("/search/filters", searchHandler.GetFilters)
}
