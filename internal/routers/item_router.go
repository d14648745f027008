package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(api fiber.Router, server *cmd.Server) {
	itemHandler := server.ItemHandler
	api.Get("/totes/:id/items", itemHandler.ListToteItems)
	api.Post("/totes/:id/items", itemHandler.CreateItem)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)
	api.Post("/items/:id/move", itemHandler.MoveItem)
	api.Post("/items/:id/duplicate", itemHandler.DuplicateItem)
}
