package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(api fiber.Router, server *cmd.Server) {
	janitor := server.JanitorService
	api.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		err := janitor.ForceStartCleanCycle()
		if err != nil {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{})
	})
}
