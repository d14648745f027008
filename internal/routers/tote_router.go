package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupToteRouter(api fiber.Router, server *cmd.Server) {
	toteHandler := server.ToteHandler
	qrHandler := server.QRHandler
	api.Get("/totes", toteHandler.ListTotes)
	api.Post("/totes", toteHandler.CreateTote)
	api.Post("/totes/qr/bulk", qrHandler.BulkToteQR)
	api.Get("/totes/:id", toteHandler.GetTote)
	api.Put("/totes/:id", toteHandler.UpdateTote)
	api.Delete("/totes/:id", toteHandler.DeleteTote)
	api.Get("/totes/:id/qr", qrHandler.GetToteQR)
}
