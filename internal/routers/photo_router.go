package routers

import (
	"ToteSonar/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPhotoRouter(api fiber.Router, server *cmd.Server) {
	photoHandler := server.PhotoHandler
	api.Get("/items/:id/photos", photoHandler.ListItemPhotos)
	api.Post("/items/:id/photos", photoHandler.UploadPhoto)
	api.Get("/photos/:id", photoHandler.GetPhoto)
	api.Get("/photos/:id/thumbnail", photoHandler.GetThumbnail)
	api.Delete("/photos/:id", photoHandler.DeletePhoto)
}
