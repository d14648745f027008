package handlers

import (
	"ToteSonar/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type PhotoHandler struct {
	service    services.PhotoService
	logService services.LogService
}

func NewPhotoHandler(service services.PhotoService, logService services.LogService) *PhotoHandler {
	return &PhotoHandler{service: service, logService: logService}
}

func (h *PhotoHandler) ListItemPhotos(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	photos, err := h.service.GetPhotosByItem(itemID)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(photos)
}

func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "No photo file provided"})
	}

	photo, err := h.service.UploadPhoto(itemID, fileHeader)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(photo)
}

func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	return h.sendPhotoFile(c, false)
}

func (h *PhotoHandler) GetThumbnail(c *fiber.Ctx) error {
	return h.sendPhotoFile(c, true)
}

func (h *PhotoHandler) sendPhotoFile(c *fiber.Ctx, thumbnail bool) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid photo ID"})
	}

	path, mimeType, err := h.service.GetPhotoFile(id, thumbnail)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	c.Set(fiber.HeaderContentType, mimeType)
	return c.SendFile(path)
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid photo ID"})
	}

	if err := h.service.DeletePhoto(id); err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{"message": "Photo deleted successfully"})
}
