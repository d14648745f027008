package handlers

import (
	"ToteSonar/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service    services.SettingsService
	logService services.LogService
}

func NewSettingsHandler(service services.SettingsService, logService services.LogService) *SettingsHandler {
	return &SettingsHandler{service: service, logService: logService}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req map[string]string
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if len(req) == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "No settings provided"})
	}

	settings, err := h.service.UpdateSettings(req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(settings)
}
