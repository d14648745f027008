package handlers

import (
	"ToteSonar/internal/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct {
	service    services.SystemService
	logService services.LogService
}

func NewSystemHandler(service services.SystemService, logService services.LogService) *SystemHandler {
	return &SystemHandler{service: service, logService: logService}
}

func (h *SystemHandler) Health(c *fiber.Ctx) error {
	if err := h.service.Health(); err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(dashboard)
}

func (h *SystemHandler) SchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.SchemaReport()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(report)
}
