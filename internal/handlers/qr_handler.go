package handlers

import (
	"ToteSonar/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type QRHandler struct {
	service    services.QRService
	logService services.LogService
}

func NewQRHandler(service services.QRService, logService services.LogService) *QRHandler {
	return &QRHandler{service: service, logService: logService}
}

// GetToteQR renders the label QR for one tote. format=dataurl returns a
// JSON entry with an embedded data URL; anything else is raw PNG bytes.
func (h *QRHandler) GetToteQR(c *fiber.Ctx) error {
	id, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	if c.Query("format") == "dataurl" {
		entry, err := h.service.GenerateDataURL(id)
		if err != nil {
			return serviceError(c, h.logService, err)
		}
		return c.JSON(entry)
	}

	png, err := h.service.GeneratePNG(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *QRHandler) BulkToteQR(c *fiber.Ctx) error {
	var req struct {
		ToteIDs []string `json:"tote_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	entries, err := h.service.GenerateBulk(req.ToteIDs)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{"labels": entries})
}
