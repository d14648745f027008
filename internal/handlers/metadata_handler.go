package handlers

import (
	"ToteSonar/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type MetadataHandler struct {
	service    services.MetadataService
	logService services.LogService
}

func NewMetadataHandler(service services.MetadataService, logService services.LogService) *MetadataHandler {
	return &MetadataHandler{service: service, logService: logService}
}

func (h *MetadataHandler) ListItemMetadata(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	metadata, err := h.service.GetMetadataByItem(itemID)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(metadata)
}

func (h *MetadataHandler) AddMetadata(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	entry, err := h.service.AddMetadata(itemID, req.Key, req.Value)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

func (h *MetadataHandler) UpdateMetadata(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}
	metadataID, ok := parseUintParam(c, "metadataId")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid metadata ID"})
	}

	var req struct {
		Key   *string `json:"key"`
		Value *string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	entry, err := h.service.UpdateMetadata(itemID, metadataID, req.Key, req.Value)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(entry)
}

func (h *MetadataHandler) DeleteMetadata(c *fiber.Ctx) error {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}
	metadataID, ok := parseUintParam(c, "metadataId")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid metadata ID"})
	}

	if err := h.service.DeleteMetadata(itemID, metadataID); err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{"message": "Metadata deleted successfully"})
}

func (h *MetadataHandler) ListKeys(c *fiber.Ctx) error {
	keys, err := h.service.ListKeys()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{"keys": keys})
}
