package handlers

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/services"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service    services.ItemService
	logService services.LogService
}

func NewItemHandler(service services.ItemService, logService services.LogService) *ItemHandler {
	return &ItemHandler{service: service, logService: logService}
}

func (h *ItemHandler) ListToteItems(c *fiber.Ctx) error {
	toteID, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	items, err := h.service.GetItemsByTote(toteID)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	toteID, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Quantity    *int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "Name is required"})
	}

	item, err := h.service.CreateItem(toteID, req.Name, req.Description, req.Quantity)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	detail, err := h.service.GetItemDetail(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(detail)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req dto.ItemUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.UpdateItem(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.DeleteItem(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{
		"message": "Item deleted successfully",
		"item":    item,
	})
}

func (h *ItemHandler) MoveItem(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		TargetToteID string `json:"target_tote_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.TargetToteID == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "target_tote_id is required"})
	}

	item, targetTote, err := h.service.MoveItem(id, req.TargetToteID)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{
		"message": "Item moved successfully",
		"item":    item,
		"tote":    targetTote,
	})
}

func (h *ItemHandler) DuplicateItem(c *fiber.Ctx) error {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		TargetToteID string `json:"target_tote_id"`
	}
	// empty body means "duplicate into the same tote"
	_ = c.BodyParser(&req)

	item, err := h.service.DuplicateItem(id, req.TargetToteID)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}
