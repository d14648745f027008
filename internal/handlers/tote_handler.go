package handlers

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/helpers"
	"ToteSonar/internal/services"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ToteHandler struct {
	service    services.ToteService
	logService services.LogService
}

func NewToteHandler(service services.ToteService, logService services.LogService) *ToteHandler {
	return &ToteHandler{service: service, logService: logService}
}

func (h *ToteHandler) ListTotes(c *fiber.Ctx) error {
	totes, err := h.service.GetTotes(c.Query("sort"), c.Query("order"))
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(totes)
}

func (h *ToteHandler) CreateTote(c *fiber.Ctx) error {
	var req struct {
		Name     string  `json:"name"`
		Location string  `json:"location"`
		Size     *string `json:"size"`
		Color    *string `json:"color"`
		Owner    *string `json:"owner"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "Name is required"})
	}
	if strings.TrimSpace(req.Location) == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "Location is required"})
	}

	tote, err := h.service.CreateTote(req.Name, req.Location, req.Size, req.Color, req.Owner)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(tote)
}

func (h *ToteHandler) GetTote(c *fiber.Ctx) error {
	id, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	detail, err := h.service.GetToteDetail(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(detail)
}

func (h *ToteHandler) UpdateTote(c *fiber.Ctx) error {
	id, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	var req dto.ToteUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	tote, err := h.service.UpdateTote(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(tote)
}

func (h *ToteHandler) DeleteTote(c *fiber.Ctx) error {
	id, ok := toteIDParam(c)
	if !ok {
		return invalidToteID(c)
	}

	tote, itemCount, err := h.service.DeleteTote(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{
		"message":       "Tote deleted successfully",
		"tote":          tote,
		"items_deleted": itemCount,
	})
}

func toteIDParam(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	return id, helpers.ToteIDPattern.MatchString(id)
}

func invalidToteID(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "Invalid tote ID format"})
}
