package handlers

import (
	"ToteSonar/internal/dto"
	"ToteSonar/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service    services.SearchService
	logService services.LogService
}

func NewSearchHandler(service services.SearchService, logService services.LogService) *SearchHandler {
	return &SearchHandler{service: service, logService: logService}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := dto.SearchQuery{
		Query:       c.Query("q"),
		Location:    c.Query("location"),
		Owner:       c.Query("owner"),
		MetadataKey: c.Query("metadata_key"),
	}

	result, err := h.service.Search(query)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(result)
}

func (h *SearchHandler) GetFilters(c *fiber.Ctx) error {
	filters, err := h.service.GetFilters()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(filters)
}
