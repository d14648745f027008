package handlers

import (
	"ToteSonar/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// serviceError maps service failures onto the response taxonomy: known
// absences become 404, client-fixable violations become 400, everything
// else is logged and returned as a generic 500 so internals never leak.
func serviceError(c *fiber.Ctx, logService services.LogService, err error) error {
	switch {
	case services.IsNotFound(err):
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": err.Error()})
	case services.IsValidation(err):
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	default:
		logService.Log.WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
			"error":  err.Error(),
		}).Error("Request failed")
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "Internal server error"})
	}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
