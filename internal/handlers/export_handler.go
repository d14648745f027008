package handlers

import (
	"ToteSonar/internal/services"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	service    services.ExportService
	logService services.LogService
}

func NewExportHandler(service services.ExportService, logService services.LogService) *ExportHandler {
	return &ExportHandler{service: service, logService: logService}
}

// Export streams the full backup archive with a dated filename.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		return serviceError(c, h.logService, err)
	}

	filename := fmt.Sprintf("tote-sonar-export-%s.zip", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "No file provided"})
	}
	if !isZipUpload(fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType)) {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{
			"error": "Invalid file type. Please upload a .zip file exported from Tote Sonar.",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	archive, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return serviceError(c, h.logService, err)
	}

	summary, err := h.service.Import(archive)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(map[string]interface{}{
		"message":  "Import completed successfully",
		"imported": summary,
	})
}

// isZipUpload accepts the upload when either the filename or the part's
// content type says ZIP. The archive itself is still validated on import.
func isZipUpload(filename, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return true
	}
	return contentType == "application/zip" || contentType == "application/x-zip-compressed"
}
