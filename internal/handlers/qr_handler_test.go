package handlers

import (
	"ToteSonar/internal/dto"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockQRService struct {
	mock.Mock
}

func (m *MockQRService) GeneratePNG(toteID string) ([]byte, error) {
	args := m.Called(toteID)
	png, ok := args.Get(0).([]byte)
	if !ok {
		return nil, args.Error(1)
	}
	return png, args.Error(1)
}

func (m *MockQRService) GenerateDataURL(toteID string) (*dto.QRCodeEntry, error) {
	args := m.Called(toteID)
	entry, ok := args.Get(0).(*dto.QRCodeEntry)
	if !ok {
		return nil, args.Error(1)
	}
	return entry, args.Error(1)
}

func (m *MockQRService) GenerateBulk(toteIDs []string) ([]dto.QRCodeEntry, error) {
	args := m.Called(toteIDs)
	entries, ok := args.Get(0).([]dto.QRCodeEntry)
	if !ok {
		return nil, args.Error(1)
	}
	return entries, args.Error(1)
}

func newQRTestApp(mockService *MockQRService) *fiber.App {
	app := fiber.New()
	handler := NewQRHandler(mockService, testLogService())
	app.Get("/totes/:id/qr", handler.GetToteQR)
	return app
}

func TestQRHandler_DefaultsToPNG(t *testing.T) {
	mockService := new(MockQRService)
	app := newQRTestApp(mockService)

	mockService.On("GeneratePNG", "Abc123").Return([]byte("pngbytes"), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/Abc123/qr", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	mockService.AssertNotCalled(t, "GenerateDataURL", mock.Anything)
}

func TestQRHandler_UnknownFormatFallsBackToPNG(t *testing.T) {
	mockService := new(MockQRService)
	app := newQRTestApp(mockService)

	mockService.On("GeneratePNG", "Abc123").Return([]byte("pngbytes"), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/Abc123/qr?format=svg", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestQRHandler_DataURLFormat(t *testing.T) {
	mockService := new(MockQRService)
	app := newQRTestApp(mockService)

	entry := &dto.QRCodeEntry{ToteID: "Abc123", QRDataURL: "data:image/png;base64,AAAA", EncodedURL: "http://localhost:3000/totes/Abc123"}
	mockService.On("GenerateDataURL", "Abc123").Return(entry, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/Abc123/qr?format=dataurl", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Abc123", body["tote_id"])
	mockService.AssertNotCalled(t, "GeneratePNG", mock.Anything)
}
