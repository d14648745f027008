package handlers

import (
	"ToteSonar/internal/config"
	"ToteSonar/internal/dto"
	"ToteSonar/internal/models"
	"ToteSonar/internal/services"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogService() services.LogService {
	return services.NewLogService(&config.Configuration{})
}

type MockToteService struct {
	mock.Mock
}

func (m *MockToteService) CreateTote(name, location string, size, color, owner *string) (*models.Tote, error) {
	args := m.Called(name, location, size, color, owner)
	tote, ok := args.Get(0).(*models.Tote)
	if !ok {
		return nil, args.Error(1)
	}
	return tote, args.Error(1)
}

func (m *MockToteService) GetToteByID(id string) (*models.Tote, error) {
	args := m.Called(id)
	tote, ok := args.Get(0).(*models.Tote)
	if !ok {
		return nil, args.Error(1)
	}
	return tote, args.Error(1)
}

func (m *MockToteService) GetToteDetail(id string) (*dto.ToteDetail, error) {
	args := m.Called(id)
	detail, ok := args.Get(0).(*dto.ToteDetail)
	if !ok {
		return nil, args.Error(1)
	}
	return detail, args.Error(1)
}

func (m *MockToteService) GetTotes(sortBy, order string) ([]dto.ToteWithCount, error) {
	args := m.Called(sortBy, order)
	return args.Get(0).([]dto.ToteWithCount), args.Error(1)
}

func (m *MockToteService) UpdateTote(id string, update dto.ToteUpdate) (*models.Tote, error) {
	args := m.Called(id, update)
	tote, ok := args.Get(0).(*models.Tote)
	if !ok {
		return nil, args.Error(1)
	}
	return tote, args.Error(1)
}

func (m *MockToteService) DeleteTote(id string) (*models.Tote, int64, error) {
	args := m.Called(id)
	tote, ok := args.Get(0).(*models.Tote)
	if !ok {
		return nil, 0, args.Error(2)
	}
	return tote, args.Get(1).(int64), args.Error(2)
}

func newToteTestApp(mockService *MockToteService) *fiber.App {
	app := fiber.New()
	handler := NewToteHandler(mockService, testLogService())
	app.Get("/totes", handler.ListTotes)
	app.Post("/totes", handler.CreateTote)
	app.Get("/totes/:id", handler.GetTote)
	app.Put("/totes/:id", handler.UpdateTote)
	app.Delete("/totes/:id", handler.DeleteTote)
	return app
}

func TestToteHandler_CreateTote(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	tote := &models.Tote{ID: "Abc123", Name: "Tools", Location: "Garage"}
	mockService.On("CreateTote", "Tools", "Garage", (*string)(nil), (*string)(nil), (*string)(nil)).Return(tote, nil)

	body, _ := json.Marshal(map[string]interface{}{"name": "Tools", "location": "Garage"})
	req := httptest.NewRequest(http.MethodPost, "/totes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestToteHandler_CreateToteMissingFields(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	body, _ := json.Marshal(map[string]interface{}{"name": "Tools"})
	req := httptest.NewRequest(http.MethodPost, "/totes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var respBody map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	assert.Equal(t, "Location is required", respBody["error"])
	mockService.AssertNotCalled(t, "CreateTote", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToteHandler_CreateToteRejectsWhitespaceOnlyFields(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	body, _ := json.Marshal(map[string]interface{}{"name": "   ", "location": "Garage"})
	req := httptest.NewRequest(http.MethodPost, "/totes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var respBody map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	assert.Equal(t, "Name is required", respBody["error"])
	mockService.AssertNotCalled(t, "CreateTote", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToteHandler_GetToteRejectsMalformedID(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/bad-id!", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid tote ID format", body["error"])
	mockService.AssertNotCalled(t, "GetToteDetail", mock.Anything)
}

func TestToteHandler_GetToteNotFound(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	mockService.On("GetToteDetail", "Abc123").Return(nil, services.ErrToteNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/Abc123", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToteHandler_ListTotesPassesSortParams(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	totes := []dto.ToteWithCount{
		{Tote: models.Tote{ID: "Abc123", Name: "Tools", Location: "Garage"}, ItemCount: 2},
	}
	mockService.On("GetTotes", "name", "asc").Return(totes, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes?sort=name&order=asc", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), `"item_count":2`)
	mockService.AssertExpectations(t)
}

func TestToteHandler_InternalErrorIsOpaque(t *testing.T) {
	mockService := new(MockToteService)
	app := newToteTestApp(mockService)

	mockService.On("GetToteDetail", "Abc123").Return(nil, assert.AnError)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/totes/Abc123", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["error"])
}
