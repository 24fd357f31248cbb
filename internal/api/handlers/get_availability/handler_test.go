package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	response *models.AvailabilityResponse
	err      error
	called   bool
}

func (f *fakeService) GetAvailability(_ context.Context, _ int64) (*models.AvailabilityResponse, error) {
	f.called = true
	return f.response, f.err
}

func testRouter(service *fakeService) *mux.Router {
	h := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/providers/{providerId}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandleOwnerReadsSchedule(t *testing.T) {
	service := &fakeService{response: &models.AvailabilityResponse{
		ProviderID: 10,
		Enabled:    true,
		WeeklySchedule: []models.TimeSlotModel{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/providers/10/availability", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	testRouter(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, service.called)
	assert.Contains(t, rec.Body.String(), `"providerId":10`)
}

func TestHandleForeignUserDenied(t *testing.T) {
	service := &fakeService{response: &models.AvailabilityResponse{ProviderID: 10}}

	// Чужое расписание недоступно даже аутентифицированному пользователю
	req := httptest.NewRequest(http.MethodGet, "/providers/10/availability", nil)
	req.Header.Set(middleware.HeaderUserID, "11")
	rec := httptest.NewRecorder()

	testRouter(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, service.called)
}

func TestHandleAvailabilityNotFound(t *testing.T) {
	service := &fakeService{err: providers.ErrAvailabilityNotFound}

	req := httptest.NewRequest(http.MethodGet, "/providers/10/availability", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	testRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
