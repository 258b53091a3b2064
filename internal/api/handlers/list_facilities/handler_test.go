package list_facilities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, activeOnly bool) (*models.FacilityListResponse, error) {
	args := m.Called(ctx, activeOnly)
	if r, ok := args.Get(0).(*models.FacilityListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_ActiveOnlyByDefault(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, true).Return(&models.FacilityListResponse{Facilities: []models.FacilityResponse{}}, nil)
	svc.On("List", mock.Anything, false).Return(&models.FacilityListResponse{Facilities: []models.FacilityResponse{{ID: "fac-9"}}}, nil)
	h := NewHandler(svc, logger.Nop{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"facilities":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities?includeInactive=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fac-9")
}
