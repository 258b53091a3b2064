package get_facility

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*models.FacilityResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/facilities/{facilityId}", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, "f-1").Return(&models.FacilityResponse{ID: "f-1", Name: "Gym"}, nil)
	svc.On("GetByID", mock.Anything, "missing").Return(nil, facilities.ErrFacilityNotFound)
	svc.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("db down"))
	h := NewHandler(svc, logger.Nop{})

	ok := serve(h, "f-1")
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"name":"Gym"`)

	assert.Equal(t, http.StatusNotFound, serve(h, "missing").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(h, "broken").Code)
}
