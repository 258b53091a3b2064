package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*models.BookingResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, "b-1").Return(&models.BookingResponse{ID: "b-1", Status: "pending"}, nil)
	svc.On("GetByID", mock.Anything, "missing").Return(nil, bookings.ErrBookingNotFound)
	h := NewHandler(svc, logger.Nop{})

	ok := serve(h, "b-1")
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"status":"pending"`)

	missing := serve(h, "missing")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
