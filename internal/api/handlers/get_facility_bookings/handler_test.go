package get_facility_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*models.BookingListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/facilities/{facilityId}/bookings", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := new(mockService)
	svc.On("GetFacilityBookings", mock.Anything, mock.MatchedBy(func(r *models.GetFacilityBookingsRequest) bool {
		return r.FacilityID == "fac-1" &&
			r.Date != nil && r.Date.Format("2006-01-02") == "2024-01-15" &&
			r.IncludeCancelled && r.Status == nil
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := serve(NewHandler(svc, logger.Nop{}), "/facilities/fac-1/bookings?date=2024-01-15&includeCancelled=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_InvalidParams(t *testing.T) {
	svc := new(mockService)

	rec := serve(NewHandler(svc, logger.Nop{}), "/facilities/fac-1/bookings?includeCancelled=sometimes")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetFacilityBookings", mock.Anything, mock.Anything)
}
