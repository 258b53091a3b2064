package cancel_booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if r, ok := args.Get(0).(*models.BookingResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, body io.Reader) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/cancel", body)
	req.Header.Set(middleware.UserIDHeader, "user-7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, "b-1", mock.MatchedBy(func(r *models.CancelBookingRequest) bool {
		return r.UserID == "user-7" && r.CancellationReason != nil && *r.CancellationReason == "plans changed"
	})).Return(&models.BookingResponse{ID: "b-1", Status: "cancelled"}, nil)

	rec := serve(NewHandler(svc, logger.Nop{}), strings.NewReader(`{"cancellationReason":" plans changed "}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, "b-1", &models.CancelBookingRequest{UserID: "user-7"}).
		Return(&models.BookingResponse{ID: "b-1", Status: "cancelled"}, nil)

	rec := serve(NewHandler(svc, logger.Nop{}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Cancel", mock.Anything, "b-1", mock.Anything).Return(nil, bookings.ErrBookingNotFound)

		rec := serve(NewHandler(svc, logger.Nop{}), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockService)

		rec := serve(NewHandler(svc, logger.Nop{}), strings.NewReader(`{"cancellationReason":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})
}
