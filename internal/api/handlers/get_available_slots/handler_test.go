package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*getAvailableSlots.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/facilities/{facilityId}/available-slots", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{FacilityID: "fac-1", Date: date}).
		Return(&getAvailableSlots.Response{
			Date:                date,
			FacilityID:          "fac-1",
			SlotDurationMinutes: 60,
			Slots: []domain.AvailableSlot{
				{StartTime: "08:00", EndTime: "09:00", Available: true},
				{StartTime: "09:00", EndTime: "10:00", Available: false},
			},
		}, nil)

	rec := serve(NewHandler(uc, logger.Nop{}), "/facilities/fac-1/available-slots?date=2024-01-15")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, "09:00", resp.Slots[0].EndTime)
}

func TestHandle_Errors(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		rec := serve(NewHandler(new(mockUseCase), logger.Nop{}), "/facilities/fac-1/available-slots")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := serve(NewHandler(new(mockUseCase), logger.Nop{}), "/facilities/fac-1/available-slots?date=tomorrow")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("facility not found", func(t *testing.T) {
		uc := new(mockUseCase)
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrFacilityNotFound)

		rec := serve(NewHandler(uc, logger.Nop{}), "/facilities/missing/available-slots?date=2024-01-15")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
