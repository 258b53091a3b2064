package check_conflict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	checkConflict "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkConflict.Request) (*checkConflict.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*checkConflict.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/facilities/{facilityId}/conflicts", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_ReturnsConflictFlag(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *checkConflict.Request) bool {
		return r.FacilityID == "fac-1" && r.StartTime == "09:30" && r.EndTime == "10:30"
	})).Return(&checkConflict.Response{HasConflict: true}, nil)

	rec := serve(NewHandler(uc, logger.Nop{}), "/facilities/fac-1/conflicts?date=2024-01-15&startTime=09:30&endTime=10:30")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hasConflict":true}`, rec.Body.String())
}

func TestHandle_RejectsBadRange(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing end", "/facilities/fac-1/conflicts?date=2024-01-15&startTime=09:30"},
		{"end before start", "/facilities/fac-1/conflicts?date=2024-01-15&startTime=11:00&endTime=10:00"},
		{"empty range", "/facilities/fac-1/conflicts?date=2024-01-15&startTime=10:00&endTime=10:00"},
		{"bad time", "/facilities/fac-1/conflicts?date=2024-01-15&startTime=9am&endTime=10:00"},
		{"missing date", "/facilities/fac-1/conflicts?startTime=09:00&endTime=10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)

			rec := serve(NewHandler(uc, logger.Nop{}), tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
