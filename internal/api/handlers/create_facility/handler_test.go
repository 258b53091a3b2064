package create_facility

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*models.FacilityResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/facilities", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		resp   *models.FacilityResponse
		err    error
		status int
	}{
		{"created", &models.FacilityResponse{ID: "fac-1", Name: "Gym"}, nil, http.StatusCreated},
		{"invalid", nil, fmt.Errorf("%w: name is required", facilities.ErrInvalidInput), http.StatusBadRequest},
		{"duplicate", nil, facilities.ErrFacilityAlreadyExists, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateFacilityRequest) bool {
				return r.Name == "Gym" && r.SlotDurationMinutes != nil && *r.SlotDurationMinutes == 30
			})).Return(tt.resp, tt.err)

			rec := serve(NewHandler(svc, logger.Nop{}), `{"name":"Gym","slotDurationMinutes":30}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
