package update_facility

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
)

type FacilityService interface {
	Update(ctx context.Context, id string, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
