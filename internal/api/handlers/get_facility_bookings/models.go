package get_facility_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(facilityID string, r *http.Request) (*models.GetFacilityBookingsRequest, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		return nil, err
	}

	return &models.GetFacilityBookingsRequest{
		FacilityID:       facilityID,
		Date:             date,
		Status:           handlers.QueryString(r, "status"),
		IncludeCancelled: includeCancelled,
	}, nil
}
