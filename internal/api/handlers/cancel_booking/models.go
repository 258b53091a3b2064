package cancel_booking

import (
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model, тело опционально
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// Пустая причина не сохраняется.
func (r *CancelBookingRequest) ToServiceRequest(userID string) *models.CancelBookingRequest {
	req := &models.CancelBookingRequest{UserID: userID}

	if r.CancellationReason != nil {
		if reason := strings.TrimSpace(*r.CancellationReason); reason != "" {
			req.CancellationReason = &reason
		}
	}

	return req
}
