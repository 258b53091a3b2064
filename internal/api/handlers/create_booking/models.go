package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid booking date format")
	errInvalidTime = errors.New("invalid time format")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  string  `json:"facilityId"`
	UnitID      string  `json:"unitId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	FacilityID  string  `json:"facilityId"`
	UnitID      string  `json:"unitId"`
	UserID      string  `json:"userId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// userID берется из заголовка X-User-ID, а не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", errInvalidTime, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		FacilityID: r.FacilityID,
		UnitID:     r.UnitID,
		UserID:     userID,
		Date:       bookingDate,
		StartTime:  startTime,
		EndTime:    endTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		FacilityID:  resp.FacilityID,
		UnitID:      resp.UnitID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
