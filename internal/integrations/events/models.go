package events

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// EventType тип доменного события, используется как routing key
type EventType string

const (
	BookingCreated   EventType = "booking.created"
	BookingApproved  EventType = "booking.approved"
	BookingCancelled EventType = "booking.cancelled"
)

// BookingEvent событие изменения бронирования
type BookingEvent struct {
	Type               EventType        `json:"type"`
	BookingID          string           `json:"bookingId"`
	FacilityID         string           `json:"facilityId"`
	UnitID             string           `json:"unitId"`
	UserID             string           `json:"userId"`
	BookingDate        string           `json:"bookingDate"`
	StartTime          types.TimeString `json:"startTime"`
	EndTime            types.TimeString `json:"endTime"`
	Status             string           `json:"status"`
	ActorID            string           `json:"actorId,omitempty"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	OccurredAt         time.Time        `json:"occurredAt"`
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(eventType EventType, booking *domain.Booking, actorID string) BookingEvent {
	return BookingEvent{
		Type:               eventType,
		BookingID:          booking.ID,
		FacilityID:         booking.FacilityID,
		UnitID:             booking.UnitID,
		UserID:             booking.UserID,
		BookingDate:        booking.BookingDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime,
		EndTime:            booking.EndTime,
		Status:             string(booking.Status),
		ActorID:            actorID,
		CancellationReason: booking.CancellationReason,
		OccurredAt:         time.Now().UTC(),
	}
}
