package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a facility by a resident
type Booking struct {
	ID          string
	FacilityID  string
	UnitID      string
	UserID      string
	BookingDate time.Time // date only
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Notes       *string

	CancellationReason *string
	ApprovedAt         *time.Time
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo reports whether the status change is allowed.
// Re-applying the current status is allowed and treated as a no-op.
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	if b.Status == to {
		return true
	}
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OverlapsWith reports whether the booking's slot intersects [start, end)
func (b *Booking) OverlapsWith(start, end types.TimeString) bool {
	return Overlaps(start, end, b.StartTime, b.EndTime)
}

// Overlaps is the half-open interval overlap test: [aStart, aEnd) and [bStart, bEnd)
// intersect iff aStart < bEnd and bStart < aEnd. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusApproved, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	FacilityID       *string        // Фильтр по объекту (опционально)
	UserID           *string        // Фильтр по жильцу (опционально)
	Date             *time.Time     // Конкретная дата (опционально)
	Status           *BookingStatus // Конкретный статус (опционально, имеет приоритет над IncludeCancelled)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
