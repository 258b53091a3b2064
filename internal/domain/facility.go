package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Facility represents a bookable shared resource (meeting room, BBQ area, gym...)
type Facility struct {
	ID                  string
	Name                string
	Description         *string
	Location            *string
	OpenTime            types.TimeString
	CloseTime           types.TimeString // не позже 23:59
	SlotDurationMinutes int
	AdvanceBookingDays  int // 0 = unlimited
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsWithinOpeningHours returns true if [start, end) fits into opening hours
func (f *Facility) IsWithinOpeningHours(start, end types.TimeString) bool {
	return !start.IsBefore(f.OpenTime) && !end.IsAfter(f.CloseTime)
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (f *Facility) HasAdvanceBookingLimit() bool {
	return f.AdvanceBookingDays > 0
}
