package domain

import "github.com/m04kA/SMC-FacilityBooking/pkg/types"

// AvailableSlot represents a time slot of a facility on a given date
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
