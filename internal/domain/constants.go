package domain

// Default facility values
const (
	DefaultSlotDurationMinutes = 60
	DefaultAdvanceBookingDays  = 0 // 0 = unlimited
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "22:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxFacilityNameLength       = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые занимают слот и участвуют в проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
