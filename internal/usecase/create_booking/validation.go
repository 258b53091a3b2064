package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID == "" {
		return fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if req.UnitID == "" {
		return fmt.Errorf("%w: unitID is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и укладывается в advanceBookingDays
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// advanceBookingDays = 0 - без ограничений
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.UTC)

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingTime проверяет, что слот на сегодня еще не начался
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s has already started", ErrTooLateToBook, startTime)
	}

	return nil
}

// validateFacility проверяет, что объект активен и интервал попадает в часы работы
func validateFacility(facility *domain.Facility, start, end types.TimeString) error {
	if !facility.IsActive {
		return ErrFacilityInactive
	}

	if !facility.IsWithinOpeningHours(start, end) {
		return fmt.Errorf("%w: facility works %s-%s", ErrOutsideOpeningHours, facility.OpenTime, facility.CloseTime)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
