package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrFacilityInactive возвращается, когда объект выключен для бронирования
	ErrFacilityInactive = errors.New("create_booking: facility is not active")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("create_booking: start time must be before end time")

	// ErrOutsideOpeningHours возвращается, когда интервал выходит за часы работы объекта
	ErrOutsideOpeningHours = errors.New("create_booking: slot is outside facility opening hours")

	// ErrTooLateToBook возвращается, когда слот на сегодня уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
