package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotOverlap возвращается, когда БД отклонила вставку по exclusion constraint
	ErrSlotOverlap = errors.New("booking.repository: slot overlaps an active booking")

	// ErrFacilityReference возвращается, когда бронирование ссылается на несуществующий объект
	ErrFacilityReference = errors.New("booking.repository: facility does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
