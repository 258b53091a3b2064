package facilities

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("facilities: facility not found")

	// ErrFacilityAlreadyExists возвращается, когда объект с таким именем уже есть
	ErrFacilityAlreadyExists = errors.New("facilities: facility already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("facilities: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("facilities: internal error")
)
