package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	FacilityID string           // ID объекта
	UnitID     string           // ID квартиры
	UserID     string           // ID жильца
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	EndTime    types.TimeString // Время окончания, не включается
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	FacilityID  string
	UnitID      string
	UserID      string
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
