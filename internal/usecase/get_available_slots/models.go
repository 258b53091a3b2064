package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	FacilityID string    // ID объекта
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date                time.Time
	FacilityID          string
	SlotDurationMinutes int
	Slots               []domain.AvailableSlot
}
