package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на проверку пересечения
type Request struct {
	FacilityID string           // ID объекта
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало предлагаемого интервала
	EndTime    types.TimeString // Конец предлагаемого интервала (не включается)
}

// Response результат проверки
type Response struct {
	HasConflict bool
}
