package facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error)
	Update(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
