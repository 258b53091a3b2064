package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case для получения слотов объекта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, facilityRepo FacilityRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%s, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %w", ErrInternal, err)
	}

	response := &Response{
		Date:                req.Date,
		FacilityID:          req.FacilityID,
		SlotDurationMinutes: facility.SlotDurationMinutes,
		Slots:               []domain.AvailableSlot{},
	}

	// 3. Выключенный объект не бронируется
	if !facility.IsActive {
		uc.logger.Info("GetAvailableSlots: facility id=%s is inactive", req.FacilityID)
		return response, nil
	}

	// 4. Валидация даты
	if err := validateDate(req.Date, now, facility.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем слоты
	slots, err := generateTimeSlots(facility, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %w", ErrInternal, err)
	}

	// 6. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		FacilityID: ptr.Ptr(req.FacilityID),
		Date:       ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	// 7. Помечаем занятые слоты
	markOccupied(slots, bookings)
	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%s, date=%s",
		len(slots), req.FacilityID, req.Date.Format(domain.DateFormat))

	return response, nil
}
